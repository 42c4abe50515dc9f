package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.March, 15), got)

	got, err = ParseDate("2026-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.March, 15), got)

	got, err = ParseDate("  ")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseDate("15/03/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_JSON(t *testing.T) {
	var v struct {
		Start Date `json:"start"`
		End   Date `json:"end"`
		Null  Date `json:"null"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2026-01-31","end":"","null":null}`), &v))

	assert.Equal(t, NewDate(2026, time.January, 31), v.Start)
	assert.True(t, v.End.IsZero())
	assert.True(t, v.Null.IsZero())

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2026-01-31","end":"","null":""}`, string(out))
}

func TestID_UnmarshalJSON(t *testing.T) {
	var items []struct {
		ID ID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"abc"},{"id":1718000000000},{"id":null}]`), &items))

	require.Len(t, items, 3)
	assert.Equal(t, ID("abc"), items[0].ID)
	assert.Equal(t, ID("1718000000000"), items[1].ID)
	assert.Equal(t, ID(""), items[2].ID)
}

func TestNewID_Unique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
	assert.Len(t, string(NewID()), 36)
}
