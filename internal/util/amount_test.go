package util

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "0"},
		{"   ", "0"},
		{"abc", "0"},
		{"12.50", "12.5"},
		{" 100 ", "100"},
		{"£1,250.75", "1250.75"},
		{"-20", "-20"},
	}

	for _, tt := range tests {
		got := ParseAmount(tt.input)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var req struct {
		Number  Amount `json:"number"`
		String  Amount `json:"string"`
		Blank   Amount `json:"blank"`
		Null    Amount `json:"null"`
		Garbage Amount `json:"garbage"`
		Missing Amount `json:"missing"`
	}

	body := `{"number": 1500, "string": "250.25", "blank": "", "null": null, "garbage": "n/a"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.True(t, req.Number.Set)
	assert.True(t, req.Number.Equal(decimal.NewFromInt(1500)))
	assert.True(t, req.String.Set)
	assert.Equal(t, "250.25", req.String.String())
	assert.False(t, req.Blank.Set)
	assert.False(t, req.Null.Set)
	assert.True(t, req.Garbage.Set)
	assert.True(t, req.Garbage.IsZero())
	assert.False(t, req.Missing.Set)
}

func TestAmount_Or(t *testing.T) {
	fallback := decimal.NewFromInt(12)

	assert.True(t, Amount{}.Or(fallback).Equal(fallback))
	assert.True(t, NewAmount(decimal.Zero).Or(fallback).IsZero())
}
