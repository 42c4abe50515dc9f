package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"id":           "e1",
		"expense_name": "Rent",
		"monthly_cost": "950.00",
	}

	before := time.Now()
	evt := NewEvent(EventTypeCreated, EntityTypeExpense, payload)
	after := time.Now()

	assert.Equal(t, "expense.created", evt.Type)
	assert.Equal(t, EntityTypeExpense, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before) && !evt.Timestamp.After(after))
}

func TestEvent_JSON_Serialization(t *testing.T) {
	fixedTime := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	evt := Event{
		Type:      "savings_goal.updated",
		Entity:    EntityTypeSavingsGoal,
		Payload:   map[string]interface{}{"id": "g1", "name": "Holiday"},
		Timestamp: fixedTime,
	}

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, evt.Type, decoded.Type)
	assert.Equal(t, evt.Entity, decoded.Entity)
	assert.Equal(t, fixedTime, decoded.Timestamp.UTC())

	decodedPayload, ok := decoded.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Holiday", decodedPayload["name"])
}

func TestEvent_Helpers(t *testing.T) {
	payload := map[string]interface{}{"id": "x"}

	tests := []struct {
		name     string
		evt      Event
		wantType string
		entity   EntityType
	}{
		{"created", Created(EntityTypeIncome, payload), "income.created", EntityTypeIncome},
		{"updated", Updated(EntityTypePension, payload), "pension.updated", EntityTypePension},
		{"deleted", Deleted(EntityTypeInvestment, payload), "investment.deleted", EntityTypeInvestment},
		{"replaced", CategoryReplaced("loans"), "category.replaced", EntityTypeCategory},
		{"refreshed", BudgetRefreshed(payload), "budget.refreshed", EntityTypeBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.evt.Type)
			assert.Equal(t, tt.entity, tt.evt.Entity)
		})
	}
}

func TestCategoryReplaced_Payload(t *testing.T) {
	evt := CategoryReplaced("savings")

	assert.Equal(t, map[string]string{"category": "savings"}, evt.Payload)
}
