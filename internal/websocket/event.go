package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeCreated   EventType = "created"
	EventTypeUpdated   EventType = "updated"
	EventTypeDeleted   EventType = "deleted"
	EventTypeReplaced  EventType = "replaced"
	EventTypeRefreshed EventType = "refreshed"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeIncome        EntityType = "income"
	EntityTypeExpense       EntityType = "expense"
	EntityTypeLoan          EntityType = "loan"
	EntityTypeSavingsGoal   EntityType = "savings_goal"
	EntityTypeEmergencyFund EntityType = "emergency_fund"
	EntityTypeInvestment    EntityType = "investment"
	EntityTypePension       EntityType = "pension"
	EntityTypeCategory      EntityType = "category"
	EntityTypeBudget        EntityType = "budget"
)

// Event represents a change notification sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "expense.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "expense"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Created creates an <entity>.created event
func Created(entity EntityType, payload interface{}) Event {
	return NewEvent(EventTypeCreated, entity, payload)
}

// Updated creates an <entity>.updated event
func Updated(entity EntityType, payload interface{}) Event {
	return NewEvent(EventTypeUpdated, entity, payload)
}

// Deleted creates an <entity>.deleted event
func Deleted(entity EntityType, payload interface{}) Event {
	return NewEvent(EventTypeDeleted, entity, payload)
}

// CategoryReplaced creates a category.replaced event after a replace-all write
func CategoryReplaced(category string) Event {
	return NewEvent(EventTypeReplaced, EntityTypeCategory, map[string]string{"category": category})
}

// BudgetRefreshed creates a budget.refreshed event after cached fields were recomputed
func BudgetRefreshed(payload interface{}) Event {
	return NewEvent(EventTypeRefreshed, EntityTypeBudget, payload)
}
