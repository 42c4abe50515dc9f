package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHub_Implements_EventPublisher(t *testing.T) {
	var _ EventPublisher = (*Hub)(nil)
}

func TestHub_Publish(t *testing.T) {
	hub := NewHub()

	client := newMockClient("client-1")
	hub.Register(client)

	var publisher EventPublisher = hub
	publisher.Publish(Created(EntityTypeExpense, map[string]interface{}{"id": "e1"}))

	// Allow async broadcast to complete
	time.Sleep(10 * time.Millisecond)

	assert.Len(t, client.GetMessages(), 1)
}

func TestNoOpPublisher_Publish(t *testing.T) {
	publisher := &NoOpPublisher{}

	assert.NotPanics(t, func() {
		publisher.Publish(Created(EntityTypeIncome, map[string]interface{}{"id": "i1"}))
	})
}

type recordingPublisher struct {
	events []Event
}

func (r *recordingPublisher) Publish(event Event) {
	r.events = append(r.events, event)
}

func TestMultiPublisher_Publish(t *testing.T) {
	first := &recordingPublisher{}
	second := &recordingPublisher{}
	multi := MultiPublisher{first, &NoOpPublisher{}, second}

	multi.Publish(Deleted(EntityTypeLoan, map[string]string{"id": "l1"}))

	assert.Len(t, first.events, 1)
	assert.Len(t, second.events, 1)
	assert.Equal(t, "loan.deleted", second.events[0].Type)
}
