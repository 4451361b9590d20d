package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Sokol111/crm-commons/pkg/events"
	"github.com/Sokol111/crm-commons/pkg/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingStore rejects inserts to simulate a store outage.
type failingStore struct {
	*MemoryStore
}

func (s *failingStore) Insert(context.Context, Notification) (Notification, error) {
	return Notification{}, errors.New("store unavailable")
}

func deliver(t *testing.T, h *EventHandler, event events.Event) error {
	t.Helper()
	body, err := events.Marshal(event)
	require.NoError(t, err)
	return h.HandleMessage(context.Background(), messaging.Message{
		RoutingKey: messaging.RoutingKey(event.Domain(), event.Meta().EventType),
		Body:       body,
	})
}

func TestEventHandler(t *testing.T) {
	t.Run("should derive notification from envelope fields", func(t *testing.T) {
		// Given
		store := NewMemoryStore()
		h := NewEventHandler(NewService(store, zap.NewNop()), zap.NewNop())
		event := events.NewCustomerCreated(42, "jane@acme.com", "Jane", "Doe", "Acme", "Tech", "bob")

		// When
		err := deliver(t, h, event)

		// Then
		require.NoError(t, err)

		page, err := store.FindByRecipient(context.Background(), DefaultRecipient, PageRequest{})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)

		n := page.Items[0]
		assert.Equal(t, TypeInfo, n.Type)
		expected := fmt.Sprintf("Event customer.created occurred at %s", event.Meta().Timestamp.Format(time.RFC3339))
		assert.Equal(t, expected, n.Message)
		assert.Equal(t, DefaultRecipient, n.Recipient)
		assert.Equal(t, "customer.created", n.RelatedType)
		assert.Nil(t, n.RelatedID)
		assert.Equal(t, StatusUnread, n.Status)
	})

	t.Run("should not inspect variant payload fields", func(t *testing.T) {
		// Given: an envelope of a type no registry knows
		store := NewMemoryStore()
		h := NewEventHandler(NewService(store, zap.NewNop()), zap.NewNop())
		body := []byte(`{"event_id":"x1","event_type":"invoice.created","timestamp":"2025-06-01T10:30:00Z","source":"billing-service","schema_version":"1.0","amount":99.9}`)

		// When
		err := h.HandleMessage(context.Background(), messaging.Message{Body: body})

		// Then
		require.NoError(t, err)
		total, err := store.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("should fail on malformed body", func(t *testing.T) {
		// Given
		h := NewEventHandler(NewService(NewMemoryStore(), zap.NewNop()), zap.NewNop())

		// When
		err := h.HandleMessage(context.Background(), messaging.Message{Body: []byte("{not json")})

		// Then
		require.Error(t, err)
	})

	t.Run("should surface store failures to the runner", func(t *testing.T) {
		// Given
		h := NewEventHandler(NewService(&failingStore{NewMemoryStore()}, zap.NewNop()), zap.NewNop())

		// When
		err := deliver(t, h, events.NewLeadCreated(1, "l@b.com", "A", "B", "Acme", "Tech", "bob", 100, "NEW"))

		// Then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store unavailable")
	})

	t.Run("should keep working after a failed message", func(t *testing.T) {
		// Given: two messages through the same handler, first one fails
		store := NewMemoryStore()
		svc := NewService(store, zap.NewNop())
		h := NewEventHandler(svc, zap.NewNop())

		require.Error(t, h.HandleMessage(context.Background(), messaging.Message{Body: []byte("broken")}))

		// When
		err := deliver(t, h, events.NewTaskCompleted(1, "bob", "Call", time.Now().UTC()))

		// Then
		require.NoError(t, err)
		total, err := store.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}
