package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("should create registered event", func(t *testing.T) {
		// Given
		r := DefaultRegistry()

		// When
		event, err := r.New(TypeCustomerCreated)

		// Then
		require.NoError(t, err)
		assert.IsType(t, &CustomerCreated{}, event)
	})

	t.Run("should return error for unknown event type", func(t *testing.T) {
		// Given
		r := DefaultRegistry()

		// When
		event, err := r.New("invoice.created")

		// Then
		require.Error(t, err)
		assert.Nil(t, event)
		assert.Contains(t, err.Error(), "unknown event type")
	})

	t.Run("should know every variant", func(t *testing.T) {
		// Given
		r := DefaultRegistry()

		types := []string{
			TypeCustomerCreated, TypeCustomerUpdated, TypeCustomerDeleted,
			TypeLeadCreated, TypeLeadUpdated, TypeLeadDeleted, TypeLeadConverted,
			TypeLeadStageChanged, TypeLeadAssigned, TypeLeadClosed,
			TypeOpportunityCreated, TypeOpportunityUpdated, TypeOpportunityDeleted,
			TypeOpportunityWon, TypeOpportunityLost,
			TypeTaskCreated, TypeTaskUpdated, TypeTaskDeleted, TypeTaskAssigned,
			TypeTaskCompleted, TypeTaskDueSoon,
			TypeUserRegistered,
		}

		// Then
		for _, eventType := range types {
			assert.True(t, r.Has(eventType), eventType)
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("should round-trip customer created event", func(t *testing.T) {
		// Given
		r := DefaultRegistry()
		original := NewCustomerCreated(42, "jane@acme.com", "Jane", "Doe", "Acme", "Tech", "bob")

		body, err := Marshal(original)
		require.NoError(t, err)

		// When
		decoded, err := r.Decode(body)

		// Then
		require.NoError(t, err)
		customer, ok := decoded.(*CustomerCreated)
		require.True(t, ok)
		assert.Equal(t, original.EventID, customer.EventID)
		assert.Equal(t, original.Source, customer.Source)
		assert.Equal(t, int64(42), customer.CustomerID)
		assert.Equal(t, "jane@acme.com", customer.Email)
		assert.Equal(t, "Acme", customer.Company)
	})

	t.Run("should round-trip user registered event", func(t *testing.T) {
		// Given
		r := DefaultRegistry()
		registeredAt := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
		original := NewUserRegistered(7, "jdoe", "jane@acme.com", "Jane", "Doe", "Jane Doe", registeredAt)

		body, err := Marshal(original)
		require.NoError(t, err)

		// When
		decoded, err := r.Decode(body)

		// Then
		require.NoError(t, err)
		user, ok := decoded.(*UserRegistered)
		require.True(t, ok)
		assert.Equal(t, "jdoe", user.Username)
		assert.Equal(t, "Jane Doe", user.FullName)
		assert.True(t, registeredAt.Equal(user.RegisteredAt))
	})

	t.Run("should round-trip every variant preserving the envelope", func(t *testing.T) {
		// Given
		r := DefaultRegistry()
		due := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

		variants := []Event{
			NewCustomerCreated(1, "a@b.com", "A", "B", "Acme", "Tech", "bob"),
			NewCustomerUpdated(1, "a@b.com", "A", "B", "Acme", "Tech", "bob"),
			NewCustomerDeleted(1, "a@b.com"),
			NewLeadCreated(2, "l@b.com", "A", "B", "Acme", "Tech", "bob", 500, "NEW"),
			NewLeadUpdated(2, "l@b.com", "A", "B", "Acme", "Tech", "bob", 500, "QUALIFIED"),
			NewLeadDeleted(2, "l@b.com"),
			NewLeadConverted(2, "l@b.com", 1, 3),
			NewLeadStageChanged(2, 1, "NEW", "QUALIFIED", 4),
			NewLeadAssigned(2, 1, 4, 5),
			NewLeadClosed(2, 1, "WON", 500, 4),
			NewOpportunityCreated(3, "Deal", "1", "2", "bob", 1000, "PROPOSAL", "NEW_BUSINESS"),
			NewOpportunityUpdated(3, "Deal", "1", "2", "bob", 1000, "NEGOTIATION", "NEW_BUSINESS"),
			NewOpportunityDeleted(3, "Deal"),
			NewOpportunityWon(3, "Deal", 1000, "1"),
			NewOpportunityLost(3, "Deal", "budget", "1"),
			NewTaskCreated(4, "Call", "Call customer", "CALL", "HIGH", "bob", 1, 2, due),
			NewTaskUpdated(4, "Call", "Call customer", "CALL", "LOW", "bob", 1, 2, due),
			NewTaskDeleted(4, "Call", "bob"),
			NewTaskAssigned(4, "bob", "alice", "Call", due),
			NewTaskCompleted(4, "alice", "Call", due),
			NewTaskDueSoon(4, "alice", "Call", due),
			NewUserRegistered(5, "jdoe", "j@d.com", "J", "D", "J D", due),
		}

		for _, original := range variants {
			// When
			body, err := Marshal(original)
			require.NoError(t, err)

			decoded, err := r.Decode(body)

			// Then
			require.NoError(t, err, original.Meta().EventType)
			assert.Equal(t, original.Meta().EventID, decoded.Meta().EventID)
			assert.Equal(t, original.Meta().EventType, decoded.Meta().EventType)
			assert.Equal(t, original.Meta().Source, decoded.Meta().Source)
			assert.Equal(t, original.Domain(), decoded.Domain())
		}
	})

	t.Run("should fail on unknown event type", func(t *testing.T) {
		// Given
		r := DefaultRegistry()
		body := []byte(`{"event_id":"x","event_type":"invoice.created","timestamp":"2025-06-01T10:30:00Z","source":"billing-service","schema_version":"1.0"}`)

		// When
		decoded, err := r.Decode(body)

		// Then
		require.Error(t, err)
		assert.Nil(t, decoded)
	})
}

func TestDecodeMetadata(t *testing.T) {
	t.Run("should decode envelope of an unknown variant", func(t *testing.T) {
		// Given
		body := []byte(`{"event_id":"abc","event_type":"invoice.created","timestamp":"2025-06-01T10:30:00Z","source":"billing-service","schema_version":"1.0","amount":99.9}`)

		// When
		meta, err := DecodeMetadata(body)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "abc", meta.EventID)
		assert.Equal(t, "invoice.created", meta.EventType)
		assert.Equal(t, "billing-service", meta.Source)
	})

	t.Run("should fail when event_type is missing", func(t *testing.T) {
		// Given
		body, err := json.Marshal(map[string]string{"event_id": "abc"})
		require.NoError(t, err)

		// When
		_, err = DecodeMetadata(body)

		// Then
		require.Error(t, err)
	})

	t.Run("should fail on malformed JSON", func(t *testing.T) {
		// When
		_, err := DecodeMetadata([]byte("{not json"))

		// Then
		require.Error(t, err)
	})
}
