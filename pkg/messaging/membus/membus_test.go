package membus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Sokol111/crm-commons/pkg/events"
	"github.com/Sokol111/crm-commons/pkg/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingHandler struct {
	messages []messaging.Message
	fail     error
}

func (h *recordingHandler) HandleMessage(_ context.Context, msg messaging.Message) error {
	h.messages = append(h.messages, msg)
	return h.fail
}

func timeFixture() time.Time {
	return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
}

func TestSubscribe(t *testing.T) {
	t.Run("should reject unknown queue", func(t *testing.T) {
		// Given
		bus := New(zap.NewNop())

		// When
		err := bus.Subscribe("billing.events.queue", &recordingHandler{})

		// Then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown queue")
	})

	t.Run("should reject duplicate subscriber", func(t *testing.T) {
		// Given
		bus := New(zap.NewNop())
		require.NoError(t, bus.Subscribe(messaging.QueueLeadEvents, &recordingHandler{}))

		// When
		err := bus.Subscribe(messaging.QueueLeadEvents, &recordingHandler{})

		// Then
		require.Error(t, err)
	})
}

func TestPublish(t *testing.T) {
	t.Run("should deliver to the matching domain queue only", func(t *testing.T) {
		// Given
		bus := New(zap.NewNop())
		leads := &recordingHandler{}
		customers := &recordingHandler{}
		require.NoError(t, bus.Subscribe(messaging.QueueLeadEvents, leads))
		require.NoError(t, bus.Subscribe(messaging.QueueCustomerEvents, customers))

		// When
		bus.Publish(context.Background(), events.NewLeadStageChanged(1, 2, "NEW", "QUALIFIED", 3))

		// Then
		require.Len(t, leads.messages, 1)
		assert.Equal(t, "lead.events.lead.stage.changed", leads.messages[0].RoutingKey)
		assert.Empty(t, customers.messages)
	})

	t.Run("should collect every subtype of a domain on one queue", func(t *testing.T) {
		// Given
		bus := New(zap.NewNop())
		tasks := &recordingHandler{}
		require.NoError(t, bus.Subscribe(messaging.QueueTaskEvents, tasks))

		due := events.NewTaskDueSoon(1, "bob", "Call customer", timeFixture())

		// When
		bus.Publish(context.Background(), events.NewTaskCreated(1, "Call", "", "CALL", "HIGH", "bob", 2, 3, timeFixture()))
		bus.Publish(context.Background(), events.NewTaskCompleted(1, "bob", "Call", timeFixture()))
		bus.Publish(context.Background(), due)

		// Then
		require.Len(t, tasks.messages, 3)
		assert.Equal(t, "task.events.task.due.soon", tasks.messages[2].RoutingKey)
	})

	t.Run("should deliver user registration to the dedicated queue", func(t *testing.T) {
		// Given
		bus := New(zap.NewNop())
		users := &recordingHandler{}
		require.NoError(t, bus.Subscribe(messaging.QueueUserRegistered, users))

		// When
		bus.Publish(context.Background(), events.NewUserRegistered(1, "jdoe", "j@d.com", "Jane", "Doe", "Jane Doe", timeFixture()))

		// Then
		require.Len(t, users.messages, 1)
		assert.Equal(t, "user.events.USER_REGISTERED", users.messages[0].RoutingKey)
	})

	t.Run("should keep delivering after a handler failure", func(t *testing.T) {
		// Given
		bus := New(zap.NewNop())
		failing := &recordingHandler{fail: errors.New("store unavailable")}
		require.NoError(t, bus.Subscribe(messaging.QueueCustomerEvents, failing))

		// When
		bus.Publish(context.Background(), events.NewCustomerCreated(1, "a@b.com", "A", "B", "Acme", "Tech", "bob"))
		bus.Publish(context.Background(), events.NewCustomerDeleted(1, "a@b.com"))

		// Then
		assert.Len(t, failing.messages, 2)
	})

	t.Run("should drop events for queues without subscriber", func(t *testing.T) {
		// Given
		bus := New(zap.NewNop())

		// When: no panic, nothing to observe
		bus.Publish(context.Background(), events.NewOpportunityWon(1, "Deal", 100, "2"))
	})
}
