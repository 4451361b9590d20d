package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetadata(t *testing.T) {
	t.Run("should fill envelope fields", func(t *testing.T) {
		// When
		meta := newMetadata(TypeCustomerCreated, SourceCustomerService)

		// Then
		assert.NotEmpty(t, meta.EventID)
		assert.Equal(t, TypeCustomerCreated, meta.EventType)
		assert.Equal(t, SourceCustomerService, meta.Source)
		assert.Equal(t, SchemaVersion, meta.SchemaVersion)
		assert.WithinDuration(t, time.Now().UTC(), meta.Timestamp, time.Second)
	})

	t.Run("should generate unique event IDs", func(t *testing.T) {
		// Given
		seen := make(map[string]struct{}, 10000)

		// When
		for i := 0; i < 10000; i++ {
			meta := newMetadata(TypeLeadCreated, SourceSalesService)
			seen[meta.EventID] = struct{}{}
		}

		// Then
		assert.Len(t, seen, 10000)
	})
}

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name      string
		event     Event
		eventType string
		domain    Domain
		source    string
	}{
		{
			name:      "customer created",
			event:     NewCustomerCreated(1, "a@b.com", "Jane", "Doe", "Acme", "Tech", "bob"),
			eventType: TypeCustomerCreated,
			domain:    DomainCustomer,
			source:    SourceCustomerService,
		},
		{
			name:      "lead converted",
			event:     NewLeadConverted(7, "lead@b.com", 3, 9),
			eventType: TypeLeadConverted,
			domain:    DomainLead,
			source:    SourceSalesService,
		},
		{
			name:      "opportunity won",
			event:     NewOpportunityWon(5, "Big deal", 12000.50, "42"),
			eventType: TypeOpportunityWon,
			domain:    DomainOpportunity,
			source:    SourceSalesService,
		},
		{
			name:      "task completed",
			event:     NewTaskCompleted(11, "bob", "Call customer", time.Now().UTC()),
			eventType: TypeTaskCompleted,
			domain:    DomainTask,
			source:    SourceTaskService,
		},
		{
			name:      "user registered",
			event:     NewUserRegistered(2, "jdoe", "j@d.com", "Jane", "Doe", "Jane Doe", time.Now().UTC()),
			eventType: TypeUserRegistered,
			domain:    DomainUser,
			source:    SourceAuthService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := tt.event.Meta()
			require.NotNil(t, meta)
			assert.Equal(t, tt.eventType, meta.EventType)
			assert.Equal(t, tt.domain, tt.event.Domain())
			assert.Equal(t, tt.source, meta.Source)
			assert.NotEmpty(t, meta.EventID)
		})
	}
}
