package events

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Factory creates a new empty instance of an event variant.
type Factory func() Event

// Registry stores event factories by event type for consumer-side
// deserialization. Register events once at startup and look them up by the
// event_type carried in the wire document.
type Registry interface {
	// Register adds an event factory for the given event type.
	Register(eventType string, factory Factory)
	// New creates a new event instance by its event type.
	// Returns an error if the event type is not registered.
	New(eventType string) (Event, error)
	// Has checks if an event type is registered.
	Has(eventType string) bool
	// Decode resolves the variant by the event_type field of the wire
	// document and unmarshals the full payload into it.
	Decode(body []byte) (Event, error)
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty event registry.
func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]Factory),
	}
}

// DefaultRegistry creates a registry with every event variant of the CRM
// system registered.
func DefaultRegistry() Registry {
	r := NewRegistry()

	r.Register(TypeCustomerCreated, func() Event { return &CustomerCreated{} })
	r.Register(TypeCustomerUpdated, func() Event { return &CustomerUpdated{} })
	r.Register(TypeCustomerDeleted, func() Event { return &CustomerDeleted{} })

	r.Register(TypeLeadCreated, func() Event { return &LeadCreated{} })
	r.Register(TypeLeadUpdated, func() Event { return &LeadUpdated{} })
	r.Register(TypeLeadDeleted, func() Event { return &LeadDeleted{} })
	r.Register(TypeLeadConverted, func() Event { return &LeadConverted{} })
	r.Register(TypeLeadStageChanged, func() Event { return &LeadStageChanged{} })
	r.Register(TypeLeadAssigned, func() Event { return &LeadAssigned{} })
	r.Register(TypeLeadClosed, func() Event { return &LeadClosed{} })

	r.Register(TypeOpportunityCreated, func() Event { return &OpportunityCreated{} })
	r.Register(TypeOpportunityUpdated, func() Event { return &OpportunityUpdated{} })
	r.Register(TypeOpportunityDeleted, func() Event { return &OpportunityDeleted{} })
	r.Register(TypeOpportunityWon, func() Event { return &OpportunityWon{} })
	r.Register(TypeOpportunityLost, func() Event { return &OpportunityLost{} })

	r.Register(TypeTaskCreated, func() Event { return &TaskCreated{} })
	r.Register(TypeTaskUpdated, func() Event { return &TaskUpdated{} })
	r.Register(TypeTaskDeleted, func() Event { return &TaskDeleted{} })
	r.Register(TypeTaskAssigned, func() Event { return &TaskAssigned{} })
	r.Register(TypeTaskCompleted, func() Event { return &TaskCompleted{} })
	r.Register(TypeTaskDueSoon, func() Event { return &TaskDueSoon{} })

	r.Register(TypeUserRegistered, func() Event { return &UserRegistered{} })

	return r
}

// Register adds an event factory for the given event type.
// If the event type is already registered, it will be overwritten.
func (r *registry) Register(eventType string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[eventType] = factory
}

func (r *registry) New(eventType string) (Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[eventType]
	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}
	return factory(), nil
}

func (r *registry) Has(eventType string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[eventType]
	return ok
}

func (r *registry) Decode(body []byte) (Event, error) {
	meta, err := DecodeMetadata(body)
	if err != nil {
		return nil, err
	}

	event, err := r.New(meta.EventType)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(body, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s event: %w", meta.EventType, err)
	}
	return event, nil
}

// Marshal serializes an event to its JSON wire form: a flat, field-named
// document carrying the envelope fields plus the variant payload.
func Marshal(e Event) ([]byte, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s event: %w", e.Meta().EventType, err)
	}
	return body, nil
}

// DecodeMetadata extracts only the common envelope fields from a wire
// document. Consumers that do not care about the payload (the generic
// notification deriver) use this to stay decoupled from producer types.
func DecodeMetadata(body []byte) (Metadata, error) {
	var meta Metadata
	if err := json.Unmarshal(body, &meta); err != nil {
		return Metadata{}, fmt.Errorf("failed to unmarshal event envelope: %w", err)
	}
	if meta.EventType == "" {
		return Metadata{}, fmt.Errorf("event envelope has no event_type")
	}
	return meta, nil
}
