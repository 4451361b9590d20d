// Package events defines the shared domain-event envelope and the closed set
// of payload variants exchanged between the CRM services. Every variant
// embeds Metadata, so the wire document is flat and consumers written
// independently of the producer can deserialize only the fields they
// recognize.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Domain identifies the business area an event belongs to. It is the first
// segment of the routing key and selects which queues receive the event.
type Domain string

const (
	DomainCustomer    Domain = "customer"
	DomainLead        Domain = "lead"
	DomainTask        Domain = "task"
	DomainOpportunity Domain = "opportunity"
	DomainUser        Domain = "user"
)

// Source service names, used as the envelope Source field.
const (
	SourceCustomerService = "customer-service"
	SourceSalesService    = "sales-service"
	SourceTaskService     = "task-service"
	SourceAuthService     = "auth-service"
)

// SchemaVersion is the current envelope schema version. It is carried for
// forward compatibility and is not branched on anywhere yet.
const SchemaVersion = "1.0"

// Metadata contains the common envelope fields present on every event
// regardless of variant.
type Metadata struct {
	// EventID is a unique identifier generated at construction, never reused.
	EventID string `json:"event_id"`
	// EventType is a dotted string identifying the fact, e.g. "customer.created".
	// It is immutable once set and determines which payload fields are meaningful.
	EventType string `json:"event_type"`
	// Timestamp is the producer-side construction time. Monotonic only within
	// a single producer process, there is no global ordering across producers.
	Timestamp time.Time `json:"timestamp"`
	// Source is the logical name of the producing service.
	Source string `json:"source"`
	// SchemaVersion defaults to "1.0".
	SchemaVersion string `json:"schema_version"`
}

// Event is implemented by every payload variant.
type Event interface {
	// Meta returns the common envelope fields.
	Meta() *Metadata
	// Domain returns the business area used for routing.
	Domain() Domain
}

// Meta implements Event for every variant embedding Metadata.
func (m *Metadata) Meta() *Metadata { return m }

func newMetadata(eventType, source string) Metadata {
	return Metadata{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		Timestamp:     time.Now().UTC(),
		Source:        source,
		SchemaVersion: SchemaVersion,
	}
}
