package messaging

import (
	"fmt"

	"github.com/Sokol111/crm-commons/pkg/events"
)

// ExchangeName is the single durable topic exchange every service publishes to.
const ExchangeName = "crm.events.exchange"

// Queue names. The user queue is named after the single routing key it was
// created for rather than following the "<domain>.events.queue" convention;
// the name is kept because deployed brokers already carry the durable queue.
const (
	QueueCustomerEvents = "customer.events.queue"
	QueueLeadEvents     = "lead.events.queue"
	QueueTaskEvents     = "task.events.queue"
	QueueOpportunity    = "opportunity.events.queue"
	QueueUserRegistered = "user.events.user.registered"
)

// Binding patterns. One pattern per domain, wildcard on the event type.
const (
	PatternCustomerEvents    = "customer.events.*"
	PatternLeadEvents        = "lead.events.*"
	PatternTaskEvents        = "task.events.*"
	PatternOpportunityEvents = "opportunity.events.*"
	PatternUserEvents        = "user.events.*"
)

// Binding ties a queue to the exchange by a topic pattern.
type Binding struct {
	Queue   string
	Pattern string
}

// Bindings returns the full routing topology. Transports declare exactly
// this table, nothing subscribes outside of it.
func Bindings() []Binding {
	return []Binding{
		{Queue: QueueCustomerEvents, Pattern: PatternCustomerEvents},
		{Queue: QueueLeadEvents, Pattern: PatternLeadEvents},
		{Queue: QueueTaskEvents, Pattern: PatternTaskEvents},
		{Queue: QueueOpportunity, Pattern: PatternOpportunityEvents},
		{Queue: QueueUserRegistered, Pattern: PatternUserEvents},
	}
}

// RoutingKey builds the concrete topic an event is published with.
func RoutingKey(domain events.Domain, eventType string) string {
	return fmt.Sprintf("%s.events.%s", domain, eventType)
}
