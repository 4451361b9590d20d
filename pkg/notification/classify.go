package notification

import "strings"

// classify maps an event type to a notification type by case-sensitive
// substring match, checked in a fixed order. Only upper-cased legacy event
// types ("USER_REGISTERED" style) carry the markers; the lower-cased dotted
// types fall through to INFO.
func classify(eventType string) Type {
	switch {
	case strings.Contains(eventType, "CUSTOMER"):
		return TypeCustomer
	case strings.Contains(eventType, "LEAD"):
		return TypeLead
	case strings.Contains(eventType, "TASK"):
		return TypeTask
	case strings.Contains(eventType, "OPPORTUNITY"):
		return TypeOpportunity
	default:
		return TypeInfo
	}
}
