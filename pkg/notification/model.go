// Package notification holds the notification domain: the persisted model,
// the store, the service and the event consumers deriving notifications and
// welcome emails from the event fabric.
package notification

import "time"

// Type categorizes a notification for filtering in the inbox UI.
type Type string

const (
	TypeInfo        Type = "INFO"
	TypeWarning     Type = "WARNING"
	TypeAlert       Type = "ALERT"
	TypeTask        Type = "TASK"
	TypeLead        Type = "LEAD"
	TypeOpportunity Type = "OPPORTUNITY"
	TypeCustomer    Type = "CUSTOMER"
)

// Types lists every notification type.
func Types() []Type {
	return []Type{TypeInfo, TypeWarning, TypeAlert, TypeTask, TypeLead, TypeOpportunity, TypeCustomer}
}

// Status is the read state of a notification. It only ever moves forward:
// UNREAD, READ, ARCHIVED.
type Status string

const (
	StatusUnread   Status = "UNREAD"
	StatusRead     Status = "READ"
	StatusArchived Status = "ARCHIVED"
)

// Statuses lists every notification status.
func Statuses() []Status {
	return []Status{StatusUnread, StatusRead, StatusArchived}
}

// Notification is a persisted message for a recipient derived from a domain
// event. RelatedType and RelatedID are a loose, untyped back-reference to the
// originating business entity and may be absent.
type Notification struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Type        Type      `bson:"type" json:"type"`
	Message     string    `bson:"message" json:"message"`
	Recipient   string    `bson:"recipient" json:"recipient"`
	Status      Status    `bson:"status" json:"status"`
	RelatedType string    `bson:"related_type,omitempty" json:"related_type,omitempty"`
	RelatedID   *int64    `bson:"related_id,omitempty" json:"related_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
