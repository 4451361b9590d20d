package notification

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a notification does not exist in the store.
var ErrNotFound = errors.New("notification not found")

// PageRequest selects a window of a filtered listing.
type PageRequest struct {
	Offset int64
	Limit  int64
}

// Page is one window of a filtered listing plus the total match count.
type Page struct {
	Items  []Notification
	Total  int64
	Offset int64
	Limit  int64
}

// Store persists notifications. Implementations generate the ID and the
// CreatedAt/UpdatedAt timestamps on insert.
type Store interface {
	Insert(ctx context.Context, n Notification) (Notification, error)
	FindByID(ctx context.Context, id string) (Notification, error)
	// UpdateStatus sets the status and refreshes UpdatedAt.
	UpdateStatus(ctx context.Context, id string, status Status) (Notification, error)
	Delete(ctx context.Context, id string) error

	FindByRecipient(ctx context.Context, recipient string, page PageRequest) (Page, error)
	FindByStatus(ctx context.Context, status Status, page PageRequest) (Page, error)
	FindByType(ctx context.Context, t Type, page PageRequest) (Page, error)
	FindByRelated(ctx context.Context, relatedType string, relatedID int64) ([]Notification, error)
	FindByCreatedAtRange(ctx context.Context, from, to time.Time) ([]Notification, error)

	Count(ctx context.Context) (int64, error)
	CountByRecipient(ctx context.Context, recipient string) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	CountByType(ctx context.Context, t Type) (int64, error)
}

func normalizePage(page PageRequest) PageRequest {
	if page.Limit <= 0 {
		page.Limit = 20
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	return page
}
