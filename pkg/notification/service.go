package notification

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CreateRequest carries the fields a caller may set when creating a
// notification. Status is not among them: new notifications always start
// UNREAD.
type CreateRequest struct {
	Type        Type
	Message     string
	Recipient   string
	RelatedType string
	RelatedID   *int64
}

// Statistics aggregates notification counts by status and type.
type Statistics struct {
	Total       int64 `json:"total"`
	Unread      int64 `json:"unread"`
	Read        int64 `json:"read"`
	Archived    int64 `json:"archived"`
	Info        int64 `json:"info"`
	Warning     int64 `json:"warning"`
	Alert       int64 `json:"alert"`
	Task        int64 `json:"task"`
	Lead        int64 `json:"lead"`
	Opportunity int64 `json:"opportunity"`
	Customer    int64 `json:"customer"`
}

// Service exposes the notification operations used by the consumers and by
// the inbox API of the notification service.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (Notification, error)
	GetByID(ctx context.Context, id string) (Notification, error)
	MarkAsRead(ctx context.Context, id string) (Notification, error)
	Archive(ctx context.Context, id string) (Notification, error)
	Delete(ctx context.Context, id string) error

	ListByRecipient(ctx context.Context, recipient string, page PageRequest) (Page, error)
	ListByStatus(ctx context.Context, status Status, page PageRequest) (Page, error)
	ListByType(ctx context.Context, t Type, page PageRequest) (Page, error)
	ListByRelated(ctx context.Context, relatedType string, relatedID int64) ([]Notification, error)
	ListByCreatedAtRange(ctx context.Context, from, to time.Time) ([]Notification, error)

	Statistics(ctx context.Context) (Statistics, error)
	CountByRecipient(ctx context.Context, recipient string) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	CountByType(ctx context.Context, t Type) (int64, error)
}

type service struct {
	store Store
	log   *zap.Logger
}

func NewService(store Store, log *zap.Logger) Service {
	return &service{
		store: store,
		log:   log.Named("notification-service"),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (Notification, error) {
	s.log.Info("creating notification", zap.String("recipient", req.Recipient))

	return s.store.Insert(ctx, Notification{
		Type:        req.Type,
		Message:     req.Message,
		Recipient:   req.Recipient,
		Status:      StatusUnread,
		RelatedType: req.RelatedType,
		RelatedID:   req.RelatedID,
	})
}

func (s *service) GetByID(ctx context.Context, id string) (Notification, error) {
	return s.store.FindByID(ctx, id)
}

func (s *service) MarkAsRead(ctx context.Context, id string) (Notification, error) {
	return s.store.UpdateStatus(ctx, id, StatusRead)
}

func (s *service) Archive(ctx context.Context, id string) (Notification, error) {
	return s.store.UpdateStatus(ctx, id, StatusArchived)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *service) ListByRecipient(ctx context.Context, recipient string, page PageRequest) (Page, error) {
	return s.store.FindByRecipient(ctx, recipient, page)
}

func (s *service) ListByStatus(ctx context.Context, status Status, page PageRequest) (Page, error) {
	return s.store.FindByStatus(ctx, status, page)
}

func (s *service) ListByType(ctx context.Context, t Type, page PageRequest) (Page, error) {
	return s.store.FindByType(ctx, t, page)
}

func (s *service) ListByRelated(ctx context.Context, relatedType string, relatedID int64) ([]Notification, error) {
	return s.store.FindByRelated(ctx, relatedType, relatedID)
}

func (s *service) ListByCreatedAtRange(ctx context.Context, from, to time.Time) ([]Notification, error) {
	return s.store.FindByCreatedAtRange(ctx, from, to)
}

func (s *service) Statistics(ctx context.Context) (Statistics, error) {
	var stats Statistics
	var err error

	if stats.Total, err = s.store.Count(ctx); err != nil {
		return Statistics{}, err
	}

	statusTargets := map[Status]*int64{
		StatusUnread:   &stats.Unread,
		StatusRead:     &stats.Read,
		StatusArchived: &stats.Archived,
	}
	for status, target := range statusTargets {
		if *target, err = s.store.CountByStatus(ctx, status); err != nil {
			return Statistics{}, err
		}
	}

	typeTargets := map[Type]*int64{
		TypeInfo:        &stats.Info,
		TypeWarning:     &stats.Warning,
		TypeAlert:       &stats.Alert,
		TypeTask:        &stats.Task,
		TypeLead:        &stats.Lead,
		TypeOpportunity: &stats.Opportunity,
		TypeCustomer:    &stats.Customer,
	}
	for t, target := range typeTargets {
		if *target, err = s.store.CountByType(ctx, t); err != nil {
			return Statistics{}, err
		}
	}

	return stats, nil
}

func (s *service) CountByRecipient(ctx context.Context, recipient string) (int64, error) {
	return s.store.CountByRecipient(ctx, recipient)
}

func (s *service) CountByStatus(ctx context.Context, status Status) (int64, error) {
	return s.store.CountByStatus(ctx, status)
}

func (s *service) CountByType(ctx context.Context, t Type) (int64, error) {
	return s.store.CountByType(ctx, t)
}
