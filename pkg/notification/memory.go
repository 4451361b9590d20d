package notification

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MemoryStore is an in-memory Store for the standalone environment and
// tests. Listings are returned in insertion order.
type MemoryStore struct {
	mu    sync.RWMutex
	items []Notification
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(_ context.Context, n Notification) (Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	n.ID = uuid.NewString()
	if n.Status == "" {
		n.Status = StatusUnread
	}
	n.CreatedAt = now
	n.UpdatedAt = now

	s.items = append(s.items, n)
	return n, nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := lo.Find(s.items, func(n Notification) bool { return n.ID == id })
	if !ok {
		return Notification{}, ErrNotFound
	}
	return n, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, id string, status Status) (Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, i, ok := lo.FindIndexOf(s.items, func(n Notification) bool { return n.ID == id })
	if !ok {
		return Notification{}, ErrNotFound
	}

	s.items[i].Status = status
	s.items[i].UpdatedAt = time.Now().UTC()
	return s.items[i], nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, i, ok := lo.FindIndexOf(s.items, func(n Notification) bool { return n.ID == id })
	if !ok {
		return ErrNotFound
	}

	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

func (s *MemoryStore) FindByRecipient(_ context.Context, recipient string, page PageRequest) (Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := lo.Filter(s.items, func(n Notification, _ int) bool { return n.Recipient == recipient })
	return paginate(matched, page), nil
}

func (s *MemoryStore) FindByStatus(_ context.Context, status Status, page PageRequest) (Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := lo.Filter(s.items, func(n Notification, _ int) bool { return n.Status == status })
	return paginate(matched, page), nil
}

func (s *MemoryStore) FindByType(_ context.Context, t Type, page PageRequest) (Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := lo.Filter(s.items, func(n Notification, _ int) bool { return n.Type == t })
	return paginate(matched, page), nil
}

func (s *MemoryStore) FindByRelated(_ context.Context, relatedType string, relatedID int64) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.items, func(n Notification, _ int) bool {
		return n.RelatedType == relatedType && n.RelatedID != nil && *n.RelatedID == relatedID
	}), nil
}

func (s *MemoryStore) FindByCreatedAtRange(_ context.Context, from, to time.Time) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.items, func(n Notification, _ int) bool {
		return !n.CreatedAt.Before(from) && !n.CreatedAt.After(to)
	}), nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items)), nil
}

func (s *MemoryStore) CountByRecipient(_ context.Context, recipient string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(lo.CountBy(s.items, func(n Notification) bool { return n.Recipient == recipient })), nil
}

func (s *MemoryStore) CountByStatus(_ context.Context, status Status) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(lo.CountBy(s.items, func(n Notification) bool { return n.Status == status })), nil
}

func (s *MemoryStore) CountByType(_ context.Context, t Type) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(lo.CountBy(s.items, func(n Notification) bool { return n.Type == t })), nil
}

func paginate(matched []Notification, page PageRequest) Page {
	page = normalizePage(page)

	total := int64(len(matched))
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)

	return Page{
		Items:  slices.Clone(matched[start:end]),
		Total:  total,
		Offset: page.Offset,
		Limit:  page.Limit,
	}
}
