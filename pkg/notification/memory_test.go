package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertFixture(t *testing.T, store *MemoryStore, n Notification) Notification {
	t.Helper()
	saved, err := store.Insert(context.Background(), n)
	require.NoError(t, err)
	return saved
}

func TestMemoryStoreInsert(t *testing.T) {
	t.Run("should generate id and timestamps", func(t *testing.T) {
		// Given
		store := NewMemoryStore()

		// When
		saved := insertFixture(t, store, Notification{
			Type:      TypeCustomer,
			Message:   "Event customer.created occurred",
			Recipient: "admin@crm.com",
		})

		// Then
		assert.NotEmpty(t, saved.ID)
		assert.Equal(t, StatusUnread, saved.Status)
		assert.False(t, saved.CreatedAt.IsZero())
		assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	})
}

func TestMemoryStoreFindByID(t *testing.T) {
	t.Run("should find inserted notification", func(t *testing.T) {
		// Given
		store := NewMemoryStore()
		saved := insertFixture(t, store, Notification{Type: TypeInfo, Recipient: "a@b.com"})

		// When
		found, err := store.FindByID(context.Background(), saved.ID)

		// Then
		require.NoError(t, err)
		assert.Equal(t, saved, found)
	})

	t.Run("should return ErrNotFound for unknown id", func(t *testing.T) {
		// Given
		store := NewMemoryStore()

		// When
		_, err := store.FindByID(context.Background(), "missing")

		// Then
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStoreUpdateStatus(t *testing.T) {
	t.Run("should update status and refresh UpdatedAt", func(t *testing.T) {
		// Given
		store := NewMemoryStore()
		saved := insertFixture(t, store, Notification{Type: TypeInfo, Recipient: "a@b.com"})

		// When
		updated, err := store.UpdateStatus(context.Background(), saved.ID, StatusRead)

		// Then
		require.NoError(t, err)
		assert.Equal(t, StatusRead, updated.Status)
		assert.False(t, updated.UpdatedAt.Before(saved.UpdatedAt))
	})

	t.Run("should return ErrNotFound for unknown id", func(t *testing.T) {
		// Given
		store := NewMemoryStore()

		// When
		_, err := store.UpdateStatus(context.Background(), "missing", StatusRead)

		// Then
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStoreDelete(t *testing.T) {
	t.Run("should delete notification", func(t *testing.T) {
		// Given
		store := NewMemoryStore()
		saved := insertFixture(t, store, Notification{Type: TypeInfo, Recipient: "a@b.com"})

		// When
		err := store.Delete(context.Background(), saved.ID)

		// Then
		require.NoError(t, err)
		_, err = store.FindByID(context.Background(), saved.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should return ErrNotFound for unknown id", func(t *testing.T) {
		// Given
		store := NewMemoryStore()

		// When
		err := store.Delete(context.Background(), "missing")

		// Then
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStorePaging(t *testing.T) {
	t.Run("should page by recipient in insertion order", func(t *testing.T) {
		// Given
		store := NewMemoryStore()
		for i := 0; i < 5; i++ {
			insertFixture(t, store, Notification{Type: TypeInfo, Recipient: "admin@crm.com"})
		}
		insertFixture(t, store, Notification{Type: TypeInfo, Recipient: "other@crm.com"})

		// When
		page, err := store.FindByRecipient(context.Background(), "admin@crm.com", PageRequest{Offset: 2, Limit: 2})

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(5), page.Total)
		assert.Len(t, page.Items, 2)
	})

	t.Run("should apply default limit", func(t *testing.T) {
		// Given
		store := NewMemoryStore()
		insertFixture(t, store, Notification{Type: TypeInfo, Recipient: "a@b.com"})

		// When
		page, err := store.FindByRecipient(context.Background(), "a@b.com", PageRequest{})

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(20), page.Limit)
		assert.Len(t, page.Items, 1)
	})

	t.Run("should return empty window past the end", func(t *testing.T) {
		// Given
		store := NewMemoryStore()
		insertFixture(t, store, Notification{Type: TypeInfo, Recipient: "a@b.com"})

		// When
		page, err := store.FindByRecipient(context.Background(), "a@b.com", PageRequest{Offset: 10, Limit: 5})

		// Then
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("should page by status and type", func(t *testing.T) {
		// Given
		store := NewMemoryStore()
		a := insertFixture(t, store, Notification{Type: TypeLead, Recipient: "a@b.com"})
		insertFixture(t, store, Notification{Type: TypeCustomer, Recipient: "a@b.com"})
		_, err := store.UpdateStatus(context.Background(), a.ID, StatusRead)
		require.NoError(t, err)

		// When
		read, err := store.FindByStatus(context.Background(), StatusRead, PageRequest{})
		require.NoError(t, err)
		leads, err := store.FindByType(context.Background(), TypeLead, PageRequest{})
		require.NoError(t, err)

		// Then
		assert.Equal(t, int64(1), read.Total)
		assert.Equal(t, int64(1), leads.Total)
		assert.Equal(t, a.ID, leads.Items[0].ID)
	})
}

func TestMemoryStoreFindByRelated(t *testing.T) {
	// Given
	store := NewMemoryStore()
	leadID := int64(42)
	insertFixture(t, store, Notification{Type: TypeLead, Recipient: "a@b.com", RelatedType: "LEAD", RelatedID: &leadID})
	insertFixture(t, store, Notification{Type: TypeLead, Recipient: "a@b.com", RelatedType: "LEAD"})

	// When
	found, err := store.FindByRelated(context.Background(), "LEAD", 42)

	// Then
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(42), *found[0].RelatedID)
}

func TestMemoryStoreFindByCreatedAtRange(t *testing.T) {
	// Given
	store := NewMemoryStore()
	saved := insertFixture(t, store, Notification{Type: TypeInfo, Recipient: "a@b.com"})

	// When
	within, err := store.FindByCreatedAtRange(context.Background(), saved.CreatedAt.Add(-time.Minute), saved.CreatedAt.Add(time.Minute))
	require.NoError(t, err)
	outside, err := store.FindByCreatedAtRange(context.Background(), saved.CreatedAt.Add(time.Hour), saved.CreatedAt.Add(2*time.Hour))
	require.NoError(t, err)

	// Then
	assert.Len(t, within, 1)
	assert.Empty(t, outside)
}

func TestMemoryStoreCounts(t *testing.T) {
	// Given
	store := NewMemoryStore()
	insertFixture(t, store, Notification{Type: TypeLead, Recipient: "admin@crm.com"})
	insertFixture(t, store, Notification{Type: TypeLead, Recipient: "admin@crm.com"})
	insertFixture(t, store, Notification{Type: TypeInfo, Recipient: "jane@acme.com"})

	ctx := context.Background()

	// When / Then
	total, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	byRecipient, err := store.CountByRecipient(ctx, "admin@crm.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), byRecipient)

	unread, err := store.CountByStatus(ctx, StatusUnread)
	require.NoError(t, err)
	assert.Equal(t, int64(3), unread)

	leads, err := store.CountByType(ctx, TypeLead)
	require.NoError(t, err)
	assert.Equal(t, int64(2), leads)
}
