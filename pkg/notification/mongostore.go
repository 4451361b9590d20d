package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	crmmongo "github.com/Sokol111/crm-commons/pkg/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

const collectionName = "notifications"

// MongoStore persists notifications in MongoDB. Every operation goes through
// the bulkhead, so consumer floods cannot exhaust the connection pool.
type MongoStore struct {
	coll     *mongodriver.Collection
	bulkhead *crmmongo.Bulkhead
	log      *zap.Logger
}

func NewMongoStore(m crmmongo.Mongo, bulkhead *crmmongo.Bulkhead, log *zap.Logger) *MongoStore {
	return &MongoStore{
		coll:     m.GetCollection(collectionName),
		bulkhead: bulkhead,
		log:      log.Named("notification-store"),
	}
}

func (s *MongoStore) Insert(ctx context.Context, n Notification) (Notification, error) {
	now := time.Now().UTC()
	n.ID = uuid.NewString()
	if n.Status == "" {
		n.Status = StatusUnread
	}
	n.CreatedAt = now
	n.UpdatedAt = now

	err := s.bulkhead.Execute(ctx, func() error {
		_, err := s.coll.InsertOne(ctx, n)
		return err
	})
	if err != nil {
		return Notification{}, fmt.Errorf("failed to insert notification: %w", err)
	}
	return n, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (Notification, error) {
	var n Notification
	err := s.bulkhead.Execute(ctx, func() error {
		return s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	})
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return Notification{}, ErrNotFound
		}
		return Notification{}, fmt.Errorf("failed to find notification %s: %w", id, err)
	}
	return n, nil
}

func (s *MongoStore) UpdateStatus(ctx context.Context, id string, status Status) (Notification, error) {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}

	var n Notification
	err := s.bulkhead.Execute(ctx, func() error {
		return s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
			options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&n)
	})
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return Notification{}, ErrNotFound
		}
		return Notification{}, fmt.Errorf("failed to update notification %s: %w", id, err)
	}
	return n, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	var deleted int64
	err := s.bulkhead.Execute(ctx, func() error {
		res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		deleted = res.DeletedCount
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", id, err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) FindByRecipient(ctx context.Context, recipient string, page PageRequest) (Page, error) {
	return s.findPage(ctx, bson.M{"recipient": recipient}, page)
}

func (s *MongoStore) FindByStatus(ctx context.Context, status Status, page PageRequest) (Page, error) {
	return s.findPage(ctx, bson.M{"status": status}, page)
}

func (s *MongoStore) FindByType(ctx context.Context, t Type, page PageRequest) (Page, error) {
	return s.findPage(ctx, bson.M{"type": t}, page)
}

func (s *MongoStore) FindByRelated(ctx context.Context, relatedType string, relatedID int64) ([]Notification, error) {
	return s.findAll(ctx, bson.M{"related_type": relatedType, "related_id": relatedID})
}

func (s *MongoStore) FindByCreatedAtRange(ctx context.Context, from, to time.Time) ([]Notification, error) {
	return s.findAll(ctx, bson.M{"created_at": bson.M{"$gte": from, "$lte": to}})
}

func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	return s.count(ctx, bson.M{})
}

func (s *MongoStore) CountByRecipient(ctx context.Context, recipient string) (int64, error) {
	return s.count(ctx, bson.M{"recipient": recipient})
}

func (s *MongoStore) CountByStatus(ctx context.Context, status Status) (int64, error) {
	return s.count(ctx, bson.M{"status": status})
}

func (s *MongoStore) CountByType(ctx context.Context, t Type) (int64, error) {
	return s.count(ctx, bson.M{"type": t})
}

func (s *MongoStore) findPage(ctx context.Context, filter bson.M, page PageRequest) (Page, error) {
	page = normalizePage(page)

	result := Page{
		Items:  []Notification{},
		Offset: page.Offset,
		Limit:  page.Limit,
	}

	err := s.bulkhead.Execute(ctx, func() error {
		total, err := s.coll.CountDocuments(ctx, filter)
		if err != nil {
			return err
		}
		result.Total = total

		cursor, err := s.coll.Find(ctx, filter, options.Find().
			SetSort(bson.D{{Key: "created_at", Value: 1}}).
			SetSkip(page.Offset).
			SetLimit(page.Limit))
		if err != nil {
			return err
		}
		return cursor.All(ctx, &result.Items)
	})
	if err != nil {
		return Page{}, fmt.Errorf("failed to list notifications: %w", err)
	}
	return result, nil
}

func (s *MongoStore) findAll(ctx context.Context, filter bson.M) ([]Notification, error) {
	items := []Notification{}
	err := s.bulkhead.Execute(ctx, func() error {
		cursor, err := s.coll.Find(ctx, filter, options.Find().
			SetSort(bson.D{{Key: "created_at", Value: 1}}))
		if err != nil {
			return err
		}
		return cursor.All(ctx, &items)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return items, nil
}

func (s *MongoStore) count(ctx context.Context, filter bson.M) (int64, error) {
	var total int64
	err := s.bulkhead.Execute(ctx, func() error {
		n, err := s.coll.CountDocuments(ctx, filter)
		if err != nil {
			return err
		}
		total = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return total, nil
}
