// Package docstore implements the generic collection operations every
// typed store shares: timestamped inserts, ordered and filtered listings,
// merge updates, unconditional deletes, and best-effort counter bumps.
//
// Typed stores (applications, feedback, gallery, events, workshops) wrap
// these operations with their collection's defaults; handlers that need a
// generic operation (the admin delete) use the Store directly.
package docstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Store provides the generic operations over one Mongo database.
type Store struct {
	db  *mongo.Database
	log *zap.Logger
}

// New returns a Store over db.
func New(db *mongo.Database, logger *zap.Logger) *Store {
	return &Store{db: db, log: logger}
}

// Collection exposes the underlying collection for typed stores that need
// operations beyond the generic set.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Insert stamps doc with a created_at time and inserts it, returning the
// assigned id.
func (s *Store) Insert(ctx context.Context, collection string, doc bson.M) (primitive.ObjectID, error) {
	doc["created_at"] = time.Now().UTC()
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, nil
	}
	return id, nil
}

// Update merge-writes fields into the identified document plus an
// updated_at stamp. It never creates: the caller must ensure existence.
func (s *Store) Update(ctx context.Context, collection string, id primitive.ObjectID, fields bson.M) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	_, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// Delete removes the document unconditionally. No soft delete, no cascade.
func (s *Store) Delete(ctx context.Context, collection string, id primitive.ObjectID) error {
	_, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// IncrementCounter bumps a numeric field by one using a read-then-write.
// The two steps are not isolated, so concurrent bumps can lose an
// increment; the counters are telemetry and that loss is accepted.
// Failures are logged, never returned.
func (s *Store) IncrementCounter(ctx context.Context, collection string, id primitive.ObjectID, field string) {
	c := s.db.Collection(collection)

	var doc bson.M
	err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			s.log.Warn("counter read failed",
				zap.String("collection", collection), zap.String("field", field), zap.Error(err))
		}
		return
	}

	var current int64
	switch v := doc[field].(type) {
	case int32:
		current = int64(v)
	case int64:
		current = v
	case float64:
		current = int64(v)
	}

	if _, err := c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: current + 1}}); err != nil {
		s.log.Warn("counter write failed",
			zap.String("collection", collection), zap.String("field", field), zap.Error(err))
	}
}

// ListAll returns every document in the collection ordered by orderBy,
// newest first.
func ListAll[T any](ctx context.Context, s *Store, collection, orderBy string) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: orderBy, Value: -1}})
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFiltered is ListAll with an equality predicate applied first.
func ListFiltered[T any](ctx context.Context, s *Store, collection, field string, equals any, orderBy string) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: orderBy, Value: -1}})
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{field: equals}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns the document, or (nil, nil) when absent. Absence is a
// result, never an error.
func GetByID[T any](ctx context.Context, s *Store, collection string, id primitive.ObjectID) (*T, error) {
	var doc T
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
