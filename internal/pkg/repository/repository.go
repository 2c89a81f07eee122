package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is a generic data-access wrapper over one MongoDB
// collection. Every entity service parameterizes it instead of
// re-implementing create/find/update/delete.
//
// Lookup methods treat an unknown or malformed id as "not found" and
// return a nil document with a nil error; callers translate that into
// a 404, never into a server error.
type Repository[T any] struct {
	coll *mongo.Collection
}

// New wraps a collection.
func New[T any](coll *mongo.Collection) *Repository[T] {
	return &Repository[T]{coll: coll}
}

// Collection exposes the underlying collection for queries the generic
// surface does not cover (pagination, aggregation).
func (r *Repository[T]) Collection() *mongo.Collection { return r.coll }

type defaulter interface {
	EnsureDefaults()
}

// Create inserts one document, assigning id and timestamps first.
func (r *Repository[T]) Create(ctx context.Context, doc *T) error {
	if d, ok := any(doc).(defaulter); ok {
		d.EnsureDefaults()
	}
	_, err := r.coll.InsertOne(ctx, doc)
	return err
}

// FindByID fetches one document by its hex object id.
func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, ok := ParseID(id)
	if !ok {
		return nil, nil
	}
	return r.FindOne(ctx, bson.M{"_id": oid})
}

// FindOne fetches the first document matching the filter.
func (r *Repository[T]) FindOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List fetches documents matching the filter with sort/skip/limit.
func (r *Repository[T]) List(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []T
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Count counts documents matching the filter.
func (r *Repository[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return r.coll.CountDocuments(ctx, filter)
}

// SetByID applies a partial $set atomically and returns the updated
// document, or nil if the id does not exist. updatedAt is always
// refreshed.
func (r *Repository[T]) SetByID(ctx context.Context, id string, fields bson.M) (*T, error) {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	return r.UpdateByID(ctx, id, bson.M{"$set": set})
}

// UpdateByID applies a raw update document atomically (find-and-update,
// returning the post-update state), or nil if the id does not exist.
func (r *Repository[T]) UpdateByID(ctx context.Context, id string, update bson.M) (*T, error) {
	oid, ok := ParseID(id)
	if !ok {
		return nil, nil
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc T
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteByID removes one document atomically and returns what was
// removed, or nil if the id does not exist.
func (r *Repository[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	oid, ok := ParseID(id)
	if !ok {
		return nil, nil
	}
	var doc T
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// SumField sums a numeric field across every document in the
// collection. Returns 0 for an empty collection.
func (r *Repository[T]) SumField(ctx context.Context, field string) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$" + field},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var result []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &result); err != nil {
		return 0, err
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}

// ParseID decodes a hex object id; false means the id can never match.
func ParseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
