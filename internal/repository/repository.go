// Package repository is the document-store boundary. Each Collection is bound
// to one named collection; services receive the collections they need and
// only issue the query shapes defined here (bson filters, $set updates).
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid document id")
)

// FindOptions controls ordering and paging of Find.
type FindOptions struct {
	Sort       string
	Descending bool
	Skip       int64
	Limit      int64
}

// NewestFirst sorts by createdAt descending.
func NewestFirst() *FindOptions {
	return &FindOptions{Sort: "createdAt", Descending: true}
}

// UpdateResult mirrors the store's update/replace acknowledgement.
type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// Collection is a named document collection.
type Collection interface {
	Name() string
	// Find decodes all matches into results, which must be a pointer to a slice.
	Find(ctx context.Context, filter bson.M, opts *FindOptions, results interface{}) error
	// FindOne decodes the first match into result or returns ErrNotFound.
	FindOne(ctx context.Context, filter bson.M, result interface{}) error
	// InsertOne stores doc and returns its identifier as a string.
	InsertOne(ctx context.Context, doc interface{}) (string, error)
	UpdateOne(ctx context.Context, filter bson.M, update bson.M) (UpdateResult, error)
	ReplaceOne(ctx context.Context, filter bson.M, doc interface{}, upsert bool) (UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
	DeleteMany(ctx context.Context, filter bson.M) (int64, error)
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
}

// ParseID converts a hex identifier into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// IDFilter returns the {_id: ObjectId(id)} filter.
func IDFilter(id string) (bson.M, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": oid}, nil
}

// ValidIDs parses the identifiers that are well formed and drops the rest.
func ValidIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := ParseID(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}

// IDString renders a stored identifier as a string.
func IDString(v interface{}) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case nil:
		return ""
	default:
		return fmt.Sprint(id)
	}
}
