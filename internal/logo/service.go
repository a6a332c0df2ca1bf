// Package logo stores the site's single active logo.
//
// The logo lives in a fixed-key slot: saving replaces the slot document in
// one upsert, so the collection never holds two logos from this API. Documents
// under other keys (older multi-document data) are swept after each save.
package logo

import (
	"context"
	"errors"
	"time"

	"github.com/elmufurqaan/site/backend/go-services/internal/repository"
	"github.com/elmufurqaan/site/backend/go-services/pkg/apperr"
	"go.mongodb.org/mongo-driver/bson"
)

// SlotID is the _id of the active logo document.
const SlotID = "active"

type Service interface {
	Get(ctx context.Context) (bson.M, error)
	Save(ctx context.Context, fields map[string]interface{}) (bson.M, error)
}

type service struct {
	col repository.Collection
	now func() time.Time
}

// NewService returns a Service bound to the logo collection.
func NewService(col repository.Collection) Service {
	return &service{col: col, now: time.Now}
}

func (s *service) Get(ctx context.Context) (bson.M, error) {
	var doc bson.M
	err := s.col.FindOne(ctx, bson.M{"_id": SlotID}, &doc)
	if errors.Is(err, repository.ErrNotFound) {
		// data written before the slot existed
		err = s.col.FindOne(ctx, bson.M{}, &doc)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Logo not found")
		}
		return nil, apperr.Internal("Failed to fetch logo", err).WithOp("logo.Get")
	}
	return doc, nil
}

func (s *service) Save(ctx context.Context, fields map[string]interface{}) (bson.M, error) {
	doc := bson.M{}
	for k, v := range fields {
		if k != "_id" {
			doc[k] = v
		}
	}
	doc["updatedAt"] = s.now().UTC()
	if _, err := s.col.ReplaceOne(ctx, bson.M{"_id": SlotID}, doc, true); err != nil {
		return nil, apperr.Internal("Failed to create logo", err).WithOp("logo.Save")
	}
	if _, err := s.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$ne": SlotID}}); err != nil {
		return nil, apperr.Internal("Failed to create logo", err).WithOp("logo.Save")
	}
	doc["_id"] = SlotID
	return doc, nil
}
