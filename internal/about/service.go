// Package about serves the About page content. The content is managed
// outside the API (see cmd/seed) and is read-only over HTTP.
package about

import (
	"context"
	"time"

	"github.com/elmufurqaan/site/backend/go-services/internal/repository"
	"github.com/elmufurqaan/site/backend/go-services/pkg/apperr"
	"go.mongodb.org/mongo-driver/bson"
)

type Service interface {
	List(ctx context.Context) ([]bson.M, error)
	// Replace swaps the collection content for doc and returns the new id.
	Replace(ctx context.Context, doc map[string]interface{}) (string, error)
}

type service struct {
	col repository.Collection
	now func() time.Time
}

// NewService returns a Service bound to the about collection.
func NewService(col repository.Collection) Service {
	return &service{col: col, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]bson.M, error) {
	out := []bson.M{}
	if err := s.col.Find(ctx, bson.M{}, nil, &out); err != nil {
		return nil, apperr.Internal("Failed to fetch about us", err).WithOp("about.List")
	}
	return out, nil
}

func (s *service) Replace(ctx context.Context, doc map[string]interface{}) (string, error) {
	if len(doc) == 0 {
		return "", apperr.Validation("About content is empty")
	}
	d := bson.M{}
	for k, v := range doc {
		if k != "_id" {
			d[k] = v
		}
	}
	d["updatedAt"] = s.now().UTC()
	if _, err := s.col.DeleteMany(ctx, bson.M{}); err != nil {
		return "", apperr.Internal("Failed to clear about us", err).WithOp("about.Replace")
	}
	id, err := s.col.InsertOne(ctx, d)
	if err != nil {
		return "", apperr.Internal("Failed to store about us", err).WithOp("about.Replace")
	}
	return id, nil
}
