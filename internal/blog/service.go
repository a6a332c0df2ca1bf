// Package blog stores free-form blog posts. Posts are kept as the client sent
// them (title, content, author, tags, ...) plus server timestamps.
package blog

import (
	"context"
	"errors"
	"time"

	"github.com/elmufurqaan/site/backend/go-services/internal/repository"
	"github.com/elmufurqaan/site/backend/go-services/pkg/apperr"
	"go.mongodb.org/mongo-driver/bson"
)

type CreateResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// Service defines the blog operations used by the handler layer.
type Service interface {
	List(ctx context.Context) ([]bson.M, error)
	Get(ctx context.Context, id string) (bson.M, error)
	Create(ctx context.Context, post map[string]interface{}) (CreateResult, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (repository.UpdateResult, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	col repository.Collection
	now func() time.Time
}

// NewService returns a Service bound to the blogs collection.
func NewService(col repository.Collection) Service {
	return &service{col: col, now: time.Now}
}

func idFilter(id string) (bson.M, error) {
	f, err := repository.IDFilter(id)
	if err != nil {
		return nil, apperr.BadRequest("Invalid blog ID")
	}
	return f, nil
}

// clientFields copies the client body without the store-owned identifier.
func clientFields(in map[string]interface{}) bson.M {
	out := make(bson.M, len(in)+1)
	for k, v := range in {
		if k == "_id" {
			continue
		}
		out[k] = v
	}
	return out
}

func (s *service) List(ctx context.Context) ([]bson.M, error) {
	out := []bson.M{}
	if err := s.col.Find(ctx, bson.M{}, repository.NewestFirst(), &out); err != nil {
		return nil, apperr.Internal("Failed to fetch blogs", err).WithOp("blog.List")
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (bson.M, error) {
	f, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	var post bson.M
	if err := s.col.FindOne(ctx, f, &post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Blog not found")
		}
		return nil, apperr.Internal("Failed to fetch blog", err).WithOp("blog.Get")
	}
	return post, nil
}

func (s *service) Create(ctx context.Context, post map[string]interface{}) (CreateResult, error) {
	doc := clientFields(post)
	if len(doc) == 0 {
		return CreateResult{}, apperr.Validation("Blog body is required")
	}
	doc["createdAt"] = s.now().UTC()
	id, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		return CreateResult{}, apperr.Internal("Failed to create blog", err).WithOp("blog.Create")
	}
	return CreateResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *service) Update(ctx context.Context, id string, fields map[string]interface{}) (repository.UpdateResult, error) {
	f, err := idFilter(id)
	if err != nil {
		return repository.UpdateResult{}, err
	}
	set := clientFields(fields)
	delete(set, "createdAt")
	set["updatedAt"] = s.now().UTC()
	res, err := s.col.UpdateOne(ctx, f, bson.M{"$set": set})
	if err != nil {
		return repository.UpdateResult{}, apperr.Internal("Failed to update blog", err).WithOp("blog.Update")
	}
	if res.MatchedCount == 0 {
		return res, apperr.NotFound("Blog not found")
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	f, err := idFilter(id)
	if err != nil {
		return err
	}
	n, err := s.col.DeleteOne(ctx, f)
	if err != nil {
		return apperr.Internal("Failed to delete blog", err).WithOp("blog.Delete")
	}
	if n == 0 {
		return apperr.NotFound("Blog not found")
	}
	return nil
}
