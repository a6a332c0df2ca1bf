package banner

import (
	"context"
	"errors"
	"time"

	"github.com/elmufurqaan/site/backend/go-services/internal/repository"
	"github.com/elmufurqaan/site/backend/go-services/pkg/apperr"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateResult is the insert acknowledgement returned to clients.
type CreateResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// Service defines the banner operations used by the handler layer.
type Service interface {
	List(ctx context.Context) ([]Banner, error)
	Get(ctx context.Context, id string) (*Banner, error)
	Create(ctx context.Context, in Input) (CreateResult, error)
	Update(ctx context.Context, id string, in Input) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	col repository.Collection
	now func() time.Time
}

// NewService returns a Service bound to the banner collection.
func NewService(col repository.Collection) Service {
	return &service{col: col, now: time.Now}
}

func idFilter(id string) (bson.M, error) {
	f, err := repository.IDFilter(id)
	if err != nil {
		return nil, apperr.BadRequest("Invalid banner ID")
	}
	return f, nil
}

func (s *service) List(ctx context.Context) ([]Banner, error) {
	out := []Banner{}
	if err := s.col.Find(ctx, bson.M{}, nil, &out); err != nil {
		return nil, apperr.Internal("Failed to fetch banners", err).WithOp("banner.List")
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (*Banner, error) {
	f, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	var b Banner
	if err := s.col.FindOne(ctx, f, &b); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Banner not found")
		}
		return nil, apperr.Internal("Failed to fetch banner", err).WithOp("banner.Get")
	}
	return &b, nil
}

func (s *service) Create(ctx context.Context, in Input) (CreateResult, error) {
	b := Banner{
		Image:       in.Image,
		Heading:     orDefault(in.Heading, DefaultHeading),
		Subheading:  orDefault(in.Subheading, DefaultSubheading),
		Button1Text: orDefault(in.Button1Text, DefaultButton1Text),
		Button1Link: orDefault(in.Button1Link, DefaultButton1Link),
		Button2Text: orDefault(in.Button2Text, DefaultButton2Text),
		Button2Link: orDefault(in.Button2Link, DefaultButton2Link),
		CreatedAt:   s.now().UTC(),
	}
	id, err := s.col.InsertOne(ctx, b)
	if err != nil {
		return CreateResult{}, apperr.Internal("Failed to add banner", err).WithOp("banner.Create")
	}
	return CreateResult{Acknowledged: true, InsertedID: id}, nil
}

// Update overwrites every mutable field; fields missing from in are stored as null.
func (s *service) Update(ctx context.Context, id string, in Input) error {
	f, err := idFilter(id)
	if err != nil {
		return err
	}
	set := bson.M{
		"image":       in.Image,
		"heading":     in.Heading,
		"subheading":  in.Subheading,
		"button1Text": in.Button1Text,
		"button1Link": in.Button1Link,
		"button2Text": in.Button2Text,
		"button2Link": in.Button2Link,
		"updatedAt":   s.now().UTC(),
	}
	res, err := s.col.UpdateOne(ctx, f, bson.M{"$set": set})
	if err != nil {
		return apperr.Internal("Failed to update banner", err).WithOp("banner.Update")
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Banner not found")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	f, err := idFilter(id)
	if err != nil {
		return err
	}
	n, err := s.col.DeleteOne(ctx, f)
	if err != nil {
		return apperr.Internal("Failed to delete banner", err).WithOp("banner.Delete")
	}
	if n == 0 {
		return apperr.NotFound("Banner not found")
	}
	return nil
}
