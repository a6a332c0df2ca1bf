package video

import (
	"context"
	"errors"
	"time"

	"github.com/elmufurqaan/site/backend/go-services/internal/repository"
	"github.com/elmufurqaan/site/backend/go-services/pkg/apperr"
	"github.com/elmufurqaan/site/backend/go-services/pkg/validate"
	"go.mongodb.org/mongo-driver/bson"
)

const msgRequired = "Title, description, thumbnail, and video URL are required"

// Service defines the video operations used by the handler layer.
type Service interface {
	List(ctx context.Context) ([]Video, error)
	Get(ctx context.Context, id string) (*Video, error)
	Create(ctx context.Context, in Input) (string, error)
	Update(ctx context.Context, id string, in Input) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	col repository.Collection
	val *validate.Validator
	now func() time.Time
}

// NewService returns a Service bound to the video collection.
func NewService(col repository.Collection) Service {
	return &service{col: col, val: validate.New(), now: time.Now}
}

func idFilter(id string) (bson.M, error) {
	f, err := repository.IDFilter(id)
	if err != nil {
		return nil, apperr.BadRequest("Invalid video ID")
	}
	return f, nil
}

func (s *service) List(ctx context.Context) ([]Video, error) {
	out := []Video{}
	if err := s.col.Find(ctx, bson.M{}, repository.NewestFirst(), &out); err != nil {
		return nil, apperr.Internal("Failed to fetch videos", err).WithOp("video.List")
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (*Video, error) {
	f, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	var v Video
	if err := s.col.FindOne(ctx, f, &v); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Video not found")
		}
		return nil, apperr.Internal("Failed to fetch video", err).WithOp("video.Get")
	}
	return &v, nil
}

func (s *service) Create(ctx context.Context, in Input) (string, error) {
	if fields := s.val.Struct(in, nil); fields != nil {
		return "", apperr.Validation(msgRequired)
	}
	v := Video{
		Title:       in.Title,
		Description: in.Description,
		Thumbnail:   in.Thumbnail,
		VideoURL:    in.VideoURL,
		Tags:        in.tags(),
		CreatedAt:   s.now().UTC(),
	}
	id, err := s.col.InsertOne(ctx, v)
	if err != nil {
		return "", apperr.Internal("Failed to add video", err).WithOp("video.Create")
	}
	return id, nil
}

// Update overwrites all video fields. Missing tags are stored as an empty list.
func (s *service) Update(ctx context.Context, id string, in Input) error {
	f, err := idFilter(id)
	if err != nil {
		return err
	}
	set := bson.M{
		"title":       in.Title,
		"description": in.Description,
		"thumbnail":   in.Thumbnail,
		"videoUrl":    in.VideoURL,
		"tags":        in.tags(),
		"updatedAt":   s.now().UTC(),
	}
	res, err := s.col.UpdateOne(ctx, f, bson.M{"$set": set})
	if err != nil {
		return apperr.Internal("Failed to update video", err).WithOp("video.Update")
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Video not found")
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
		return apperr.Internal("Failed to delete video", err).WithOp("video.Delete")
	}
	if n == 0 {
		return apperr.NotFound("Video not found")
	}
	return nil
}
