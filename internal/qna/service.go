package qna

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/elmufurqaan/site/backend/go-services/internal/repository"
	"github.com/elmufurqaan/site/backend/go-services/pkg/apperr"
	"go.mongodb.org/mongo-driver/bson"
)

// Service defines the Q&A operations used by the handler layer.
type Service interface {
	// List returns questions newest first; status filters by pending/answered when set.
	List(ctx context.Context, status string) ([]QnA, error)
	Get(ctx context.Context, id string) (*QnA, error)
	// Submit stores a new pending question. clientIP is used when the body has no userIp.
	Submit(ctx context.Context, in SubmitInput, clientIP string) (string, error)
	Answer(ctx context.Context, id string, in AnswerInput) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	col repository.Collection
	now func() time.Time
}

// NewService returns a Service bound to the qna collection.
func NewService(col repository.Collection) Service {
	return &service{col: col, now: time.Now}
}

func idFilter(id string) (bson.M, error) {
	f, err := repository.IDFilter(id)
	if err != nil {
		return nil, apperr.BadRequest("Invalid Q&A ID")
	}
	return f, nil
}

func (s *service) List(ctx context.Context, status string) ([]QnA, error) {
	filter := bson.M{}
	switch status {
	case "":
	case StatusPending:
		filter["answer"] = nil
	case StatusAnswered:
		filter["answer"] = bson.M{"$ne": nil}
	default:
		return nil, apperr.BadRequest("Invalid status. Must be: pending or answered")
	}
	out := []QnA{}
	if err := s.col.Find(ctx, filter, repository.NewestFirst(), &out); err != nil {
		return nil, apperr.Internal("Failed to fetch Q&A", err).WithOp("qna.List")
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (*QnA, error) {
	f, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	var q QnA
	if err := s.col.FindOne(ctx, f, &q); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Q&A not found")
		}
		return nil, apperr.Internal("Failed to fetch Q&A", err).WithOp("qna.Get")
	}
	return &q, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func (s *service) Submit(ctx context.Context, in SubmitInput, clientIP string) (string, error) {
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return "", apperr.Validation("Question is required")
	}
	q := QnA{
		Question:  question,
		UserName:  firstNonEmpty(strings.TrimSpace(in.UserName), DefaultUserName),
		UserIP:    firstNonEmpty(strings.TrimSpace(in.UserIP), clientIP, UnknownIP),
		CreatedAt: s.now().UTC(),
	}
	if email := strings.TrimSpace(in.UserEmail); email != "" {
		q.UserEmail = &email
	}
	id, err := s.col.InsertOne(ctx, q)
	if err != nil {
		return "", apperr.Internal("Failed to submit question", err).WithOp("qna.Submit")
	}
	return id, nil
}

// Answer moves a question to the answered state. A blank answer is rejected,
// so an answered question never returns to pending.
func (s *service) Answer(ctx context.Context, id string, in AnswerInput) error {
	answer := strings.TrimSpace(in.Answer)
	if answer == "" {
		return apperr.Validation("Answer is required")
	}
	f, err := idFilter(id)
	if err != nil {
		return err
	}
	set := bson.M{"answer": answer, "updatedAt": s.now().UTC()}
	if question := strings.TrimSpace(in.Question); question != "" {
		set["question"] = question
	}
	res, err := s.col.UpdateOne(ctx, f, bson.M{"$set": set})
	if err != nil {
		return apperr.Internal("Failed to update Q&A", err).WithOp("qna.Answer")
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Q&A not found")
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
		return apperr.Internal("Failed to delete Q&A", err).WithOp("qna.Delete")
	}
	if n == 0 {
		return apperr.NotFound("Q&A not found")
	}
	return nil
}
