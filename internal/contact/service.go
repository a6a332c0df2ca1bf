package contact

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/elmufurqaan/site/backend/go-services/internal/repository"
	"github.com/elmufurqaan/site/backend/go-services/pkg/apperr"
	"github.com/elmufurqaan/site/backend/go-services/pkg/validate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	MinSearchLength = 2

	msgInvalidStatus = "Invalid status. Must be: unread, read, or replied"
	msgInvalidEmail  = "Invalid email format"
)

var createMessages = validate.Messages{
	"name":    {"required": "Name is required"},
	"email":   {"required": "Email is required", "basicemail": msgInvalidEmail},
	"subject": {"required": "Subject is required"},
	"message": {"required": "Message is required"},
}

// Service defines the contact operations used by the handler layer.
type Service interface {
	Create(ctx context.Context, in CreateInput) (string, error)
	List(ctx context.Context, page, limit int64) (*Page, error)
	Get(ctx context.Context, id string) (*Contact, error)
	Update(ctx context.Context, id string, in UpdateInput) error
	SetStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
	// DeleteMany removes the contacts with the given ids. Malformed ids are
	// skipped; it fails only when no id is usable.
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	Search(ctx context.Context, query string) ([]Contact, error)
	ByStatus(ctx context.Context, status Status) ([]Contact, error)
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	col repository.Collection
	val *validate.Validator
	now func() time.Time
}

// NewService returns a Service bound to the contact collection.
func NewService(col repository.Collection) Service {
	return &service{col: col, val: validate.New(), now: time.Now}
}

func idFilter(id string) (bson.M, error) {
	f, err := repository.IDFilter(id)
	if err != nil {
		return nil, apperr.BadRequest("Invalid contact ID")
	}
	return f, nil
}

func (s *service) Create(ctx context.Context, in CreateInput) (string, error) {
	in = CreateInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
	if fields := s.val.Struct(in, createMessages); fields != nil {
		return "", apperr.FieldErrors("Validation failed", fields)
	}
	now := s.now().UTC()
	c := Contact{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    StatusUnread,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := s.col.InsertOne(ctx, c)
	if err != nil {
		return "", apperr.Internal("Failed to send contact message", err).WithOp("contact.Create")
	}
	return id, nil
}

// normalizePage applies the listing defaults: page < 1 is 1, limit < 1 is
// DefaultLimit, and limit never exceeds MaxLimit.
func normalizePage(page, limit int64) (int64, int64) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

func (s *service) List(ctx context.Context, page, limit int64) (*Page, error) {
	page, limit = normalizePage(page, limit)
	out := &Page{Contacts: []Contact{}}
	opts := &repository.FindOptions{Sort: "createdAt", Descending: true, Skip: (page - 1) * limit, Limit: limit}
	if err := s.col.Find(ctx, bson.M{}, opts, &out.Contacts); err != nil {
		return nil, apperr.Internal("Failed to fetch contacts", err).WithOp("contact.List")
	}
	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Internal("Failed to fetch contacts", err).WithOp("contact.List")
	}
	out.Pagination = Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (*Contact, error) {
	f, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	var c Contact
	if err := s.col.FindOne(ctx, f, &c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Contact not found")
		}
		return nil, apperr.Internal("Failed to fetch contact", err).WithOp("contact.Get")
	}
	return &c, nil
}

func (s *service) Update(ctx context.Context, id string, in UpdateInput) error {
	f, err := idFilter(id)
	if err != nil {
		return err
	}
	set := bson.M{"updatedAt": s.now().UTC()}
	if v := strings.TrimSpace(in.Name); v != "" {
		set["name"] = v
	}
	if v := strings.TrimSpace(in.Email); v != "" {
		if !validate.IsEmail(v) {
			return apperr.Validation(msgInvalidEmail)
		}
		set["email"] = strings.ToLower(v)
	}
	if v := strings.TrimSpace(in.Subject); v != "" {
		set["subject"] = v
	}
	if v := strings.TrimSpace(in.Message); v != "" {
		set["message"] = v
	}
	if in.Status != "" {
		if !in.Status.Valid() {
			return apperr.Validation(msgInvalidStatus)
		}
		set["status"] = in.Status
	}
	return s.update(ctx, f, set, "Failed to update contact", "contact.Update")
}

func (s *service) SetStatus(ctx context.Context, id string, status Status) error {
	f, err := idFilter(id)
	if err != nil {
		return err
	}
	if !status.Valid() {
		return apperr.Validation(msgInvalidStatus)
	}
	set := bson.M{"status": status, "updatedAt": s.now().UTC()}
	return s.update(ctx, f, set, "Failed to update contact status", "contact.SetStatus")
}

func (s *service) update(ctx context.Context, filter, set bson.M, failMsg, op string) error {
	res, err := s.col.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return apperr.Internal(failMsg, err).WithOp(op)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Contact not found")
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
		return apperr.Internal("Failed to delete contact", err).WithOp("contact.Delete")
	}
	if n == 0 {
		return apperr.NotFound("Contact not found")
	}
	return nil
}

func (s *service) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, apperr.Validation("Contact IDs array is required")
	}
	valid := repository.ValidIDs(ids)
	if len(valid) == 0 {
		return 0, apperr.Validation("No valid contact IDs provided")
	}
	n, err := s.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": valid}})
	if err != nil {
		return 0, apperr.Internal("Failed to delete contacts", err).WithOp("contact.DeleteMany")
	}
	return n, nil
}

func (s *service) Search(ctx context.Context, query string) ([]Contact, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinSearchLength {
		return nil, apperr.Validation("Search query must be at least 2 characters")
	}
	rx := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": rx},
		bson.M{"email": rx},
		bson.M{"subject": rx},
		bson.M{"message": rx},
	}}
	out := []Contact{}
	if err := s.col.Find(ctx, filter, repository.NewestFirst(), &out); err != nil {
		return nil, apperr.Internal("Failed to search contacts", err).WithOp("contact.Search")
	}
	return out, nil
}

func (s *service) ByStatus(ctx context.Context, status Status) ([]Contact, error) {
	if !status.Valid() {
		return nil, apperr.Validation(msgInvalidStatus)
	}
	out := []Contact{}
	if err := s.col.Find(ctx, bson.M{"status": status}, repository.NewestFirst(), &out); err != nil {
		return nil, apperr.Internal("Failed to fetch contacts", err).WithOp("contact.ByStatus")
	}
	return out, nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	counts := []struct {
		dst    *int64
		filter bson.M
	}{
		{&st.Total, bson.M{}},
		{&st.Unread, bson.M{"status": StatusUnread}},
		{&st.Read, bson.M{"status": StatusRead}},
		{&st.Replied, bson.M{"status": StatusReplied}},
	}
	for _, c := range counts {
		n, err := s.col.CountDocuments(ctx, c.filter)
		if err != nil {
			return nil, apperr.Internal("Failed to fetch contact stats", err).WithOp("contact.Stats")
		}
		*c.dst = n
	}
	return &st, nil
}
