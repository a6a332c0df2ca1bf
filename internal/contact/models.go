package contact

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the handling state of a contact message.
type Status string

const (
	StatusUnread  Status = "unread"
	StatusRead    Status = "read"
	StatusReplied Status = "replied"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusUnread, StatusRead, StatusReplied:
		return true
	}
	return false
}

type Contact struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Subject   string             `json:"subject" bson:"subject"`
	Message   string             `json:"message" bson:"message"`
	Status    Status             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateInput is a contact form submission.
type CreateInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,basicemail"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// UpdateInput carries the fields to change; empty fields are left untouched.
type UpdateInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Status  Status `json:"status"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

type Page struct {
	Contacts   []Contact  `json:"contacts"`
	Pagination Pagination `json:"pagination"`
}

// Stats counts contacts per status.
type Stats struct {
	Total   int64 `json:"total"`
	Unread  int64 `json:"unread"`
	Read    int64 `json:"read"`
	Replied int64 `json:"replied"`
}
