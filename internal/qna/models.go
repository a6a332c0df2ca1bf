package qna

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QnA is a visitor question. Answer stays null while the question is pending.
type QnA struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Question  string             `json:"question" bson:"question"`
	Answer    *string            `json:"answer" bson:"answer"`
	UserName  string             `json:"userName" bson:"userName"`
	UserEmail *string            `json:"userEmail" bson:"userEmail"`
	UserIP    string             `json:"userIp" bson:"userIp"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt *time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// Pending reports whether the question has not been answered yet.
func (q QnA) Pending() bool { return q.Answer == nil }

// Status filter values for listing.
const (
	StatusPending  = "pending"
	StatusAnswered = "answered"
)

const (
	DefaultUserName = "Anonymous"
	UnknownIP       = "Unknown"
)

// SubmitInput is a question submitted by a visitor.
type SubmitInput struct {
	Question  string `json:"question"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	UserIP    string `json:"userIp"`
}

// AnswerInput is an admin reply, optionally correcting the question text.
type AnswerInput struct {
	Answer   string `json:"answer"`
	Question string `json:"question"`
}
