package video

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Video struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	VideoURL    string             `json:"videoUrl" bson:"videoUrl"`
	Tags        []string           `json:"tags" bson:"tags"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Input is the create/update body.
type Input struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Thumbnail   string   `json:"thumbnail" validate:"required"`
	VideoURL    string   `json:"videoUrl" validate:"required"`
	Tags        []string `json:"tags"`
}

func (in Input) tags() []string {
	if in.Tags == nil {
		return []string{}
	}
	return in.Tags
}
