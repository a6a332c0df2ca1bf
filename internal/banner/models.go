package banner

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner is a promotional hero banner shown on the home page.
type Banner struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Image       *string            `json:"image" bson:"image"`
	Heading     string             `json:"heading" bson:"heading"`
	Subheading  string             `json:"subheading" bson:"subheading"`
	Button1Text string             `json:"button1Text" bson:"button1Text"`
	Button1Link string             `json:"button1Link" bson:"button1Link"`
	Button2Text string             `json:"button2Text" bson:"button2Text"`
	Button2Link string             `json:"button2Link" bson:"button2Link"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Input is the request body for create and update. Absent fields are nil.
type Input struct {
	Image       *string `json:"image"`
	Heading     *string `json:"heading"`
	Subheading  *string `json:"subheading"`
	Button1Text *string `json:"button1Text"`
	Button1Link *string `json:"button1Link"`
	Button2Text *string `json:"button2Text"`
	Button2Link *string `json:"button2Link"`
}

const (
	DefaultHeading     = "Default Heading"
	DefaultSubheading  = "Default subheading text"
	DefaultButton1Text = "Explore Blogs"
	DefaultButton1Link = "/blogs"
	DefaultButton2Text = "Watch Videos"
	DefaultButton2Link = "/videos"
)

func orDefault(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
