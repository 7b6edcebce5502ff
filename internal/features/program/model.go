package program

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Level struct {
	Name          string `bson:"name" json:"name"`
	Code          string `bson:"code" json:"code"`
	DurationWeeks int    `bson:"duration_weeks" json:"duration_weeks"`
	Order         int    `bson:"order" json:"order"`
}

type Program struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Active      bool               `bson:"active" json:"active"`
	Levels      []Level            `bson:"levels" json:"levels"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
