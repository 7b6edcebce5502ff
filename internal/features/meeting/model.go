package meeting

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
	StatusNoShow    = "NO_SHOW"
)

var Statuses = []string{StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

type Meeting struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InquiryID       primitive.ObjectID `bson:"inquiry_id" json:"inquiry_id"`
	OrganizerID     primitive.ObjectID `bson:"organizer_id" json:"organizer_id"`
	OrganizerEmail  string             `bson:"organizer_email,omitempty" json:"organizer_email,omitempty"`
	Title           string             `bson:"title" json:"title"`
	ScheduledAt     time.Time          `bson:"scheduled_at" json:"scheduled_at"`
	DurationMinutes int                `bson:"duration_minutes" json:"duration_minutes"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty"`
	Status          string             `bson:"status" json:"status"`
	ReminderSent    bool               `bson:"reminder_sent" json:"reminder_sent"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
