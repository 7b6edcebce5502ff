package interaction

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact attempt outcomes
const (
	OutcomeConnected         = "CONNECTED"
	OutcomeNoAnswer          = "NO_ANSWER"
	OutcomeAppointmentBooked = "APPOINTMENT_BOOKED"
	OutcomeNotInterested     = "NOT_INTERESTED"
	OutcomeCallBackLater     = "CALL_BACK_LATER"
	OutcomeWrongNumber       = "WRONG_NUMBER"
)

// Channels
const (
	ChannelCall     = "CALL"
	ChannelEmail    = "EMAIL"
	ChannelWhatsApp = "WHATSAPP"
	ChannelInPerson = "IN_PERSON"
)

var Outcomes = []string{
	OutcomeConnected,
	OutcomeNoAnswer,
	OutcomeAppointmentBooked,
	OutcomeNotInterested,
	OutcomeCallBackLater,
	OutcomeWrongNumber,
}

func ValidOutcome(outcome string) bool {
	for _, o := range Outcomes {
		if o == outcome {
			return true
		}
	}
	return false
}

type Interaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InquiryID primitive.ObjectID `bson:"inquiry_id" json:"inquiry_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Channel   string             `bson:"channel" json:"channel"`
	Outcome   string             `bson:"outcome" json:"outcome"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type GroupCount struct {
	Key   string `bson:"_id" json:"key"`
	Count int64  `bson:"count" json:"count"`
}
