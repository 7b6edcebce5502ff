package campaign

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ChannelEmail    = "EMAIL"
	ChannelWhatsApp = "WHATSAPP"
)

const (
	StatusDraft   = "DRAFT"
	StatusSending = "SENDING"
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
)

type Campaign struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Channel      string             `bson:"channel" json:"channel"`
	Subject      string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Body         string             `bson:"body" json:"body"`
	AudienceRule string             `bson:"audience_rule,omitempty" json:"audience_rule,omitempty"`
	Status       string             `bson:"status" json:"status"`
	CreatedBy    primitive.ObjectID `bson:"created_by" json:"created_by"`
	SentCount    int                `bson:"sent_count" json:"sent_count"`
	FailedCount  int                `bson:"failed_count" json:"failed_count"`
	SentAt       *time.Time         `bson:"sent_at,omitempty" json:"sent_at,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// ProgressEvent is streamed over the websocket while a campaign sends
type ProgressEvent struct {
	CampaignID string `json:"campaign_id"`
	Status     string `json:"status"`
	Total      int    `json:"total"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
}
