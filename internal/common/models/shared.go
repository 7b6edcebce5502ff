package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContextKey string

type AuditAction string

const (
	AuditActionCreate   AuditAction = "CREATE"
	AuditActionUpdate   AuditAction = "UPDATE"
	AuditActionDelete   AuditAction = "DELETE"
	AuditActionLogin    AuditAction = "LOGIN"
	AuditActionStage    AuditAction = "STAGE_CHANGE"
	AuditActionCampaign AuditAction = "CAMPAIGN"
	AuditActionMeeting  AuditAction = "MEETING"
	AuditActionSync     AuditAction = "SYNC"
	AuditActionReport   AuditAction = "REPORT"
	AuditActionExport   AuditAction = "EXPORT"
)

type Change struct {
	Old interface{} `bson:"old" json:"old"`
	New interface{} `bson:"new" json:"new"`
}

type AuditLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action    AuditAction        `bson:"action" json:"action"`
	Entity    string             `bson:"entity" json:"entity"`         // The entity/collection name
	RecordID  string             `bson:"record_id" json:"record_id"`   // The ID of the record being modified
	ActorID   string             `bson:"actor_id" json:"actor_id"`     // User ID who performed the action
	ActorName string             `bson:"-" json:"actor_name,omitempty"` // Populated Name of the actor
	Changes   map[string]Change  `bson:"changes,omitempty" json:"changes,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// Log is the document shape written by the async zap DB writer
type Log struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Message      string             `bson:"message" json:"message"`
	IpAddress    string             `bson:"ip_address,omitempty" json:"ip_address,omitempty"`
	Caller       string             `bson:"caller,omitempty" json:"caller,omitempty"`
	LogLevelId   int                `bson:"log_level_id" json:"log_level_id"`
	CreatedOnUtc time.Time          `bson:"created_on_utc" json:"created_on_utc"`
}
