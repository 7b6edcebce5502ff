package inquiry

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pipeline stages. An inquiry is in exactly one stage at any time.
const (
	StageNew             = "NEW"
	StageContacted       = "CONTACTED"
	StageQualified       = "QUALIFIED"
	StageReadyToRegister = "READY_TO_REGISTER"
	StageRegistered      = "REGISTERED"
	StageLost            = "LOST"
)

// Marketing sources
const (
	SourceWalkIn      = "WALK_IN"
	SourcePhoneCall   = "PHONE_CALL"
	SourceWebsite     = "WEBSITE"
	SourceFacebookAds = "FACEBOOK_ADS"
	SourceInstagram   = "INSTAGRAM"
	SourceGoogleAds   = "GOOGLE_ADS"
	SourceReferral    = "REFERRAL"
	SourceOther       = "OTHER"
)

// ConvertedStages are the positive-progression stages counted as conversions.
var ConvertedStages = []string{StageQualified, StageReadyToRegister, StageRegistered}

// Stages in pipeline order, used by the follow-up board
var Stages = []string{StageNew, StageContacted, StageQualified, StageReadyToRegister, StageRegistered, StageLost}

func ValidStage(stage string) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}

type Inquiry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentName  string             `bson:"student_name" json:"student_name"`
	GuardianName string             `bson:"guardian_name,omitempty" json:"guardian_name,omitempty"`
	Phone        string             `bson:"phone" json:"phone"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	ProgramID    primitive.ObjectID `bson:"program_id,omitempty" json:"program_id,omitempty"`
	Source       string             `bson:"source" json:"source"`
	Stage        string             `bson:"stage" json:"stage"`
	OwnerID      primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// GroupCount is one bucket of a grouped aggregation, keyed by the raw field value
type GroupCount struct {
	Key   string `bson:"_id" json:"key"`
	Count int64  `bson:"count" json:"count"`
}

// TrendRecord is the projection fetched for monthly trend bucketing
type TrendRecord struct {
	Stage     string    `bson:"stage" json:"stage"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
