package report

import "time"

// Snapshot is the complete aggregated-metrics object produced per
// report request. It is recomputed on every invocation and never
// persisted.
type Snapshot struct {
	GeneratedAt time.Time `json:"generated_at"`
	GeneratedBy string    `json:"generated_by"`

	TotalInquiries int64 `json:"total_inquiries"`
	ConvertedCount int64 `json:"converted_count"`
	LostCount      int64 `json:"lost_count"`
	ReadyCount     int64 `json:"ready_count"`
	NewThisMonth   int64 `json:"new_this_month"`
	ConversionRate int   `json:"conversion_rate"`

	SourcePerformance []SourcePerformance `json:"source_performance"`
	StageDistribution []StageCount        `json:"stage_distribution"`
	MonthlyTrends     []MonthlyTrend      `json:"monthly_trends"`
	ContactMetrics    ContactMetrics      `json:"contact_metrics"`
	UserPerformance   []UserPerformance   `json:"user_performance"`
	OutcomeBreakdown  []OutcomeCount      `json:"outcome_breakdown"`

	// Consistency cross-check, attached only when DEBUG_REPORTS is set
	Debug *DebugInfo `json:"debug,omitempty"`
}

type SourcePerformance struct {
	Source         string `json:"source"`
	Count          int64  `json:"count"`
	ConversionRate int    `json:"conversion_rate"`
}

type StageCount struct {
	Stage string `json:"stage"`
	Count int64  `json:"count"`
}

type MonthlyTrend struct {
	Month     string `json:"month"`
	Label     string `json:"label"`
	New       int64  `json:"new"`
	Converted int64  `json:"converted"`
}

type ContactMetrics struct {
	TotalInteractions int64 `json:"total_interactions"`
	ContactRate       int   `json:"contact_rate"`
	AppointmentRate   int   `json:"appointment_rate"`
}

type UserPerformance struct {
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Inquiries      int64     `json:"inquiries"`
	Converted      int64     `json:"converted"`
	ConversionRate int       `json:"conversion_rate"`
	Interactions   int64     `json:"interactions"`
	NewThisMonth   int64     `json:"new_this_month"`
	JoinedAt       time.Time `json:"joined_at"`
}

type OutcomeCount struct {
	Outcome string `json:"outcome"`
	Count   int64  `json:"count"`
}

type DebugInfo struct {
	StageSum   int64 `json:"stage_sum"`
	Total      int64 `json:"total"`
	Consistent bool  `json:"consistent"`
}
