package report

import (
	"testing"

	"edu-crm/internal/features/inquiry"
	"edu-crm/internal/features/interaction"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		name  string
		part  int64
		total int64
		want  int
	}{
		{"zero total yields zero", 5, 0, 0},
		{"zero part", 0, 10, 0},
		{"simple percentage", 4, 10, 40},
		{"rounds up", 1, 3, 33},
		{"rounds half away from zero", 1, 2, 50},
		{"full conversion", 10, 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percentOf(tt.part, tt.total); got != tt.want {
				t.Errorf("percentOf(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
			}
		})
	}
}

func TestBuildSourcePerformance(t *testing.T) {
	groups := []inquiry.GroupCount{
		{Key: "FACEBOOK_ADS", Count: 10},
		{Key: "WALK_IN", Count: 5},
		{Key: "", Count: 3},
	}
	converted := map[string]int64{"FACEBOOK_ADS": 4}

	sources := buildSourcePerformance(groups, converted)

	if len(sources) != 2 {
		t.Fatalf("expected empty source label to be excluded, got %d entries", len(sources))
	}

	fb := sources[0]
	if fb.Source != "FACEBOOK ADS" {
		t.Errorf("expected humanized label FACEBOOK ADS, got %q", fb.Source)
	}
	if fb.Count != 10 || fb.ConversionRate != 40 {
		t.Errorf("expected count=10 rate=40, got count=%d rate=%d", fb.Count, fb.ConversionRate)
	}
	if tier := tierLabel(fb.ConversionRate); tier != "High" {
		t.Errorf("rate 40 should tier as High, got %q", tier)
	}

	if sources[1].ConversionRate != 0 {
		t.Errorf("source with no conversions should report rate 0, got %d", sources[1].ConversionRate)
	}

	for _, s := range sources {
		if s.ConversionRate < 0 || s.ConversionRate > 100 {
			t.Errorf("rate out of bounds for %s: %d", s.Source, s.ConversionRate)
		}
	}
}

func TestStageDistributionSumsToTotal(t *testing.T) {
	// 5 inquiries: 2 QUALIFIED, 1 LOST, 2 NEW
	groups := []inquiry.GroupCount{
		{Key: inquiry.StageQualified, Count: 2},
		{Key: inquiry.StageNew, Count: 2},
		{Key: inquiry.StageLost, Count: 1},
	}

	stages := buildStageDistribution(groups)
	if sum := stageSum(stages); sum != 5 {
		t.Errorf("stage distribution sums to %d, want 5", sum)
	}

	// Converted set membership: 2 of 5 QUALIFIED => 40%
	if rate := percentOf(2, 5); rate != 40 {
		t.Errorf("overall conversion rate = %d, want 40", rate)
	}
}

func TestTierLabelThresholds(t *testing.T) {
	tests := []struct {
		rate int
		want string
	}{
		{0, "Low"},
		{14, "Low"},
		{15, "Medium"},
		{29, "Medium"},
		{30, "High"},
		{100, "High"},
	}
	for _, tt := range tests {
		if got := tierLabel(tt.rate); got != tt.want {
			t.Errorf("tierLabel(%d) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestBuildContactMetricsZeroInteractions(t *testing.T) {
	metrics := buildContactMetrics(0, nil)
	if metrics.ContactRate != 0 || metrics.AppointmentRate != 0 {
		t.Errorf("zero interactions must yield zero rates, got contact=%d appointment=%d",
			metrics.ContactRate, metrics.AppointmentRate)
	}
}

func TestBuildContactMetrics(t *testing.T) {
	outcomes := []interaction.GroupCount{
		{Key: interaction.OutcomeConnected, Count: 6},
		{Key: interaction.OutcomeAppointmentBooked, Count: 2},
		{Key: interaction.OutcomeNoAnswer, Count: 2},
	}

	metrics := buildContactMetrics(10, outcomes)
	if metrics.ContactRate != 60 {
		t.Errorf("contact rate = %d, want 60", metrics.ContactRate)
	}
	if metrics.AppointmentRate != 20 {
		t.Errorf("appointment rate = %d, want 20", metrics.AppointmentRate)
	}
}

func TestBuildOutcomeBreakdownHumanizesLabels(t *testing.T) {
	breakdown := buildOutcomeBreakdown([]interaction.GroupCount{
		{Key: interaction.OutcomeAppointmentBooked, Count: 3},
	})
	if len(breakdown) != 1 || breakdown[0].Outcome != "APPOINTMENT BOOKED" {
		t.Errorf("unexpected breakdown: %+v", breakdown)
	}
}
