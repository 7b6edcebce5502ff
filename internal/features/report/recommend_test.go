package report

import (
	"strings"
	"testing"
)

func TestBuildRecommendationsFlags(t *testing.T) {
	snap := &Snapshot{
		ConversionRate: 10,
		ConvertedCount: 3,
		LostCount:      8,
		ContactMetrics: ContactMetrics{ContactRate: 30},
		SourcePerformance: []SourcePerformance{
			{Source: "WALK IN", Count: 10, ConversionRate: 5},
			{Source: "WEBSITE", Count: 10, ConversionRate: 50},
		},
	}

	recs := buildRecommendations(snap)

	// four rule flags + two standing recommendations
	if len(recs) != 6 {
		t.Fatalf("expected 6 recommendations, got %d: %v", len(recs), recs)
	}

	joined := strings.Join(recs, "\n")
	for _, want := range []string{"Contact rate is low", "conversion rate is low", "1 source(s)", "Lost inquiries"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing recommendation containing %q", want)
		}
	}
}

func TestBuildRecommendationsHealthy(t *testing.T) {
	snap := &Snapshot{
		ConversionRate: 45,
		ConvertedCount: 20,
		LostCount:      5,
		ContactMetrics: ContactMetrics{ContactRate: 80},
		SourcePerformance: []SourcePerformance{
			{Source: "REFERRAL", Count: 10, ConversionRate: 60},
		},
	}

	recs := buildRecommendations(snap)

	// two healthy lines + two standing recommendations
	if len(recs) != 4 {
		t.Fatalf("expected 4 recommendations, got %d: %v", len(recs), recs)
	}
	if !strings.Contains(recs[0], "healthy") {
		t.Errorf("expected healthy note first, got %q", recs[0])
	}
	if !strings.Contains(recs[2], "pipeline stages") || !strings.Contains(recs[3], "logged") {
		t.Errorf("standing recommendations missing: %v", recs[2:])
	}
}

func TestBuildNarrativeHeadlines(t *testing.T) {
	snap := &Snapshot{
		TotalInquiries: 50,
		ConvertedCount: 20,
		ConversionRate: 40,
		NewThisMonth:   12,
	}

	lines := buildNarrative(snap)
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"50", "20", "40%", "12"} {
		if !strings.Contains(joined, want) {
			t.Errorf("narrative missing %q: %v", want, lines)
		}
	}
}
