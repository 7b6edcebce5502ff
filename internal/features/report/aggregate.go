package report

import (
	"math"

	"edu-crm/internal/features/inquiry"
	"edu-crm/internal/features/interaction"
	"edu-crm/pkg/utils"
)

// percentOf is the zero-guarded rate rule used everywhere in the
// report: round(100 * part / total), 0 when total is 0.
func percentOf(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// buildSourcePerformance joins the per-source counts with the batched
// converted counts. Groups with an empty source label are excluded.
// Input order is already sorted descending by count; it is preserved as
// the tie-break for equal counts.
func buildSourcePerformance(groups []inquiry.GroupCount, converted map[string]int64) []SourcePerformance {
	sources := make([]SourcePerformance, 0, len(groups))
	for _, g := range groups {
		if g.Key == "" {
			continue
		}
		sources = append(sources, SourcePerformance{
			Source:         utils.Humanize(g.Key),
			Count:          g.Count,
			ConversionRate: percentOf(converted[g.Key], g.Count),
		})
	}
	return sources
}

// buildStageDistribution humanizes stage labels, preserving the
// descending-by-count order from the grouped query.
func buildStageDistribution(groups []inquiry.GroupCount) []StageCount {
	stages := make([]StageCount, 0, len(groups))
	for _, g := range groups {
		stages = append(stages, StageCount{
			Stage: utils.Humanize(g.Key),
			Count: g.Count,
		})
	}
	return stages
}

func stageSum(stages []StageCount) int64 {
	var sum int64
	for _, s := range stages {
		sum += s.Count
	}
	return sum
}

// buildContactMetrics derives contact and appointment rates from the
// outcome breakdown. Both rates are 0 when there are no interactions.
func buildContactMetrics(total int64, outcomes []interaction.GroupCount) ContactMetrics {
	var connected, booked int64
	for _, o := range outcomes {
		switch o.Key {
		case interaction.OutcomeConnected:
			connected = o.Count
		case interaction.OutcomeAppointmentBooked:
			booked = o.Count
		}
	}
	return ContactMetrics{
		TotalInteractions: total,
		ContactRate:       percentOf(connected, total),
		AppointmentRate:   percentOf(booked, total),
	}
}

func buildOutcomeBreakdown(outcomes []interaction.GroupCount) []OutcomeCount {
	breakdown := make([]OutcomeCount, 0, len(outcomes))
	for _, o := range outcomes {
		breakdown = append(breakdown, OutcomeCount{
			Outcome: utils.Humanize(o.Key),
			Count:   o.Count,
		})
	}
	return breakdown
}
