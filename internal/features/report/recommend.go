package report

import "fmt"

// buildNarrative is the headline bullet list on the closing page.
func buildNarrative(snap *Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Total inquiries in scope: %d", snap.TotalInquiries),
		fmt.Sprintf("Converted inquiries: %d (%d%% conversion rate)", snap.ConvertedCount, snap.ConversionRate),
		fmt.Sprintf("New inquiries this month: %d", snap.NewThisMonth),
		fmt.Sprintf("Lost inquiries: %d", snap.LostCount),
		fmt.Sprintf("Ready to register: %d", snap.ReadyCount),
		fmt.Sprintf("Contact rate: %d%%, appointment rate: %d%%", snap.ContactMetrics.ContactRate, snap.ContactMetrics.AppointmentRate),
	}
	return lines
}

// buildRecommendations applies the flag rules in order. If none fires,
// two generic healthy lines are emitted instead. Two standing
// recommendations are always appended.
func buildRecommendations(snap *Snapshot) []string {
	var recs []string

	if snap.ContactMetrics.ContactRate < 50 {
		recs = append(recs, fmt.Sprintf(
			"Contact rate is low (%d%%). Prioritize first-touch calls for new inquiries.",
			snap.ContactMetrics.ContactRate))
	}
	if snap.ConversionRate < 20 {
		recs = append(recs, fmt.Sprintf(
			"Overall conversion rate is low (%d%%). Review qualification criteria and follow-up cadence.",
			snap.ConversionRate))
	}
	if n := countUnderperformingSources(snap.SourcePerformance); n > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d source(s) convert below 10%%. Reassess spend or targeting on those channels.", n))
	}
	if snap.LostCount > snap.ConvertedCount {
		recs = append(recs, fmt.Sprintf(
			"Lost inquiries (%d) exceed conversions (%d). Investigate the most common loss reasons.",
			snap.LostCount, snap.ConvertedCount))
	}

	if len(recs) == 0 {
		recs = append(recs,
			"Key metrics are healthy. Maintain the current outreach cadence.",
			"Conversion performance is on track across sources.")
	}

	recs = append(recs,
		"Review pipeline stages regularly to keep inquiry data current.",
		"Ensure every contact attempt is logged so rates stay accurate.")
	return recs
}

func countUnderperformingSources(sources []SourcePerformance) int {
	n := 0
	for _, s := range sources {
		if s.ConversionRate < 10 {
			n++
		}
	}
	return n
}
