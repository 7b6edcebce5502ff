package report

import (
	"time"

	"edu-crm/internal/features/inquiry"
)

const trendMonths = 6

// trendWindowStart is the single lower bound applied at the query
// level: the first day of the month five months before now.
func trendWindowStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-trendMonths+1, 1, 0, 0, 0, 0, now.Location())
}

// buildMonthlyTrends partitions the pre-fetched records into exactly
// six calendar-month buckets, oldest first, the last bucket being the
// current month. Each bucket counts new records and records whose
// stage is in the converted set.
func buildMonthlyTrends(records []inquiry.TrendRecord, now time.Time) []MonthlyTrend {
	converted := make(map[string]bool, len(inquiry.ConvertedStages))
	for _, s := range inquiry.ConvertedStages {
		converted[s] = true
	}

	trends := make([]MonthlyTrend, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)

		trend := MonthlyTrend{
			Month: start.Format("Jan"),
			Label: start.Format("Jan 2006"),
		}
		for _, r := range records {
			if r.CreatedAt.Before(start) || !r.CreatedAt.Before(end) {
				continue
			}
			trend.New++
			if converted[r.Stage] {
				trend.Converted++
			}
		}
		trends = append(trends, trend)
	}
	return trends
}
