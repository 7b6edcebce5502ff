package report

import (
	"testing"
	"time"

	"edu-crm/internal/features/inquiry"
)

func TestBuildMonthlyTrendsBucketCount(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	trends := buildMonthlyTrends(nil, now)

	if len(trends) != 6 {
		t.Fatalf("expected exactly 6 buckets, got %d", len(trends))
	}
	if trends[0].Month != "Oct" || trends[0].Label != "Oct 2025" {
		t.Errorf("oldest bucket = %q/%q, want Oct/Oct 2025", trends[0].Month, trends[0].Label)
	}
	if trends[5].Month != "Mar" || trends[5].Label != "Mar 2026" {
		t.Errorf("newest bucket = %q/%q, want Mar/Mar 2026 (current month)", trends[5].Month, trends[5].Label)
	}
}

func TestBuildMonthlyTrendsCounts(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	at := func(year int, month time.Month, day int) time.Time {
		return time.Date(year, month, day, 10, 0, 0, 0, time.UTC)
	}

	records := []inquiry.TrendRecord{
		{Stage: inquiry.StageNew, CreatedAt: at(2026, time.March, 1)},
		{Stage: inquiry.StageQualified, CreatedAt: at(2026, time.March, 14)},
		{Stage: inquiry.StageRegistered, CreatedAt: at(2026, time.January, 31)},
		{Stage: inquiry.StageLost, CreatedAt: at(2026, time.January, 1)},
		{Stage: inquiry.StageNew, CreatedAt: at(2025, time.October, 5)},
		// outside the window, must be ignored
		{Stage: inquiry.StageNew, CreatedAt: at(2025, time.September, 30)},
	}

	trends := buildMonthlyTrends(records, now)

	march := trends[5]
	if march.New != 2 || march.Converted != 1 {
		t.Errorf("March: new=%d converted=%d, want new=2 converted=1", march.New, march.Converted)
	}

	january := trends[3]
	if january.New != 2 || january.Converted != 1 {
		t.Errorf("January: new=%d converted=%d, want new=2 converted=1", january.New, january.Converted)
	}

	october := trends[0]
	if october.New != 1 || october.Converted != 0 {
		t.Errorf("October: new=%d converted=%d, want new=1 converted=0", october.New, october.Converted)
	}

	var total int64
	for _, tr := range trends {
		total += tr.New
	}
	if total != 5 {
		t.Errorf("in-window records counted = %d, want 5", total)
	}
}

func TestBuildMonthlyTrendsChronologicalAcrossYearBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	trends := buildMonthlyTrends(nil, now)

	wantLabels := []string{"Aug 2025", "Sep 2025", "Oct 2025", "Nov 2025", "Dec 2025", "Jan 2026"}
	for i, want := range wantLabels {
		if trends[i].Label != want {
			t.Errorf("bucket %d label = %q, want %q", i, trends[i].Label, want)
		}
	}
}

func TestTrendWindowStart(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 30, 0, 0, time.UTC)
	want := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	if got := trendWindowStart(now); !got.Equal(want) {
		t.Errorf("trendWindowStart = %v, want %v", got, want)
	}
}
