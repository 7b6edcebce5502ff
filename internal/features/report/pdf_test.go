package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"
)

func sampleSnapshot() *Snapshot {
	return &Snapshot{
		GeneratedAt:    time.Date(2026, time.September, 1, 9, 30, 0, 0, time.UTC),
		GeneratedBy:    "Admin User",
		TotalInquiries: 50,
		ConvertedCount: 20,
		LostCount:      5,
		ReadyCount:     8,
		NewThisMonth:   12,
		ConversionRate: 40,
		SourcePerformance: []SourcePerformance{
			{Source: "FACEBOOK ADS", Count: 25, ConversionRate: 40},
			{Source: "WALK IN", Count: 15, ConversionRate: 20},
		},
		StageDistribution: []StageCount{
			{Stage: "NEW", Count: 20},
			{Stage: "CONTACTED", Count: 10},
			{Stage: "QUALIFIED", Count: 10},
			{Stage: "REGISTERED", Count: 5},
			{Stage: "LOST", Count: 5},
		},
		MonthlyTrends: []MonthlyTrend{
			{Month: "Apr", Label: "Apr 2026", New: 5, Converted: 2},
			{Month: "May", Label: "May 2026", New: 8, Converted: 3},
			{Month: "Jun", Label: "Jun 2026", New: 7, Converted: 2},
			{Month: "Jul", Label: "Jul 2026", New: 9, Converted: 4},
			{Month: "Aug", Label: "Aug 2026", New: 9, Converted: 5},
			{Month: "Sep", Label: "Sep 2026", New: 12, Converted: 4},
		},
		ContactMetrics: ContactMetrics{TotalInteractions: 80, ContactRate: 60, AppointmentRate: 25},
	}
}

func TestBuildPagesLayout(t *testing.T) {
	pages := buildPages(sampleSnapshot(), "EduLead")

	if len(pages) != 5 {
		t.Fatalf("expected 5 pages, got %d", len(pages))
	}

	wantTitles := []string{
		"EduLead Analytics Report",
		"Source Performance",
		"Pipeline Stages",
		"Monthly Trends",
		"Summary & Recommendations",
	}
	for i, want := range wantTitles {
		if pages[i].Title != want {
			t.Errorf("page %d title = %q, want %q", i+1, pages[i].Title, want)
		}
	}
}

func TestBuildPagesCoverAgreesWithSnapshot(t *testing.T) {
	snap := sampleSnapshot()
	pages := buildPages(snap, "EduLead")

	var tiles statTileRow
	found := false
	for _, r := range pages[0].Regions {
		if tr, ok := r.(statTileRow); ok {
			tiles = tr
			found = true
		}
	}
	if !found {
		t.Fatal("cover page has no stat tiles")
	}

	want := map[string]string{
		"Total Inquiries": fmt.Sprintf("%d", snap.TotalInquiries),
		"Converted":       fmt.Sprintf("%d", snap.ConvertedCount),
		"New This Month":  fmt.Sprintf("%d", snap.NewThisMonth),
		"Conversion Rate": fmt.Sprintf("%d%%", snap.ConversionRate),
	}
	for _, tile := range tiles.Tiles {
		if want[tile.Label] != tile.Value {
			t.Errorf("tile %q = %q, want %q", tile.Label, tile.Value, want[tile.Label])
		}
	}
}

func TestBuildPagesFunnelLimitedToSix(t *testing.T) {
	snap := sampleSnapshot()
	snap.StageDistribution = []StageCount{
		{Stage: "A", Count: 9}, {Stage: "B", Count: 8}, {Stage: "C", Count: 7},
		{Stage: "D", Count: 6}, {Stage: "E", Count: 5}, {Stage: "F", Count: 4},
		{Stage: "G", Count: 3}, {Stage: "H", Count: 2},
	}

	pages := buildPages(snap, "EduLead")
	stagePage := pages[2]

	var funnelLen, tableLen int
	for _, r := range stagePage.Regions {
		switch v := r.(type) {
		case funnelChart:
			funnelLen = len(v.Items)
		case table:
			tableLen = len(v.Rows)
		}
	}

	if funnelLen != 6 {
		t.Errorf("funnel shows %d stages, want 6", funnelLen)
	}
	if tableLen != 8 {
		t.Errorf("stage table shows %d rows, want all 8", tableLen)
	}
}

func TestBuildPagesNoSourceDataPlaceholder(t *testing.T) {
	snap := sampleSnapshot()
	snap.SourcePerformance = nil

	pages := buildPages(snap, "EduLead")
	sourcePage := pages[1]

	var sourceTable table
	found := false
	for _, r := range sourcePage.Regions {
		if tbl, ok := r.(table); ok {
			sourceTable = tbl
			found = true
		}
	}
	if !found {
		t.Fatal("source page has no table region")
	}
	if len(sourceTable.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(sourceTable.Rows))
	}
	if sourceTable.Empty == "" {
		t.Error("empty source table must carry a no-data placeholder")
	}
}

func TestRenderPDFProducesDocument(t *testing.T) {
	document, err := RenderPDF(sampleSnapshot(), "EduLead")
	if err != nil {
		t.Fatalf("RenderPDF failed: %v", err)
	}
	if !bytes.HasPrefix(document, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF document")
	}
}

func TestRenderPDFEmptySnapshot(t *testing.T) {
	snap := &Snapshot{
		GeneratedAt: time.Now(),
		GeneratedBy: "Admin User",
	}
	document, err := RenderPDF(snap, "EduLead")
	if err != nil {
		t.Fatalf("RenderPDF failed on empty snapshot: %v", err)
	}
	if len(document) == 0 {
		t.Error("empty snapshot must still yield a document")
	}
}

func TestRenderExcelProducesWorkbook(t *testing.T) {
	workbook, err := RenderExcel(sampleSnapshot())
	if err != nil {
		t.Fatalf("RenderExcel failed: %v", err)
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(workbook, []byte("PK")) {
		t.Errorf("output does not look like a workbook")
	}
}
