package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth   = 210.0
	margin      = 15.0
	contentW    = pageWidth - 2*margin
	funnelLimit = 6
	minBarWidth = 8.0
)

type rgb struct{ R, G, B int }

var (
	colorCover   = rgb{30, 64, 175}
	colorSources = rgb{5, 150, 105}
	colorStages  = rgb{217, 119, 6}
	colorTrends  = rgb{124, 58, 237}
	colorSummary = rgb{190, 18, 60}

	colorBarNew       = rgb{59, 130, 246}
	colorBarConverted = rgb{16, 185, 129}
)

// region is one drawable block on a page. Regions draw at the
// document's current cursor and advance it; the layout engine knows
// nothing about report content.
type region interface {
	draw(doc *fpdf.Fpdf)
}

type pageSpec struct {
	Title   string
	Band    rgb
	Regions []region
}

// renderDocument runs the layout engine over the page list and
// serializes the result.
func renderDocument(pages []pageSpec, product string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle(product+" Analytics Report", false)
	doc.AliasNbPages("")
	doc.SetAutoPageBreak(true, 25)
	doc.SetMargins(margin, margin, margin)

	doc.SetFooterFunc(func() {
		doc.SetY(-20)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 4, product+" CRM - Confidential. For internal use only.", "", 1, "C", false, 0, "")
		doc.CellFormat(0, 4, fmt.Sprintf("Page %d of {nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	for _, p := range pages {
		doc.AddPage()
		drawHeaderBand(doc, p)
		for _, r := range p.Regions {
			r.draw(doc)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawHeaderBand(doc *fpdf.Fpdf, p pageSpec) {
	doc.SetFillColor(p.Band.R, p.Band.G, p.Band.B)
	doc.Rect(0, 0, pageWidth, 24, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 16)
	doc.SetXY(margin, 8)
	doc.CellFormat(contentW, 8, p.Title, "", 1, "L", false, 0, "")
	doc.SetY(32)
	doc.SetTextColor(0, 0, 0)
}

type spacer struct{ H float64 }

func (s spacer) draw(doc *fpdf.Fpdf) { doc.Ln(s.H) }

type textLine struct {
	Text  string
	Size  float64
	Style string
}

func (t textLine) draw(doc *fpdf.Fpdf) {
	doc.SetFont("Helvetica", t.Style, t.Size)
	doc.SetTextColor(30, 30, 30)
	doc.MultiCell(contentW, t.Size*0.55, t.Text, "", "L", false)
	doc.Ln(2)
}

type statTile struct {
	Label string
	Value string
}

type statTileRow struct{ Tiles []statTile }

func (s statTileRow) draw(doc *fpdf.Fpdf) {
	if len(s.Tiles) == 0 {
		return
	}
	gap := 5.0
	w := (contentW - gap*float64(len(s.Tiles)-1)) / float64(len(s.Tiles))
	y := doc.GetY()

	for i, tile := range s.Tiles {
		x := margin + float64(i)*(w+gap)
		doc.SetFillColor(241, 245, 249)
		doc.Rect(x, y, w, 26, "F")

		doc.SetXY(x, y+5)
		doc.SetFont("Helvetica", "B", 16)
		doc.SetTextColor(30, 64, 175)
		doc.CellFormat(w, 8, tile.Value, "", 0, "C", false, 0, "")

		doc.SetXY(x, y+15)
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(100, 100, 100)
		doc.CellFormat(w, 5, tile.Label, "", 0, "C", false, 0, "")
	}
	doc.SetY(y + 32)
	doc.SetTextColor(0, 0, 0)
}

type table struct {
	Headers []string
	Widths  []float64
	Rows    [][]string
	Empty   string
}

func (t table) draw(doc *fpdf.Fpdf) {
	if len(t.Rows) == 0 {
		doc.SetFont("Helvetica", "I", 11)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(contentW, 10, t.Empty, "", 1, "C", false, 0, "")
		doc.Ln(4)
		return
	}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(226, 232, 240)
	doc.SetTextColor(30, 30, 30)
	for i, h := range t.Headers {
		doc.CellFormat(t.Widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	for r, row := range t.Rows {
		fill := r%2 == 1
		doc.SetFillColor(248, 250, 252)
		for i, cell := range row {
			doc.CellFormat(t.Widths[i], 7, cell, "1", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
	}
	doc.Ln(4)
}

// funnelChart draws horizontal bars scaled against the largest count,
// with a floor width so near-zero stages stay visible.
type funnelChart struct{ Items []StageCount }

func (f funnelChart) draw(doc *fpdf.Fpdf) {
	if len(f.Items) == 0 {
		return
	}

	var max int64 = 1
	for _, it := range f.Items {
		if it.Count > max {
			max = it.Count
		}
	}

	labelW := 55.0
	barMax := contentW - labelW - 20
	for _, it := range f.Items {
		y := doc.GetY()
		doc.SetFont("Helvetica", "", 9)
		doc.SetTextColor(30, 30, 30)
		doc.CellFormat(labelW, 8, it.Stage, "", 0, "L", false, 0, "")

		w := barMax * float64(it.Count) / float64(max)
		if w < minBarWidth {
			w = minBarWidth
		}
		doc.SetFillColor(colorStages.R, colorStages.G, colorStages.B)
		doc.Rect(margin+labelW, y+1.5, w, 5, "F")

		doc.SetXY(margin+labelW+w+2, y)
		doc.SetFont("Helvetica", "B", 9)
		doc.CellFormat(15, 8, fmt.Sprintf("%d", it.Count), "", 1, "L", false, 0, "")
	}
	doc.Ln(4)
}

// twinBarChart draws the new-vs-converted bars per month with a legend
// and period totals underneath.
type twinBarChart struct{ Trends []MonthlyTrend }

func (c twinBarChart) draw(doc *fpdf.Fpdf) {
	if len(c.Trends) == 0 {
		return
	}

	var max, sumNew, sumConverted int64 = 1, 0, 0
	for _, t := range c.Trends {
		if t.New > max {
			max = t.New
		}
		if t.Converted > max {
			max = t.Converted
		}
		sumNew += t.New
		sumConverted += t.Converted
	}

	chartH := 50.0
	baseY := doc.GetY() + chartH
	groupW := contentW / float64(len(c.Trends))
	barW := groupW * 0.28

	for i, t := range c.Trends {
		x := margin + float64(i)*groupW + groupW*0.18

		hNew := chartH * float64(t.New) / float64(max)
		doc.SetFillColor(colorBarNew.R, colorBarNew.G, colorBarNew.B)
		doc.Rect(x, baseY-hNew, barW, hNew, "F")

		hConv := chartH * float64(t.Converted) / float64(max)
		doc.SetFillColor(colorBarConverted.R, colorBarConverted.G, colorBarConverted.B)
		doc.Rect(x+barW+1.5, baseY-hConv, barW, hConv, "F")

		doc.SetXY(margin+float64(i)*groupW, baseY+1)
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(60, 60, 60)
		doc.CellFormat(groupW, 5, t.Month, "", 0, "C", false, 0, "")
	}

	// Legend
	legendY := baseY + 9
	doc.SetFillColor(colorBarNew.R, colorBarNew.G, colorBarNew.B)
	doc.Rect(margin, legendY, 4, 4, "F")
	doc.SetXY(margin+6, legendY-1)
	doc.SetFont("Helvetica", "", 8)
	doc.CellFormat(30, 6, "New inquiries", "", 0, "L", false, 0, "")
	doc.SetFillColor(colorBarConverted.R, colorBarConverted.G, colorBarConverted.B)
	doc.Rect(margin+42, legendY, 4, 4, "F")
	doc.SetXY(margin+48, legendY-1)
	doc.CellFormat(30, 6, "Converted", "", 1, "L", false, 0, "")

	doc.SetY(legendY + 8)
	doc.SetFont("Helvetica", "B", 9)
	doc.SetTextColor(30, 30, 30)
	avg := float64(sumNew) / float64(len(c.Trends))
	doc.CellFormat(contentW, 6, fmt.Sprintf(
		"Period totals: %d new, %d converted, %.1f avg new per month",
		sumNew, sumConverted, avg), "", 1, "L", false, 0, "")
	doc.Ln(3)
}

type bulletList struct {
	Title string
	Lines []string
}

func (b bulletList) draw(doc *fpdf.Fpdf) {
	if b.Title != "" {
		doc.SetFont("Helvetica", "B", 12)
		doc.SetTextColor(30, 30, 30)
		doc.CellFormat(contentW, 8, b.Title, "", 1, "L", false, 0, "")
		doc.Ln(1)
	}
	doc.SetFont("Helvetica", "", 10)
	for _, line := range b.Lines {
		doc.SetTextColor(30, 30, 30)
		doc.CellFormat(5, 6, "-", "", 0, "L", false, 0, "")
		doc.MultiCell(contentW-5, 6, line, "", "L", false)
	}
	doc.Ln(3)
}

func tierLabel(rate int) string {
	switch {
	case rate >= 30:
		return "High"
	case rate >= 15:
		return "Medium"
	default:
		return "Low"
	}
}

func shareOfTotal(count, total int64) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(count)/float64(total))
}

// buildPages maps the snapshot onto the five-page document layout.
func buildPages(snap *Snapshot, product string) []pageSpec {
	reportID := "RPT-" + snap.GeneratedAt.Format("20060102-150405")

	cover := pageSpec{
		Title: product + " Analytics Report",
		Band:  colorCover,
		Regions: []region{
			textLine{Text: "Generated on " + snap.GeneratedAt.Format("Monday, January 2, 2006 at 3:04 PM"), Size: 11},
			textLine{Text: "Prepared for " + snap.GeneratedBy, Size: 11},
			spacer{H: 6},
			statTileRow{Tiles: []statTile{
				{Label: "Total Inquiries", Value: fmt.Sprintf("%d", snap.TotalInquiries)},
				{Label: "Converted", Value: fmt.Sprintf("%d", snap.ConvertedCount)},
				{Label: "New This Month", Value: fmt.Sprintf("%d", snap.NewThisMonth)},
				{Label: "Conversion Rate", Value: fmt.Sprintf("%d%%", snap.ConversionRate)},
			}},
		},
	}

	sourceRows := make([][]string, 0, len(snap.SourcePerformance))
	for _, s := range snap.SourcePerformance {
		sourceRows = append(sourceRows, []string{
			s.Source,
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%d%%", s.ConversionRate),
			tierLabel(s.ConversionRate),
		})
	}
	sources := pageSpec{
		Title: "Source Performance",
		Band:  colorSources,
		Regions: []region{
			table{
				Headers: []string{"Source", "Inquiries", "Conversion Rate", "Tier"},
				Widths:  []float64{70, 35, 40, 35},
				Rows:    sourceRows,
				Empty:   "No source data available for this period.",
			},
		},
	}
	if len(snap.SourcePerformance) > 0 {
		top := snap.SourcePerformance[0]
		sources.Regions = append(sources.Regions, textLine{
			Text: fmt.Sprintf("Top source by volume: %s with %d inquiries.", top.Source, top.Count),
			Size: 10, Style: "I",
		})
	}

	stageRows := make([][]string, 0, len(snap.StageDistribution))
	for _, s := range snap.StageDistribution {
		stageRows = append(stageRows, []string{
			s.Stage,
			fmt.Sprintf("%d", s.Count),
			shareOfTotal(s.Count, snap.TotalInquiries),
		})
	}
	funnelItems := snap.StageDistribution
	if len(funnelItems) > funnelLimit {
		funnelItems = funnelItems[:funnelLimit]
	}
	stages := pageSpec{
		Title: "Pipeline Stages",
		Band:  colorStages,
		Regions: []region{
			table{
				Headers: []string{"Stage", "Inquiries", "Share"},
				Widths:  []float64{90, 45, 45},
				Rows:    stageRows,
				Empty:   "No stage data available for this period.",
			},
			funnelChart{Items: funnelItems},
		},
	}

	trendRows := make([][]string, 0, len(snap.MonthlyTrends))
	for _, t := range snap.MonthlyTrends {
		trendRows = append(trendRows, []string{
			t.Label,
			fmt.Sprintf("%d", t.New),
			fmt.Sprintf("%d", t.Converted),
			fmt.Sprintf("%d%%", percentOf(t.Converted, t.New)),
		})
	}
	trends := pageSpec{
		Title: "Monthly Trends",
		Band:  colorTrends,
		Regions: []region{
			table{
				Headers: []string{"Month", "New", "Converted", "Conversion"},
				Widths:  []float64{60, 40, 40, 40},
				Rows:    trendRows,
				Empty:   "No trend data available for this period.",
			},
			twinBarChart{Trends: snap.MonthlyTrends},
		},
	}

	summary := pageSpec{
		Title: "Summary & Recommendations",
		Band:  colorSummary,
		Regions: []region{
			bulletList{Title: "Highlights", Lines: buildNarrative(snap)},
			bulletList{Title: "Recommendations", Lines: buildRecommendations(snap)},
			spacer{H: 4},
			textLine{Text: "Report ID: " + reportID, Size: 9, Style: "I"},
		},
	}

	return []pageSpec{cover, sources, stages, trends, summary}
}

// RenderPDF produces the paginated document for a snapshot.
func RenderPDF(snap *Snapshot, product string) ([]byte, error) {
	return renderDocument(buildPages(snap, product), product)
}
