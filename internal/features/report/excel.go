package report

import (
	"github.com/xuri/excelize/v2"
)

// RenderExcel lays the snapshot out as a workbook with one sheet per
// report section.
func RenderExcel(snap *Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)
	setRows(f, summary, [][]interface{}{
		{"Metric", "Value"},
		{"Generated At", snap.GeneratedAt.Format("2006-01-02 15:04")},
		{"Generated By", snap.GeneratedBy},
		{"Total Inquiries", snap.TotalInquiries},
		{"Converted", snap.ConvertedCount},
		{"Lost", snap.LostCount},
		{"Ready To Register", snap.ReadyCount},
		{"New This Month", snap.NewThisMonth},
		{"Conversion Rate (%)", snap.ConversionRate},
		{"Contact Rate (%)", snap.ContactMetrics.ContactRate},
		{"Appointment Rate (%)", snap.ContactMetrics.AppointmentRate},
	})

	sourceRows := [][]interface{}{{"Source", "Inquiries", "Conversion Rate (%)", "Tier"}}
	for _, s := range snap.SourcePerformance {
		sourceRows = append(sourceRows, []interface{}{s.Source, s.Count, s.ConversionRate, tierLabel(s.ConversionRate)})
	}
	if err := addSheet(f, "Sources", sourceRows); err != nil {
		return nil, err
	}

	stageRows := [][]interface{}{{"Stage", "Inquiries", "Share"}}
	for _, s := range snap.StageDistribution {
		stageRows = append(stageRows, []interface{}{s.Stage, s.Count, shareOfTotal(s.Count, snap.TotalInquiries)})
	}
	if err := addSheet(f, "Stages", stageRows); err != nil {
		return nil, err
	}

	trendRows := [][]interface{}{{"Month", "New", "Converted"}}
	for _, t := range snap.MonthlyTrends {
		trendRows = append(trendRows, []interface{}{t.Label, t.New, t.Converted})
	}
	if err := addSheet(f, "Trends", trendRows); err != nil {
		return nil, err
	}

	teamRows := [][]interface{}{{"Name", "Email", "Role", "Inquiries", "Converted", "Conversion Rate (%)", "Interactions", "New This Month"}}
	for _, u := range snap.UserPerformance {
		teamRows = append(teamRows, []interface{}{
			u.Name, u.Email, u.Role, u.Inquiries, u.Converted, u.ConversionRate, u.Interactions, u.NewThisMonth,
		})
	}
	if err := addSheet(f, "Team", teamRows); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	setRows(f, name, rows)
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) {
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	_ = f.SetColWidth(sheet, "A", "H", 22)
}
