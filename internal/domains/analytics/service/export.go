package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"circuithub-backend/internal/domains/analytics/model"
)

func (s *analyticsService) ExportReport(ctx context.Context, windowDays int) (*excelize.File, error) {
	summary, err := s.Summary(ctx, windowDays)
	if err != nil {
		return nil, err
	}
	return buildReport(summary)
}

// buildReport lays the summary out as a workbook, one sheet per breakdown.
func buildReport(summary *model.Summary) (*excelize.File, error) {
	f := excelize.NewFile()

	const overview = "Overview"
	f.SetSheetName("Sheet1", overview)

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Window (days)", summary.WindowDays},
		{"Total page views", summary.TotalPageViews},
		{"Unique visitors", summary.UniqueVisitors},
		{"Avg session duration (s)", summary.AvgSessionDuration.String()},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to build overview sheet: %w", err)
		}
		if err := f.SetSheetRow(overview, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to build overview sheet: %w", err)
		}
	}

	bucketSheets := []struct {
		name    string
		header  string
		buckets []model.BucketCount
	}{
		{"Top Pages", "Page", summary.TopPages},
		{"Top Referrers", "Referrer", summary.TopReferrers},
		{"Devices", "Device", summary.DeviceTypes},
		{"Browsers", "Browser", summary.BrowserStats},
	}
	for _, sheet := range bucketSheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, fmt.Errorf("failed to add sheet %s: %w", sheet.name, err)
		}
		if err := writeBuckets(f, sheet.name, sheet.header, sheet.buckets); err != nil {
			return nil, err
		}
	}

	const daily = "Daily Views"
	if _, err := f.NewSheet(daily); err != nil {
		return nil, fmt.Errorf("failed to add sheet %s: %w", daily, err)
	}
	header := []interface{}{"Date", "Views"}
	if err := f.SetSheetRow(daily, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write daily header: %w", err)
	}
	for i, day := range summary.DailyViews {
		row := []interface{}{day.Date, day.Count}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to write daily views: %w", err)
		}
		if err := f.SetSheetRow(daily, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write daily views: %w", err)
		}
	}

	return f, nil
}

func writeBuckets(f *excelize.File, sheet, header string, buckets []model.BucketCount) error {
	headerRow := []interface{}{header, "Count"}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	for i, b := range buckets {
		row := []interface{}{b.Label, b.Count}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to write %s rows: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s rows: %w", sheet, err)
		}
	}
	return nil
}
