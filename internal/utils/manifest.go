package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"lyra/internal/adapters"
	"lyra/internal/models"
)

const manifestSheet = "Launches"

// BuildLaunchManifest renders a launch collection as an xlsx workbook and
// returns it ready to stream.
func BuildLaunchManifest(launches []models.Launch) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(manifestSheet)
	if err != nil {
		return nil, err
	}

	headers := []string{"Flight", "Name", "Date (UTC)", "Status", "Rocket", "Launchpad", "Details"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(manifestSheet, cell, header)
	}

	for rowIdx, launch := range launches {
		rowNum := rowIdx + 2 // headers occupy the first row

		f.SetCellValue(manifestSheet, fmt.Sprintf("A%d", rowNum), launch.FlightNumber)
		f.SetCellValue(manifestSheet, fmt.Sprintf("B%d", rowNum), launch.Name)
		f.SetCellValue(manifestSheet, fmt.Sprintf("C%d", rowNum),
			launch.DateUTC.Format("2006-01-02 15:04:05"))
		f.SetCellValue(manifestSheet, fmt.Sprintf("D%d", rowNum),
			adapters.ClassifyStatus(launch).Label)
		f.SetCellValue(manifestSheet, fmt.Sprintf("E%d", rowNum), launch.Rocket)
		f.SetCellValue(manifestSheet, fmt.Sprintf("F%d", rowNum), launch.Launchpad)

		details := ""
		if launch.Details != nil {
			details = adapters.Truncate(*launch.Details, 120)
		}
		f.SetCellValue(manifestSheet, fmt.Sprintf("G%d", rowNum), details)
	}

	for i := 1; i <= len(headers); i++ {
		colName, _ := excelize.ColumnNumberToName(i)
		width := 20.0
		if colName == "G" {
			width = 60.0
		}
		f.SetColWidth(manifestSheet, colName, colName, width)
	}

	// Highlight failed launches
	failedRule := []excelize.ConditionalFormatOptions{
		{
			Type:     "cell",
			Criteria: "==",
			Value:    `"Failed"`,
			Format:   fillStyle(f, "#FFCCCC"),
		},
	}
	if err := f.SetConditionalFormat(manifestSheet, "D2:D10000", failedRule); err != nil {
		return nil, err
	}

	createSummarySheet(f, launches)

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.WriteToBuffer()
}

func createSummarySheet(f *excelize.File, launches []models.Launch) {
	f.NewSheet("Summary")

	var successes, failures, upcoming int
	for _, launch := range launches {
		switch {
		case launch.Upcoming:
			upcoming++
		case launch.Success != nil && *launch.Success:
			successes++
		case launch.Success != nil:
			failures++
		}
	}

	rows := [][2]interface{}{
		{"Report Generated", time.Now().Format("2006-01-02 15:04:05")},
		{"Total Launches", len(launches)},
		{"Successes", successes},
		{"Failures", failures},
		{"Upcoming", upcoming},
	}

	for i, row := range rows {
		f.SetCellValue("Summary", fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue("Summary", fmt.Sprintf("B%d", i+1), row[1])
	}
	f.SetColWidth("Summary", "A", "B", 24)
}

func fillStyle(f *excelize.File, color string) *int {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{color},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil
	}
	return &style
}

// BuildLaunchCSV renders the same manifest columns as CSV.
func BuildLaunchCSV(launches []models.Launch) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"flight", "name", "date_utc", "status", "rocket", "launchpad", "details"}); err != nil {
		return nil, err
	}

	for _, launch := range launches {
		details := ""
		if launch.Details != nil {
			details = *launch.Details
		}

		record := []string{
			strconv.Itoa(launch.FlightNumber),
			launch.Name,
			launch.DateUTC.Format(time.RFC3339),
			string(adapters.ClassifyStatus(launch).Status),
			launch.Rocket,
			launch.Launchpad,
			details,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
