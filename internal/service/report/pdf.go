package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/worklens-app/attendance-backend-go/internal/domain/report"
)

// renderEmployeeReportPDF lays out the monthly report as a single-page A4
// document: KPI lines, the month summary, recent records, and insights.
func renderEmployeeReportPDF(employeeName string, rep report.EmployeeReportResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Attendance Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Employee: %s", employeeName)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", rep.MonthSummary.Month))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Present: %d", rep.KPIs.TotalPresent))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Late: %d", rep.KPIs.TotalLate))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Absent: %d", rep.KPIs.TotalAbsent))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Leave requests: %d", rep.KPIs.TotalLeaveRequests))
	pdf.Ln(7)
	avgIn := "n/a"
	if rep.MonthSummary.AverageTimeIn != nil {
		avgIn = *rep.MonthSummary.AverageTimeIn
	}
	pdf.Cell(0, 8, fmt.Sprintf("Average time in: %s", avgIn))
	pdf.Ln(10)

	if len(rep.RecentAttendance) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Recent Attendance")
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(35, 7, "Date", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, "Status", "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, "Hours Worked", "1", 0, "L", false, 0, "")
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 11)
		for _, row := range rep.RecentAttendance {
			status := "-"
			if row.Status != nil {
				status = *row.Status
			}
			pdf.CellFormat(35, 7, row.Date, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 7, status, "1", 0, "L", false, 0, "")
			pdf.CellFormat(35, 7, row.HoursWorked, "1", 0, "L", false, 0, "")
			pdf.Ln(7)
		}
		pdf.Ln(3)
	}

	if len(rep.Insights) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Insights")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, line := range rep.Insights {
			pdf.Cell(0, 7, tr(fmt.Sprintf("- %s", line)))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}
	return buf.Bytes(), nil
}
