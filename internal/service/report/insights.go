package report

import (
	"fmt"

	"github.com/worklens-app/attendance-backend-go/internal/domain/report"
)

// GenerateInsights turns a window's counts into prescriptive cards for the
// admin analytics page. Rules fire independently; when none fire, a single
// all-clear card is returned so the panel is never empty.
func GenerateInsights(stats WindowStats, employeeCount int) []report.Insight {
	var insights []report.Insight

	if stats.Unexcused > 0 {
		insights = append(insights, report.Insight{
			Title:          "Reduce Absenteeism",
			Detail:         fmt.Sprintf("%d unexcused absence slots detected in the last 90 days.", stats.Unexcused),
			Recommendation: "Set clear attendance expectations and follow-up on trends.",
			Severity:       "red",
		})
	}
	if stats.Late > employeeCount {
		insights = append(insights, report.Insight{
			Title:          "Lateness Increasing",
			Detail:         fmt.Sprintf("%d late entries across employees in the last 90 days.", stats.Late),
			Recommendation: "Introduce grace periods and reminders; review shift start times.",
			Severity:       "orange",
		})
	}
	if stats.LeaveSlots > 0 {
		insights = append(insights, report.Insight{
			Title:          "Leave Usage Healthy",
			Detail:         "Employees are utilizing approved leaves.",
			Recommendation: "Ensure coverage planning and balance workloads.",
			Severity:       "green",
		})
	}
	if len(insights) == 0 {
		insights = append(insights, report.Insight{
			Title:          "Stable Attendance",
			Detail:         "No significant risks detected recently.",
			Recommendation: "Maintain current policies and recognition.",
			Severity:       "green",
		})
	}

	return insights
}

// EmployeeInsights writes the personal takeaways on an employee's monthly
// report. Empty when the month gives nothing to say.
func EmployeeInsights(current EmployeeMonthStats, prevPresent, prevLate, totalLeaveRequests int) []string {
	var insights []string

	if current.Late > 0 {
		insights = append(insights, fmt.Sprintf("You were late %d time(s) this month.", current.Late))
	}
	if current.Absent > 0 {
		insights = append(insights, fmt.Sprintf("You had %d absence(s) this month.", current.Absent))
	}
	if current.Present > prevPresent && prevPresent > 0 {
		pct := roundOne(float64(current.Present-prevPresent) / float64(prevPresent) * 100)
		insights = append(insights, fmt.Sprintf("Attendance improved by %g%% compared to last month.", pct))
	}
	if current.Late < prevLate && prevLate > 0 {
		insights = append(insights, "Late arrivals decreased compared to last month.")
	}
	if totalLeaveRequests > 0 {
		insights = append(insights, fmt.Sprintf("You filed %d leave request(s) overlapping this month.", totalLeaveRequests))
	}

	return insights
}
