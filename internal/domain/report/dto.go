package report

import (
	"context"
)

// Admin analytics payload. Field names match what the dashboards chart.

type MonthlyTrendPoint struct {
	Month   string `json:"month"` // "YYYY-MM"
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
}

type BreakdownSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type LeaveUsagePoint struct {
	Month  string `json:"month"`
	Leaves int    `json:"leaves"`
}

type LatenessEntry struct {
	Name  string `json:"name"`
	Lates int    `json:"lates"`
}

type RadarMetric struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"` // 0-100, one decimal
}

type RankingRow struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Absences int    `json:"absences"`
	Lates    int    `json:"lates"`
	Rank     int    `json:"rank"`
}

type Insight struct {
	Title          string `json:"title"`
	Detail         string `json:"detail"`
	Recommendation string `json:"recommendation"`
	Severity       string `json:"severity"` // red | orange | green
}

type AnalyticsResponse struct {
	Score                float64             `json:"score"`
	Insights             []Insight           `json:"insights"`
	MonthlyTrend         []MonthlyTrendPoint `json:"monthlyTrend"`
	AbsenteeismBreakdown []BreakdownSlice    `json:"absenteeismBreakdown"`
	LeaveUsageTrend      []LeaveUsagePoint   `json:"leaveUsageTrend"`
	LatenessByEmployee   []LatenessEntry     `json:"latenessByEmployee"`
	Radar                []RadarMetric       `json:"radar"`
	Ranking              []RankingRow        `json:"ranking"`
}

// Admin dashboard payload.

type DashboardTotals struct {
	Employees           int `json:"employees"`
	PresentToday        int `json:"presentToday"`
	LateToday           int `json:"lateToday"`
	AbsentToday         int `json:"absentToday"`
	PendingLeaves       int `json:"pendingLeaves"`
	ApprovedLeavesToday int `json:"approvedLeavesToday"`
}

type DailyTrendPoint struct {
	Date    string `json:"date"` // "YYYY-MM-DD"
	Present int    `json:"present"`
	Late    int    `json:"late"`
	Absent  int    `json:"absent"`
}

type RecentLeave struct {
	ID           string  `json:"id"`
	EmployeeName *string `json:"employeeName"`
	LeaveType    string  `json:"leaveType"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
}

type DashboardResponse struct {
	Totals       DashboardTotals   `json:"totals"`
	Trend7       []DailyTrendPoint `json:"trend7"`
	TopLates30   []LatenessEntry   `json:"topLates30"`
	RecentLeaves []RecentLeave     `json:"recentLeaves"`
}

// Per-employee monthly report payload.

type HeatmapDay struct {
	Date   string `json:"date"`
	Status string `json:"status"` // Present | Late | Absent, or a dash for no data
}

type CountComparison struct {
	Current  int `json:"current"`
	Previous int `json:"previous"`
}

type EmployeeReportKPIs struct {
	TotalPresent       int `json:"totalPresent"`
	TotalLate          int `json:"totalLate"`
	TotalAbsent        int `json:"totalAbsent"`
	TotalLeaveRequests int `json:"totalLeaveRequests"`
}

type MonthSummary struct {
	Month         string  `json:"month"`
	Present       int     `json:"present"`
	Late          int     `json:"late"`
	Absent        int     `json:"absent"`
	AverageTimeIn *string `json:"averageTimeIn"` // "HH:MM", nil when no clock-ins
}

type RecentAttendanceRow struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Status      *string `json:"status"`
	TimeIn      *string `json:"timeIn"`
	TimeOut     *string `json:"timeOut"`
	HoursWorked string  `json:"hoursWorked"`
}

type EmployeeReportResponse struct {
	KPIs             EmployeeReportKPIs         `json:"kpis"`
	MonthSummary     MonthSummary               `json:"monthSummary"`
	RecentAttendance []RecentAttendanceRow      `json:"recentAttendance"`
	Heatmap          []HeatmapDay               `json:"heatmap"`
	Comparisons      map[string]CountComparison `json:"comparisons"`
	Insights         []string                   `json:"insights"`
}

// ReportService produces every aggregate view from the same engine.
type ReportService interface {
	// Analytics computes the organization-wide analytics payload (admin)
	Analytics(ctx context.Context) (AnalyticsResponse, error)

	// EmployeeReport computes one employee's report for a month ("YYYY-MM",
	// empty means the current month)
	EmployeeReport(ctx context.Context, employeeID string, month string) (EmployeeReportResponse, error)

	// EmployeeReportPDF renders the monthly report as a PDF document
	EmployeeReportPDF(ctx context.Context, employeeID string, month string) ([]byte, error)
}

// DashboardService assembles the admin landing page summary.
type DashboardService interface {
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}
