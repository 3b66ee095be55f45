package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/worklens-app/attendance-backend-go/internal/domain/auth"
	"github.com/worklens-app/attendance-backend-go/internal/domain/report"
	"github.com/worklens-app/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Analytics(w http.ResponseWriter, r *http.Request)
	MyReport(w http.ResponseWriter, r *http.Request)
	MyReportPDF(w http.ResponseWriter, r *http.Request)
	EmployeeReport(w http.ResponseWriter, r *http.Request)
	EmployeeReportPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func claimedEmployeeID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", auth.ErrInvalidToken
	}
	return employeeID, nil
}

// Analytics implements ReportHandler.
func (h *ReportHandlerImpl) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.reportService.Analytics(r.Context())
	if err != nil {
		slog.Error("Analytics service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, analytics)
}

// MyReport implements ReportHandler.
func (h *ReportHandlerImpl) MyReport(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimedEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.serveReport(w, r, employeeID)
}

// MyReportPDF implements ReportHandler.
func (h *ReportHandlerImpl) MyReportPDF(w http.ResponseWriter, r *http.Request) {
	employeeID, err := claimedEmployeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.servePDF(w, r, employeeID)
}

// EmployeeReport implements ReportHandler.
func (h *ReportHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	h.serveReport(w, r, chi.URLParam(r, "id"))
}

// EmployeeReportPDF implements ReportHandler.
func (h *ReportHandlerImpl) EmployeeReportPDF(w http.ResponseWriter, r *http.Request) {
	h.servePDF(w, r, chi.URLParam(r, "id"))
}

func (h *ReportHandlerImpl) serveReport(w http.ResponseWriter, r *http.Request, employeeID string) {
	rep, err := h.reportService.EmployeeReport(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("Employee report service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, rep)
}

func (h *ReportHandlerImpl) servePDF(w http.ResponseWriter, r *http.Request, employeeID string) {
	month := r.URL.Query().Get("month")
	pdf, err := h.reportService.EmployeeReportPDF(r.Context(), employeeID, month)
	if err != nil {
		slog.Error("Employee report PDF service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := "attendance-report.pdf"
	if month != "" {
		filename = fmt.Sprintf("attendance-report-%s.pdf", month)
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
