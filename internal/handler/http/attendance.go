package http

import (
	"log/slog"
	"net/http"

	"github.com/worklens-app/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens-app/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	ListRange(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ClockIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.ClockIn(r.Context())
	if err != nil {
		slog.Error("Clock-in service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Clocked in", record)
}

// ClockOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.ClockOut(r.Context())
	if err != nil {
		slog.Error("Clock-out service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Clocked out", record)
}

// GetToday implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.GetToday(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	// No record yet is a normal state, not an error.
	response.Success(w, record)
}

// GetMyAttendance implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.GetMyAttendance(r.Context(),
		r.URL.Query().Get("startDate"),
		r.URL.Query().Get("endDate"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// ListRange implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListRange(w http.ResponseWriter, r *http.Request) {
	includeAbsent := r.URL.Query().Get("includeAbsent")
	records, err := h.attendanceService.ListRange(r.Context(),
		r.URL.Query().Get("startDate"),
		r.URL.Query().Get("endDate"),
		includeAbsent == "1" || includeAbsent == "true",
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}
