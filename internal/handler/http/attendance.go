package http

import (
	"net/http"

	"github.com/palmahr/payroll-engine-go/internal/domain/attendance"
	"github.com/palmahr/payroll-engine-go/internal/handler/http/response"
	attendanceService "github.com/palmahr/payroll-engine-go/internal/service/attendance"
)

type AttendanceHandler interface {
	GetMonthlySummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService *attendanceService.Service
}

func NewAttendanceHandler(svc *attendanceService.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: svc}
}

func (h *attendanceHandlerImpl) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodFromQuery(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	result, err := h.attendanceService.MonthlySummary(r.Context(), attendance.SummaryRequest{
		Year:  year,
		Month: month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
