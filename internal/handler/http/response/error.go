package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/palmahr/payroll-engine-go/internal/domain/employee"
	"github.com/palmahr/payroll-engine-go/internal/domain/payroll"
	"github.com/palmahr/payroll-engine-go/internal/domain/regulation"
	"github.com/palmahr/payroll-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. A payroll period
// conflict gets its own shape so callers can distinguish "confirm the
// overwrite" from a generic failure.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var conflict *payroll.ConflictError
	if errors.As(err, &conflict) {
		Conflict(w, "Payroll records already exist for this period", map[string]string{
			"would_overwrite": strconv.Itoa(conflict.Count),
		})
		return
	}

	switch {
	case errors.Is(err, regulation.ErrNoApplicableRegulation):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, regulation.ErrRegulationNotFound):
		NotFound(w, "Salary regulation not found")
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordExists):
		Conflict(w, "Payroll records already exist for this period", nil)
	case errors.Is(err, payroll.ErrEmptyBatch):
		BadRequest(w, "Payroll batch is empty", nil)
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
