package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrPayrollRecordExists   = errors.New("payroll record already exists for this period")
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrEmptyBatch            = errors.New("payroll batch is empty")
)

// ConflictError signals that a plain save hit existing records for the
// period. The caller must re-invoke with overwrite=true; Count tells it
// how many stored records the overwrite would replace.
type ConflictError struct {
	Count int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("payroll records already exist for this period (%d would be overwritten)", e.Count)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrPayrollRecordExists
}
