package notification

import "time"

// EventKind identifies what a notification is about.
type EventKind string

const (
	KindPayrollGenerated EventKind = "payroll_generated"
	KindPayrollSaved     EventKind = "payroll_saved"
	KindAttendanceGap    EventKind = "attendance_gap"
)

// Notification is one stored notification row.
type Notification struct {
	ID        string
	Kind      EventKind
	Title     string
	Message   string
	Data      map[string]interface{}
	CreatedAt time.Time
}
