package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/palmahr/payroll-engine-go/internal/domain/notification"
)

// EmitterImpl stores engine events in the notifications table. Delivery is
// fire-and-forget: a failed write is logged and swallowed because payroll
// integrity never depends on it.
type EmitterImpl struct {
	notificationRepo notification.Repository
}

func NewEmitter(notificationRepo notification.Repository) notification.Emitter {
	return &EmitterImpl{notificationRepo: notificationRepo}
}

func (e *EmitterImpl) Emit(ctx context.Context, kind notification.EventKind, payload map[string]interface{}) {
	n := notification.Notification{
		Kind:    kind,
		Title:   titleFor(kind),
		Message: messageFor(kind, payload),
		Data:    payload,
	}

	if err := e.notificationRepo.Create(ctx, n); err != nil {
		slog.Error("failed to emit notification", "kind", kind, "error", err)
	}
}

func titleFor(kind notification.EventKind) string {
	switch kind {
	case notification.KindPayrollGenerated:
		return "Payroll generated"
	case notification.KindPayrollSaved:
		return "Payroll saved"
	case notification.KindAttendanceGap:
		return "Attendance gap detected"
	default:
		return string(kind)
	}
}

func messageFor(kind notification.EventKind, payload map[string]interface{}) string {
	year, month := payload["period_year"], payload["period_month"]
	switch kind {
	case notification.KindPayrollSaved:
		return fmt.Sprintf("Payroll records for %v-%v were saved", year, month)
	case notification.KindPayrollGenerated:
		return fmt.Sprintf("Payroll records for %v-%v were generated", year, month)
	case notification.KindAttendanceGap:
		return fmt.Sprintf("Employees without attendance rows in %v-%v", year, month)
	default:
		return string(kind)
	}
}
