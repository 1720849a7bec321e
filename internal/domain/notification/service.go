package notification

import "context"

// Emitter is the fire-and-forget collaborator the engine reports events
// to. Failures are logged by implementations and never block payroll.
type Emitter interface {
	Emit(ctx context.Context, kind EventKind, payload map[string]interface{})
}
