package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/palmahr/payroll-engine-go/internal/domain/notification"
	"github.com/palmahr/payroll-engine-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	data, err := json.Marshal(n.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal notification data: %w", err)
	}

	query := `
		INSERT INTO notifications (kind, title, message, data)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := q.Exec(ctx, query, n.Kind, n.Title, n.Message, data); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}
