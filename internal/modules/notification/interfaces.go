package notification

import (
	"context"

	"sharksports/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	CreateBatch(ctx context.Context, ns []domain.Notification) error
	ListForUser(ctx context.Context, userID int64, limit int, unreadOnly bool) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, userID int64, ids []int64, read bool) error
}
