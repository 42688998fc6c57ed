package notification

import (
	"context"
	"log"

	"sharksports/internal/domain"
)

const defaultListLimit = 50

type Service struct {
	repo NotificationRepository
	hub  *Hub
}

func NewService(repo NotificationRepository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// Notify persists a notification and pushes it to the user's live socket
// when one exists. Failures only log: a notification must never fail the
// operation that triggered it.
func (s *Service) Notify(ctx context.Context, userID int64, title, message string, ntype domain.NotificationType, entityType string, entityID int64) {
	n := &domain.Notification{
		UserID:     userID,
		Title:      title,
		Message:    message,
		Type:       ntype,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notification: persist for user %d failed: %v", userID, err)
		return
	}

	if s.hub != nil {
		s.hub.SendToUser(userID, wsEvent{Type: "notification", Notification: n})
	}
}

// Send fans a notification out to several users at once and pushes to
// whichever of them are connected.
func (s *Service) Send(ctx context.Context, req SendRequest) error {
	ntype := domain.NotificationType(req.Type)
	switch ntype {
	case domain.NotifyInfo, domain.NotifySuccess, domain.NotifyWarning, domain.NotifyError:
	case "":
		ntype = domain.NotifyInfo
	default:
		return ErrInvalidType
	}

	ns := make([]domain.Notification, 0, len(req.UserIDs))
	for _, uid := range req.UserIDs {
		ns = append(ns, domain.Notification{
			UserID:  uid,
			Title:   req.Title,
			Message: req.Message,
			Type:    ntype,
		})
	}
	if err := s.repo.CreateBatch(ctx, ns); err != nil {
		return err
	}

	if s.hub != nil {
		for i := range ns {
			s.hub.SendToUser(ns[i].UserID, wsEvent{Type: "notification", Notification: &ns[i]})
		}
	}
	return nil
}

func (s *Service) List(ctx context.Context, userID int64, limit int, unreadOnly bool) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.repo.ListForUser(ctx, userID, limit, unreadOnly)
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.UnreadCount(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID int64, ids []int64) error {
	return s.repo.MarkRead(ctx, userID, ids, true)
}

type wsEvent struct {
	Type         string               `json:"type"`
	Notification *domain.Notification `json:"notification,omitempty"`
}
