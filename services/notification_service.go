package services

import (
	"context"
	"fmt"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/api"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/store"
)

type NotificationService struct {
	State *store.Store
	API   NotificationAPI
}

func NewNotificationService(st *store.Store, notifications NotificationAPI) *NotificationService {
	return &NotificationService{State: st, API: notifications}
}

func (s *NotificationService) Load(ctx context.Context) ([]models.Notification, error) {
	items, err := s.API.ListNotifications(ctx)
	if err != nil {
		s.State.Dispatch(store.NotificationsFailed{Error: api.Message(err, "Failed to load notifications")})
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	s.State.Dispatch(store.NotificationsLoaded{Items: items})
	return items, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint) error {
	if _, err := s.API.MarkNotificationRead(ctx, id); err != nil {
		s.State.Dispatch(store.NotificationsFailed{Error: api.Message(err, "Failed to mark notification as read")})
		return fmt.Errorf("mark notification %d read: %w", id, err)
	}
	s.State.Dispatch(store.NotificationRead{ID: id})
	return nil
}

func (s *NotificationService) UnreadCount() int {
	return store.UnreadNotifications(s.State.State())
}
