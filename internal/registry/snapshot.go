package registry

import (
	"context"
	"fmt"

	"educonnect/backend/internal/models"
)

// State is a point-in-time copy of every registry.
type State struct {
	Profiles      []models.Profile      `json:"profiles"`
	Friendships   []models.Friendship   `json:"friendships"`
	Events        []models.Event        `json:"events"`
	Notifications []models.Notification `json:"notifications"`
}

// Snapshot reads all registries in one read transaction, in a stable order.
func (r *Registry) Snapshot(ctx context.Context) (*State, error) {
	var state State

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("registry.Snapshot: %w", tx.Error)
	}
	defer tx.Rollback()

	if err := tx.Order("owner").Find(&state.Profiles).Error; err != nil {
		return nil, fmt.Errorf("registry.Snapshot: profiles: %w", err)
	}
	if err := tx.Order("user_a, user_b").Find(&state.Friendships).Error; err != nil {
		return nil, fmt.Errorf("registry.Snapshot: friendships: %w", err)
	}
	if err := tx.Order("seq").Find(&state.Events).Error; err != nil {
		return nil, fmt.Errorf("registry.Snapshot: events: %w", err)
	}
	if err := tx.Order("id").Find(&state.Notifications).Error; err != nil {
		return nil, fmt.Errorf("registry.Snapshot: notifications: %w", err)
	}

	return &state, nil
}

// NotificationsSince returns the notifications with an ID greater than after,
// in commit order.
func (r *Registry) NotificationsSince(ctx context.Context, after uint) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.WithContext(ctx).Where("id > ?", after).Order("id").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("registry.NotificationsSince: %w", err)
	}
	return notifications, nil
}
