package registry

import (
	"context"
	"fmt"
	"time"

	"educonnect/backend/internal/models"

	"gorm.io/gorm"
)

// EventInput carries the fields of a new event. Date may lie in the past.
type EventInput struct {
	Name        string
	Description string
	Date        time.Time
	IsHackathon bool
}

// CreateEvent appends an event organized by caller and returns it with its
// sequence number.
func (r *Registry) CreateEvent(ctx context.Context, caller string, in EventInput) (*models.Event, error) {
	var event models.Event

	err := r.mutate(ctx, "CreateEvent", func(tx *gorm.DB) ([]models.Notification, error) {
		if err := requireProfile(tx, caller); err != nil {
			return nil, err
		}

		var count int64
		if err := tx.Model(&models.Event{}).Count(&count).Error; err != nil {
			return nil, err
		}

		event = models.Event{
			Seq:         uint64(count),
			Organizer:   caller,
			Name:        in.Name,
			Description: in.Description,
			Date:        in.Date,
			IsHackathon: in.IsHackathon,
		}
		if err := tx.Create(&event).Error; err != nil {
			return nil, err
		}

		n, err := newNotification(models.NotificationEventCreated, caller, "", models.EventCreatedPayload{
			Seq:         event.Seq,
			Organizer:   caller,
			Name:        event.Name,
			Date:        event.Date,
			IsHackathon: event.IsHackathon,
		})
		if err != nil {
			return nil, err
		}
		return []models.Notification{n}, nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetEventCount returns the length of the event log.
func (r *Registry) GetEventCount(ctx context.Context) (uint64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("registry.GetEventCount: %w", err)
	}
	return uint64(count), nil
}

// EventAt returns the event at the zero-based position index.
func (r *Registry) EventAt(ctx context.Context, index uint64) (*models.Event, error) {
	var event models.Event
	res := r.db.WithContext(ctx).Where("seq = ?", index).Limit(1).Find(&event)
	if res.Error != nil {
		return nil, fmt.Errorf("registry.EventAt: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrIndexOutOfRange
	}
	return &event, nil
}

// ListEvents returns the whole event log in creation order.
func (r *Registry) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("seq").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("registry.ListEvents: %w", err)
	}
	return events, nil
}
