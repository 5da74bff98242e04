// Package registry holds the profile, friendship and event registries and the
// rules for changing them. Every mutation validates all of its preconditions
// before writing, runs in a single transaction, and is serialized with every
// other mutation, so a rejected call leaves the stored state untouched.
package registry

import (
	"context"
	"fmt"
	"sync"

	"educonnect/backend/internal/models"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Notifier receives notifications after the change they describe has been committed.
type Notifier interface {
	Notify(n models.Notification)
}

type nopNotifier struct{}

func (nopNotifier) Notify(models.Notification) {}

// Registry is the shared state of the directory.
type Registry struct {
	db       *gorm.DB
	notifier Notifier
	mu       sync.Mutex
}

// New creates a Registry on top of a migrated database. notifier may be nil.
func New(db *gorm.DB, notifier Notifier) *Registry {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Registry{db: db, notifier: notifier}
}

// mutate runs fn in a transaction while holding the registry lock.
// Notifications returned by fn are stored in the same transaction and handed
// to the notifier once the transaction has committed.
func (r *Registry) mutate(ctx context.Context, op string, fn func(tx *gorm.DB) ([]models.Notification, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var committed []models.Notification
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		notes, err := fn(tx)
		if err != nil {
			return err
		}
		for i := range notes {
			if err := tx.Create(&notes[i]).Error; err != nil {
				return err
			}
		}
		committed = notes
		return nil
	})
	if err != nil {
		if IsRejection(err) {
			return err
		}
		return fmt.Errorf("registry.%s: %w", op, err)
	}

	for _, n := range committed {
		r.notifier.Notify(n)
	}
	return nil
}

func newNotification(typ models.NotificationType, actor, subject string, payload any) (models.Notification, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return models.Notification{}, err
	}
	return models.Notification{
		UID:     uuid.New(),
		Type:    typ,
		Actor:   actor,
		Subject: subject,
		Payload: datatypes.JSON(data),
	}, nil
}

func profileExists(tx *gorm.DB, identity string) (bool, error) {
	var count int64
	if err := tx.Model(&models.Profile{}).Where("owner = ?", identity).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// requireProfile rejects callers that have not registered a profile.
func requireProfile(tx *gorm.DB, caller string) error {
	if caller == "" {
		return ErrMissingIdentity
	}
	ok, err := profileExists(tx, caller)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotRegistered
	}
	return nil
}
