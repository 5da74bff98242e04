package registry

import (
	"context"
	"fmt"

	"educonnect/backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProfileInput carries the fields of a new profile. They are stored verbatim.
type ProfileInput struct {
	FullName           string
	IPFSProfilePicture string
	Title              string
	TechStack          []string
	About              string
}

// CreateProfile registers a profile for caller. A caller can do this once.
func (r *Registry) CreateProfile(ctx context.Context, caller string, in ProfileInput) (*models.Profile, error) {
	if caller == "" {
		return nil, ErrMissingIdentity
	}

	profile := models.Profile{
		Owner:              caller,
		FullName:           in.FullName,
		IPFSProfilePicture: in.IPFSProfilePicture,
		Title:              in.Title,
		TechStack:          append(datatypes.JSONSlice[string]{}, in.TechStack...),
		About:              in.About,
	}

	err := r.mutate(ctx, "CreateProfile", func(tx *gorm.DB) ([]models.Notification, error) {
		exists, err := profileExists(tx, caller)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrAlreadyExists
		}

		if err := tx.Create(&profile).Error; err != nil {
			return nil, err
		}

		n, err := newNotification(models.NotificationProfileCreated, caller, "", models.ProfileCreatedPayload{
			Owner:    caller,
			FullName: profile.FullName,
		})
		if err != nil {
			return nil, err
		}
		return []models.Notification{n}, nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfile returns the profile of identity, or the zero Profile if the
// identity never registered. Only storage failures produce an error.
func (r *Registry) GetProfile(ctx context.Context, identity string) (models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("owner = ?", identity).Limit(1).Find(&profile).Error; err != nil {
		return models.Profile{}, fmt.Errorf("registry.GetProfile: %w", err)
	}
	return profile, nil
}

// HasProfile reports whether identity has registered a profile.
func (r *Registry) HasProfile(ctx context.Context, identity string) (bool, error) {
	ok, err := profileExists(r.db.WithContext(ctx), identity)
	if err != nil {
		return false, fmt.Errorf("registry.HasProfile: %w", err)
	}
	return ok, nil
}
