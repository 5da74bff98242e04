package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"educonnect/backend/internal/models"

	"gorm.io/gorm"
)

// Direction filters pending edges by who sent the request.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// RelationFilter narrows ListRelations. Zero fields match everything.
type RelationFilter struct {
	Status    models.FriendshipStatus
	Direction Direction
}

var errConcurrentUpdate = errors.New("friendship state changed during update")

// findEdge loads the edge for the unordered pair {a, b}, or nil when the pair
// has no relation.
func findEdge(tx *gorm.DB, a, b string) (*models.Friendship, error) {
	userA, userB := models.PairKey(a, b)

	var edge models.Friendship
	res := tx.Where("user_a = ? AND user_b = ?", userA, userB).Limit(1).Find(&edge)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &edge, nil
}

// SendFriendRequest moves the pair {caller, recipient} from no relation to a
// request pending from caller.
func (r *Registry) SendFriendRequest(ctx context.Context, caller, recipient string) error {
	return r.mutate(ctx, "SendFriendRequest", func(tx *gorm.DB) ([]models.Notification, error) {
		if err := requireProfile(tx, caller); err != nil {
			return nil, err
		}

		ok, err := profileExists(tx, recipient)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrRecipientNotFound
		}

		if recipient == caller {
			return nil, ErrSelfRequest
		}

		edge, err := findEdge(tx, caller, recipient)
		if err != nil {
			return nil, err
		}
		if edge != nil {
			switch {
			case edge.Status == models.StatusAccepted:
				return nil, ErrAlreadyFriends
			case edge.RequesterID == caller:
				return nil, ErrDuplicateRequest
			default:
				return nil, ErrReverseRequestPending
			}
		}

		request := models.NewFriendRequest(caller, recipient)
		if err := tx.Create(&request).Error; err != nil {
			return nil, err
		}

		n, err := newNotification(models.NotificationFriendRequestSent, caller, recipient, models.FriendRequestPayload{
			From: caller,
			To:   recipient,
		})
		if err != nil {
			return nil, err
		}
		return []models.Notification{n}, nil
	})
}

// AcceptFriendRequest confirms the request requester sent to caller and
// increments both friend counts. Accepting an already confirmed pair does
// nothing.
func (r *Registry) AcceptFriendRequest(ctx context.Context, caller, requester string) error {
	if caller == "" {
		return ErrMissingIdentity
	}

	return r.mutate(ctx, "AcceptFriendRequest", func(tx *gorm.DB) ([]models.Notification, error) {
		edge, err := findEdge(tx, caller, requester)
		if err != nil {
			return nil, err
		}
		if edge == nil || caller == requester {
			return nil, ErrNoSuchRequest
		}
		if edge.Status == models.StatusAccepted {
			return nil, nil
		}
		if !edge.PendingFrom(requester) {
			return nil, ErrNoSuchRequest
		}

		now := time.Now().UTC()
		res := tx.Model(&models.Friendship{}).
			Where("user_a = ? AND user_b = ? AND status = ?", edge.UserA, edge.UserB, models.StatusPending).
			Updates(map[string]any{"status": models.StatusAccepted, "accepted_at": now})
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected != 1 {
			return nil, errConcurrentUpdate
		}

		res = tx.Model(&models.Profile{}).
			Where("owner IN ?", []string{caller, requester}).
			UpdateColumn("friend_count", gorm.Expr("friend_count + ?", 1))
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected != 2 {
			return nil, errConcurrentUpdate
		}

		n, err := newNotification(models.NotificationFriendRequestAccepted, caller, requester, models.FriendRequestPayload{
			From: requester,
			To:   caller,
		})
		if err != nil {
			return nil, err
		}
		return []models.Notification{n}, nil
	})
}

// CheckFriendship reports whether a and b are confirmed friends. It is symmetric.
func (r *Registry) CheckFriendship(ctx context.Context, a, b string) (bool, error) {
	edge, err := r.Relation(ctx, a, b)
	if err != nil {
		return false, err
	}
	return edge != nil && edge.Status == models.StatusAccepted, nil
}

// Relation returns the edge between a and b, or nil if there is none.
func (r *Registry) Relation(ctx context.Context, a, b string) (*models.Friendship, error) {
	edge, err := findEdge(r.db.WithContext(ctx), a, b)
	if err != nil {
		return nil, fmt.Errorf("registry.Relation: %w", err)
	}
	return edge, nil
}

// GetFriendCount returns the number of confirmed friendships of identity.
func (r *Registry) GetFriendCount(ctx context.Context, identity string) (uint64, error) {
	profile, err := r.GetProfile(ctx, identity)
	if err != nil {
		return 0, err
	}
	return profile.FriendCount, nil
}

// ListRelations returns every edge touching identity that matches filter,
// oldest first.
func (r *Registry) ListRelations(ctx context.Context, identity string, filter RelationFilter) ([]models.Friendship, error) {
	query := r.db.WithContext(ctx).Where("(user_a = ? OR user_b = ?)", identity, identity)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	switch filter.Direction {
	case DirectionIncoming:
		query = query.Where("requester_id <> ?", identity)
	case DirectionOutgoing:
		query = query.Where("requester_id = ?", identity)
	}

	var relations []models.Friendship
	if err := query.Order("created_at, user_a, user_b").Find(&relations).Error; err != nil {
		return nil, fmt.Errorf("registry.ListRelations: %w", err)
	}
	return relations, nil
}
