package models

import (
	"time"

	"gorm.io/gorm"
)

// FriendshipStatus defines the state of a relationship between two users.
type FriendshipStatus string

const (
	// StatusPending means a friend request has been sent but not yet accepted.
	StatusPending FriendshipStatus = "pending"

	// StatusAccepted means the friend request was accepted, and the users are now friends.
	StatusAccepted FriendshipStatus = "accepted"
)

// Friendship is the single edge stored for an unordered pair of identities.
// The primary key is (UserA, UserB) with UserA < UserB, so both sides of the
// pair always read the same row. A missing row means the pair has no relation.
type Friendship struct {
	UserA       string           `gorm:"primaryKey;size:255" json:"user_a"`
	UserB       string           `gorm:"primaryKey;size:255" json:"user_b"`
	RequesterID string           `gorm:"size:255;not null;index" json:"requester_id"`
	Status      FriendshipStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	AcceptedAt  *time.Time       `json:"accepted_at,omitempty"`
}

// PairKey orders two identities into the canonical (UserA, UserB) key.
func PairKey(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

// NewFriendRequest builds a pending edge sent by from to to.
func NewFriendRequest(from, to string) Friendship {
	userA, userB := PairKey(from, to)
	return Friendship{
		UserA:       userA,
		UserB:       userB,
		RequesterID: from,
		Status:      StatusPending,
	}
}

// Other returns the endpoint of the edge that is not id.
func (f Friendship) Other(id string) string {
	if f.UserA == id {
		return f.UserB
	}
	return f.UserA
}

// Recipient returns the endpoint the request was sent to.
func (f Friendship) Recipient() string {
	return f.Other(f.RequesterID)
}

// PendingFrom reports whether the edge is a pending request sent by id.
func (f Friendship) PendingFrom(id string) bool {
	return f.Status == StatusPending && f.RequesterID == id
}

// BeforeCreate keeps UserA < UserB for rows built by hand.
func (f *Friendship) BeforeCreate(_ *gorm.DB) error {
	f.UserA, f.UserB = PairKey(f.UserA, f.UserB)
	return nil
}
