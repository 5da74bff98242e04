package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotificationProfileCreated        NotificationType = "ProfileCreated"
	NotificationFriendRequestSent     NotificationType = "FriendRequestSent"
	NotificationFriendRequestAccepted NotificationType = "FriendRequestAccepted"
	NotificationEventCreated          NotificationType = "EventCreated"
)

// Notification records a committed state change for external observers.
// Rows are written in the same transaction as the change they describe.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UID       uuid.UUID        `gorm:"type:varchar(36);uniqueIndex;not null" json:"uid"`
	Type      NotificationType `gorm:"size:50;not null;index" json:"type"`
	Actor     string           `gorm:"size:255;not null;index" json:"actor"`
	Subject   string           `gorm:"size:255;index" json:"subject,omitempty"` // Other party, empty when none
	Payload   datatypes.JSON   `json:"payload"`
	CreatedAt time.Time        `json:"created_at"`
}

// Identities lists the identities a notification concerns.
func (n Notification) Identities() []string {
	if n.Subject == "" || n.Subject == n.Actor {
		return []string{n.Actor}
	}
	return []string{n.Actor, n.Subject}
}

// ProfileCreatedPayload is the payload of a ProfileCreated notification.
type ProfileCreatedPayload struct {
	Owner    string `json:"owner"`
	FullName string `json:"full_name"`
}

// FriendRequestPayload is the payload of FriendRequestSent and FriendRequestAccepted.
type FriendRequestPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// EventCreatedPayload is the payload of an EventCreated notification.
type EventCreatedPayload struct {
	Seq         uint64    `json:"seq"`
	Organizer   string    `json:"organizer"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	IsHackathon bool      `json:"is_hackathon"`
}
