package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile represents a registered user, keyed by the owner's identity.
// Apart from FriendCount, a profile never changes after creation.
type Profile struct {
	Owner              string                      `gorm:"primaryKey;size:255" json:"owner"`
	FullName           string                      `json:"full_name"`
	IPFSProfilePicture string                      `json:"ipfs_profile_picture"`
	Title              string                      `json:"title"`
	TechStack          datatypes.JSONSlice[string] `json:"tech_stack"`
	About              string                      `json:"about"`
	FriendCount        uint64                      `gorm:"not null;default:0" json:"friend_count"`
	CreatedAt          time.Time                   `json:"created_at"`
}

// Exists reports whether p was loaded from the registry rather than being the
// zero value returned for unknown identities.
func (p Profile) Exists() bool {
	return p.Owner != ""
}
