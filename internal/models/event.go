package models

import "time"

// Event is an entry in the append-only event log. Seq is the zero-based
// position in the log and is assigned once at creation.
type Event struct {
	Seq         uint64    `gorm:"primaryKey;autoIncrement:false" json:"seq"`
	Organizer   string    `gorm:"size:255;not null;index" json:"organizer"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	IsHackathon bool      `gorm:"not null;default:false" json:"is_hackathon"`
	CreatedAt   time.Time `json:"created_at"`
}
