package models

import "time"

// Room is the persisted pin-lookup row. It exists so clients can check
// that a shareable pin was handed out; the realtime coordinator keeps
// its own in-memory state and never reads this table.
type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GamePin   string    `gorm:"uniqueIndex;not null" json:"game_pin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
