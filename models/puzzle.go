package models

import (
	"time"

	"gorm.io/datatypes"
)

type Puzzle struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Board      datatypes.JSON `json:"board"` // 81-cell grid as a JSON array
	Difficulty string         `json:"difficulty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
