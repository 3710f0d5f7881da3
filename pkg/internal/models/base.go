package models

import "time"

// BaseModel is embedded by every persisted entity.
// Rows are never hard deleted by the services; entities that support
// deletion carry their own lifecycle flag instead.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
