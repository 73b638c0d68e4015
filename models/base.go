package models

import "time"

// BaseModel tüm tablolarda ortak olan kolonları içerir.
// Uygulama hiçbir kaydı silmediği için soft delete kolonu yoktur.
type BaseModel struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
