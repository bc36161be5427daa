package model

import (
	"time"
)

// BadgeSnapshots corresponds to the badge_snapshots table in the database.
// One row is written per issued badge.
type BadgeSnapshots struct {
	Id               int64     `gorm:"primaryKey"`
	Input            string    `gorm:"size:255;not null"`
	Address          string    `gorm:"size:66;index;not null"`
	DisplayName      string    `gorm:"size:255"`
	TransactionCount uint64    `gorm:"not null"`
	TotalVolume      float64   `gorm:"not null"`
	Resolved         bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"index"`
}
