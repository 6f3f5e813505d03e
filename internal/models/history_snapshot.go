package models

import "time"

// HistorySnapshot holds the authoritative completed/total counts for one item
// kind on one calendar day. Counts are re-derived from the live item set on
// every write, never incremented independently.
type HistorySnapshot struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_snapshot_user_kind_date"`
	Kind      string    `gorm:"not null;uniqueIndex:uidx_snapshot_user_kind_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_snapshot_user_kind_date"`
	Completed int       `gorm:"not null;default:0"`
	Total     int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
