package model

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntryModel mirrors the 'history_entries' table.
type HistoryEntryModel struct {
	ID            uuid.UUID          `gorm:"type:varchar(36);primaryKey"`
	UserID        uuid.UUID          `gorm:"type:varchar(36);not null;index:idx_history_entries_user_id"`
	RestaurantRef string             `gorm:"type:varchar(64);not null;index:idx_history_entries_restaurant_ref"`
	Restaurant    RestaurantSnapshot `gorm:"type:text;not null;default:'{}'"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (HistoryEntryModel) TableName() string {
	return "history_entries"
}
