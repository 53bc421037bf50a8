package entity

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records that a user was shown a restaurant. Entries are append only.
type HistoryEntry struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	RestaurantRef string     `json:"restaurant_ref"` // "<type>/<id>" of the OSM element
	Restaurant    Restaurant `json:"restaurant"`
	CreatedAt     time.Time  `json:"created_at"`
}
