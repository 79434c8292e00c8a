package models

import "time"

// Item is a single inventory row. OwnerID records which user created it;
// listing is not scoped by owner.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     int64     `json:"owner_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
