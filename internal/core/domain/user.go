package domain

import "time"

// User is the persisted credential record of one registered account.
//
// SavedRecipes keeps insertion order and may hold the same recipe more than once.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	SavedRecipes []string  `json:"savedRecipes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
