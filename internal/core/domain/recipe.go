package domain

import "time"

// Recipe is owned by the user that created it and may be saved by any number of users.
type Recipe struct {
	ID           string
	Name         string
	Image        string
	Ingredients  []string
	Instructions string
	ImageURL     string
	CookingTime  int // minutes
	Nutrition    string
	UserOwner    string
	CreatedAt    time.Time
}
