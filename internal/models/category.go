package models

// Category is a trivia category. Categories are seeded at database
// administration time and are read-only through the API.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:64;not null" json:"type"`
}
