package models

// Question is a single trivia question. CategoryID references Category.ID;
// the JSON field keeps the historical name "category" the web client expects.
type Question struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	Difficulty int       `gorm:"not null" json:"difficulty"`
	CategoryID uint      `gorm:"not null;index" json:"category"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`
}
