package models

// Settings holds per-user preferences. One row per user; a missing row means
// defaults (salary 0 = disabled, ARS, light theme).
type Settings struct {
	Base
	UserID   string  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Salary   float64 `gorm:"not null;default:0" json:"salary"`
	Currency string  `gorm:"not null;default:'ARS'" json:"currency"`
	Theme    string  `gorm:"not null;default:'light'" json:"theme"`
}

// DefaultSettings returns the settings used when the user has never saved any.
func DefaultSettings(userID string) *Settings {
	return &Settings{UserID: userID, Salary: 0, Currency: "ARS", Theme: "light"}
}
