package model

import "time"

// ShopSetting is a key-value row. Two keys exist today: admin_pin (bcrypt
// hash, comparatively static) and verification_pin (plaintext, rotated at
// will from the dashboard).
type ShopSetting struct {
	Key       string    `gorm:"primaryKey;size:50" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TokenCounter holds the last display number handed out for a given day.
// The row is bumped inside the order-insert transaction so two concurrent
// checkouts can never draw the same number.
type TokenCounter struct {
	Day  string `gorm:"primaryKey;size:10"`
	Last int    `gorm:"not null;default:0"`
}

type UpdatePinInput struct {
	Pin string `json:"pin" validate:"required,len=4,numeric"`
}

type LoginInput struct {
	Pin string `json:"pin" validate:"required,min=4,max=8"`
}
