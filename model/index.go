package model

import "time"

type TokenData struct {
	AccessToken string `json:"accessToken"`
}

type TokenClaim struct {
	Role     string `json:"role"`
	IssuedAt int64  `json:"issuedAt"`
}

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
