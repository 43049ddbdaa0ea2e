package model

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type MenuItem struct {
	DTO
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;size:120" json:"slug"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"index" json:"category"`
	ImageUrl    string  `json:"imageUrl"`
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.Slug == "" {
		m.Slug = slug.Make(m.Name)
	}
	return nil
}

type CreateMenuItemInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,min=2,max=50"`
	ImageUrl    string  `json:"imageUrl" validate:"omitempty,url"`
	IsAvailable *bool   `json:"isAvailable"`
}

type UpdateMenuItemInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Category    *string  `json:"category" validate:"omitempty,min=2,max=50"`
	ImageUrl    *string  `json:"imageUrl" validate:"omitempty,url"`
	IsAvailable *bool    `json:"isAvailable"`
}
