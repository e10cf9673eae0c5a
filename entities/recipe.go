package entities

import "github.com/google/uuid"

type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"` // free text, e.g. "200g" or "2 cups"
}

type Recipe struct {
	ID          uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `gorm:"not null" json:"description"`
	Price       float64      `gorm:"not null" json:"price"`
	Image       string       `gorm:"not null" json:"image"`
	Ingredients []Ingredient `gorm:"serializer:json" json:"ingredients"`

	Timestamp
}
