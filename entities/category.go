package entities

import "github.com/google/uuid"

type Category struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Image    string    `gorm:"not null" json:"image"`
	Cuisines []string  `gorm:"serializer:json" json:"cuisines"`
	Recipes  []*Recipe `gorm:"many2many:category_recipes" json:"recipes"`

	Timestamp
}
