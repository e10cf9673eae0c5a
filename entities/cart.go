package entities

import "github.com/google/uuid"

type CartItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_recipe;not null" json:"userId"`
	RecipeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_recipe;not null" json:"recipeId"`
	Name     string    `gorm:"not null" json:"name"`
	Image    string    `gorm:"not null" json:"image"`
	Price    float64   `gorm:"not null" json:"price"`
	Quantity int       `gorm:"not null" json:"quantity"`

	Timestamp
}
