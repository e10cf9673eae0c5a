package entities

import "github.com/google/uuid"

type DeliveryDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// OrderItem is the line snapshot taken at checkout. It is never re-read from the catalog.
type OrderItem struct {
	RecipeID string  `json:"recipeId"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;index;not null" json:"userId"`
	User            *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null" json:"categoryId"`
	Category        *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	DeliveryDetails DeliveryDetails `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryDetails"`
	CartItems       []OrderItem     `gorm:"serializer:json" json:"cartItems"`
	TotalAmount     float64         `gorm:"not null" json:"totalAmount"`
	Status          string          `gorm:"type:varchar(20);not null" json:"status"`

	PaymentStatus string `gorm:"type:varchar(20);default:'unpaid'" json:"paymentStatus"`
	PaymentToken  string `json:"paymentToken,omitempty"`
	PaymentURL    string `json:"paymentUrl,omitempty"`

	Timestamp
}
