package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timestamp struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// newID fills a zero primary key before insert so rows get ids on every dialect.
func newID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	newID(&u.ID)
	return nil
}

func (c *Category) BeforeCreate(_ *gorm.DB) error {
	newID(&c.ID)
	return nil
}

func (r *Recipe) BeforeCreate(_ *gorm.DB) error {
	newID(&r.ID)
	return nil
}

func (i *CartItem) BeforeCreate(_ *gorm.DB) error {
	newID(&i.ID)
	return nil
}

func (o *Order) BeforeCreate(_ *gorm.DB) error {
	newID(&o.ID)
	return nil
}
