package cart

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartRepository interface {
		GetCartItem(ctx context.Context, userID, recipeID uuid.UUID) (*entities.CartItem, error)
		GetCartItems(ctx context.Context, userID uuid.UUID) ([]*entities.CartItem, error)
		CreateCartItem(ctx context.Context, item *entities.CartItem) error
		UpdateCartItem(ctx context.Context, item *entities.CartItem) error
		DeleteCartItem(ctx context.Context, userID, recipeID uuid.UUID) error
		ClearCart(ctx context.Context, userID uuid.UUID) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetCartItem(ctx context.Context, userID, recipeID uuid.UUID) (*entities.CartItem, error) {
	var item entities.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) GetCartItems(ctx context.Context, userID uuid.UUID) ([]*entities.CartItem, error) {
	var items []*entities.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) CreateCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) UpdateCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartRepository) DeleteCartItem(ctx context.Context, userID, recipeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.CartItem{}).Error
}

func (r *cartRepository) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.CartItem{}).Error
}
