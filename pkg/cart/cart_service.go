package cart

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"context"
	"errors"

	"github.com/google/uuid"
)

type (
	CartService interface {
		AddToCart(ctx context.Context, userID string, req domain.AddToCartRequest) (*entities.CartItem, error)
		GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error)
		ClearCart(ctx context.Context, userID string) error
		RemoveFromCart(ctx context.Context, userID, recipeID string) error
		UpdateCartItem(ctx context.Context, userID, recipeID string, req domain.UpdateCartItemRequest) (*entities.CartItem, error)
	}

	cartService struct {
		cartRepository CartRepository
	}
)

func NewCartService(cartRepository CartRepository) CartService {
	return &cartService{cartRepository: cartRepository}
}

// AddToCart accumulates into the existing (user, recipe) line. The read and
// the write are separate round trips, so concurrent adds to the same line
// can lose an increment.
func (s *cartService) AddToCart(ctx context.Context, userID string, req domain.AddToCartRequest) (*entities.CartItem, error) {
	if req.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	rid, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	item, err := s.cartRepository.GetCartItem(ctx, uid, rid)
	switch {
	case err == nil:
		item.Quantity += req.Quantity
		if err := s.cartRepository.UpdateCartItem(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	case errors.Is(err, domain.ErrCartItemNotFound):
		item = &entities.CartItem{
			UserID:   uid,
			RecipeID: rid,
			Name:     req.Name,
			Image:    req.Image,
			Price:    req.Price,
			Quantity: req.Quantity,
		}
		if err := s.cartRepository.CreateCartItem(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	default:
		return nil, err
	}
}

func (s *cartService) GetCartItems(ctx context.Context, userID string) ([]*entities.CartItem, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.cartRepository.GetCartItems(ctx, uid)
}

func (s *cartService) ClearCart(ctx context.Context, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.cartRepository.ClearCart(ctx, uid)
}

// RemoveFromCart succeeds whether or not the line existed.
func (s *cartService) RemoveFromCart(ctx context.Context, userID, recipeID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	rid, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrCartItemNotFound
	}
	return s.cartRepository.DeleteCartItem(ctx, uid, rid)
}

// UpdateCartItem sets the quantity of an existing line. Values below 1 are
// rejected rather than treated as a delete.
func (s *cartService) UpdateCartItem(ctx context.Context, userID, recipeID string, req domain.UpdateCartItemRequest) (*entities.CartItem, error) {
	if req.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	rid, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrCartItemNotFound
	}

	item, err := s.cartRepository.GetCartItem(ctx, uid, rid)
	if err != nil {
		return nil, err
	}
	item.Quantity = req.Quantity
	if err := s.cartRepository.UpdateCartItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
