package client

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

type CartState struct {
	Items []*entities.CartItem `json:"items"`
}

// Total is the sum of price times quantity over the cached lines.
func (st CartState) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range st.Items {
		total = total.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

type CartStore struct {
	store[CartState]
	client *Client
}

func NewCartStore(client *Client, persist Persister, notifier Notifier) *CartStore {
	s := &CartStore{client: client}
	s.setup("cart", persist, notifier)
	return s
}

func (s *CartStore) Sync(ctx context.Context) error {
	if err := s.restore(); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

func (s *CartStore) Fetch(ctx context.Context) error {
	var out struct {
		CartItems []*entities.CartItem `json:"cartItems"`
	}
	if _, err := s.client.doJSON(ctx, http.MethodGet, "/api/v1/cart", nil, &out); err != nil {
		return s.fail(err)
	}
	return s.update(func(st *CartState) { st.Items = out.CartItems })
}

// Add puts quantity of recipe into the cart. The server adds to an existing
// line, so the returned line carries the new total quantity.
func (s *CartStore) Add(ctx context.Context, recipe *entities.Recipe, quantity int) (*entities.CartItem, error) {
	req := domain.AddToCartRequest{
		RecipeID: recipe.ID.String(),
		Name:     recipe.Name,
		Image:    recipe.Image,
		Price:    recipe.Price,
		Quantity: quantity,
	}
	var out struct {
		CartItem *entities.CartItem `json:"cartItem"`
	}
	msg, err := s.client.doJSON(ctx, http.MethodPost, "/api/v1/cart", req, &out)
	if err != nil {
		return nil, s.fail(err)
	}
	s.ok(msg)
	return out.CartItem, s.put(out.CartItem)
}

func (s *CartStore) UpdateQuantity(ctx context.Context, recipeID string, quantity int) (*entities.CartItem, error) {
	var out struct {
		CartItem *entities.CartItem `json:"cartItem"`
	}
	req := domain.UpdateCartItemRequest{Quantity: quantity}
	msg, err := s.client.doJSON(ctx, http.MethodPut, "/api/v1/cart/"+url.PathEscape(recipeID), req, &out)
	if err != nil {
		return nil, s.fail(err)
	}
	s.ok(msg)
	return out.CartItem, s.put(out.CartItem)
}

func (s *CartStore) Increment(ctx context.Context, recipeID string) error {
	item := s.find(recipeID)
	if item == nil {
		return domain.ErrCartItemNotFound
	}
	_, err := s.UpdateQuantity(ctx, recipeID, item.Quantity+1)
	return err
}

// Decrement lowers the quantity by one but never below 1; removing a line
// is an explicit Remove.
func (s *CartStore) Decrement(ctx context.Context, recipeID string) error {
	item := s.find(recipeID)
	if item == nil {
		return domain.ErrCartItemNotFound
	}
	if item.Quantity <= 1 {
		return nil
	}
	_, err := s.UpdateQuantity(ctx, recipeID, item.Quantity-1)
	return err
}

func (s *CartStore) Remove(ctx context.Context, recipeID string) error {
	msg, err := s.client.doJSON(ctx, http.MethodDelete, "/api/v1/cart/"+url.PathEscape(recipeID), nil, nil)
	if err != nil {
		return s.fail(err)
	}
	s.ok(msg)
	return s.update(func(st *CartState) {
		st.Items = removeWhere(st.Items, func(i *entities.CartItem) bool { return i.RecipeID.String() == recipeID })
	})
}

func (s *CartStore) Clear(ctx context.Context) error {
	msg, err := s.client.doJSON(ctx, http.MethodDelete, "/api/v1/cart", nil, nil)
	if err != nil {
		return s.fail(err)
	}
	s.ok(msg)
	return s.update(func(st *CartState) { st.Items = nil })
}

func (s *CartStore) find(recipeID string) *entities.CartItem {
	for _, item := range s.Snapshot().Items {
		if item.RecipeID.String() == recipeID {
			return item
		}
	}
	return nil
}

// put replaces the line for item's recipe or appends it.
func (s *CartStore) put(item *entities.CartItem) error {
	return s.update(func(st *CartState) {
		items := make([]*entities.CartItem, 0, len(st.Items)+1)
		replaced := false
		for _, existing := range st.Items {
			if existing.RecipeID == item.RecipeID {
				items = append(items, item)
				replaced = true
				continue
			}
			items = append(items, existing)
		}
		if !replaced {
			items = append(items, item)
		}
		st.Items = items
	})
}
