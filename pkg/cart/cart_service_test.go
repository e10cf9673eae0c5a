package cart

import (
	"FoodHub/domain"
	"FoodHub/internal/testutil"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) CartService {
	t.Helper()
	return NewCartService(NewCartRepository(testutil.NewDB(t)))
}

func addReq(recipeID string, qty int) domain.AddToCartRequest {
	return domain.AddToCartRequest{RecipeID: recipeID, Name: "Margherita", Image: "img", Price: 100, Quantity: qty}
}

func TestAddToCart_DuplicateAccumulates(t *testing.T) {
	svc := newService(t)
	user := uuid.NewString()
	recipe := uuid.NewString()

	_, err := svc.AddToCart(context.Background(), user, addReq(recipe, 2))
	require.NoError(t, err)
	item, err := svc.AddToCart(context.Background(), user, addReq(recipe, 3))
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	items, err := svc.GetCartItems(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	_, err = svc.AddToCart(context.Background(), user, addReq(recipe, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestClearCart_OnlyCaller(t *testing.T) {
	svc := newService(t)
	alice, bob := uuid.NewString(), uuid.NewString()
	recipe := uuid.NewString()

	_, err := svc.AddToCart(context.Background(), alice, addReq(recipe, 1))
	require.NoError(t, err)
	_, err = svc.AddToCart(context.Background(), alice, addReq(uuid.NewString(), 1))
	require.NoError(t, err)
	_, err = svc.AddToCart(context.Background(), bob, addReq(recipe, 4))
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(context.Background(), alice))

	items, err := svc.GetCartItems(context.Background(), alice)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = svc.GetCartItems(context.Background(), bob)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	svc := newService(t)
	user := uuid.NewString()
	keep, drop := uuid.NewString(), uuid.NewString()

	_, err := svc.AddToCart(context.Background(), user, addReq(keep, 1))
	require.NoError(t, err)
	_, err = svc.AddToCart(context.Background(), user, addReq(drop, 1))
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFromCart(context.Background(), user, drop))
	require.NoError(t, svc.RemoveFromCart(context.Background(), user, drop))

	items, err := svc.GetCartItems(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, keep, items[0].RecipeID.String())
}

func TestUpdateCartItem(t *testing.T) {
	svc := newService(t)
	user := uuid.NewString()
	recipe := uuid.NewString()
	_, err := svc.AddToCart(context.Background(), user, addReq(recipe, 1))
	require.NoError(t, err)

	item, err := svc.UpdateCartItem(context.Background(), user, recipe, domain.UpdateCartItemRequest{Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity)

	_, err = svc.UpdateCartItem(context.Background(), user, recipe, domain.UpdateCartItemRequest{Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	_, err = svc.UpdateCartItem(context.Background(), user, recipe, domain.UpdateCartItemRequest{Quantity: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.UpdateCartItem(context.Background(), user, uuid.NewString(), domain.UpdateCartItemRequest{Quantity: 2})
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)

	items, err := svc.GetCartItems(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, 7, items[0].Quantity)
}
