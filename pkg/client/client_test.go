package client

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// fakeAPI serves the cart, order and user endpoints from memory.
type fakeAPI struct {
	mu       sync.Mutex
	cart     []*entities.CartItem
	orders   []*entities.Order
	updates  []domain.UpdateCartItemRequest
	cartFail bool
}

func (f *fakeAPI) setCart(items []*entities.CartItem, fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cart = items
	f.cartFail = fail
}

func (f *fakeAPI) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.updates)
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/user/login", func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret123" {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false, "message": domain.MessageFailedLogin, "error": domain.ErrInvalidCredentials.Error(),
			})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "session", Path: "/"})
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true, "message": "welcome back Ana", "user": entities.User{Fullname: "Ana", Email: req.Email},
		})
	})
	mux.HandleFunc("GET /api/v1/user/check-auth", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("token"); err != nil || c.Value != "session" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": domain.MessageUnauthorized})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": entities.User{Fullname: "Ana"}})
	})
	mux.HandleFunc("POST /api/v1/user/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "", Path: "/", MaxAge: -1})
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": domain.MessageSuccessLogout})
	})

	mux.HandleFunc("GET /api/v1/cart", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.cartFail {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": domain.MessageInternalServerError})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "cartItems": f.cart})
	})
	mux.HandleFunc("POST /api/v1/cart", func(w http.ResponseWriter, r *http.Request) {
		var req domain.AddToCartRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		rid := uuid.MustParse(req.RecipeID)
		for _, item := range f.cart {
			if item.RecipeID == rid {
				item.Quantity += req.Quantity
				writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": domain.MessageSuccessAddToCart, "cartItem": item})
				return
			}
		}
		item := &entities.CartItem{ID: uuid.New(), RecipeID: rid, Name: req.Name, Image: req.Image, Price: req.Price, Quantity: req.Quantity}
		f.cart = append(f.cart, item)
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": domain.MessageSuccessAddToCart, "cartItem": item})
	})
	mux.HandleFunc("PUT /api/v1/cart/{recipeId}", func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateCartItemRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.updates = append(f.updates, req)
		for _, item := range f.cart {
			if item.RecipeID.String() == r.PathValue("recipeId") {
				item.Quantity = req.Quantity
				writeJSON(w, http.StatusOK, map[string]any{"success": true, "cartItem": item})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": domain.MessageFailedUpdateItem, "error": domain.ErrCartItemNotFound.Error()})
	})
	mux.HandleFunc("DELETE /api/v1/cart", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.cart = nil
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": domain.MessageSuccessClearCart})
	})

	mux.HandleFunc("GET /api/v1/order/orders", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "orders": f.orders})
	})
	mux.HandleFunc("POST /api/v1/order/orders", func(w http.ResponseWriter, r *http.Request) {
		var req domain.CheckoutRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		total := 0.0
		items := make([]entities.OrderItem, 0, len(req.CartItems))
		for _, line := range req.CartItems {
			total += line.Price * float64(line.Quantity)
			items = append(items, entities.OrderItem{RecipeID: line.RecipeID, Name: line.Name, Price: line.Price, Quantity: line.Quantity})
		}
		o := &entities.Order{ID: uuid.New(), CartItems: items, TotalAmount: total, Status: domain.OrderStatusPending}
		f.mu.Lock()
		f.orders = append([]*entities.Order{o}, f.orders...)
		f.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "message": domain.MessageSuccessCreateOrder, "order": o})
	})
	mux.HandleFunc("PUT /api/v1/order/admin/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateOrderStatusRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !domain.IsValidOrderStatus(req.Status) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": domain.MessageFailedUpdateOrderStatus, "error": domain.ErrInvalidOrderStatus.Error()})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, o := range f.orders {
			if o.ID.String() == r.PathValue("id") {
				o.Status = req.Status
				writeJSON(w, http.StatusOK, map[string]any{"success": true, "order": o})
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": domain.MessageFailedUpdateOrderStatus})
	})
	mux.HandleFunc("GET /api/v1/order/admin/orders/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = w.Write([]byte("PK-xlsx"))
	})
	return mux
}

func newFake(t *testing.T) (*fakeAPI, *Client) {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL + "/")
	require.NoError(t, err)
	return api, c
}

func newPersister(t *testing.T) Persister {
	t.Helper()
	p, err := NewFilePersister(t.TempDir())
	require.NoError(t, err)
	return p
}

func recipe(name string, price float64) *entities.Recipe {
	return &entities.Recipe{ID: uuid.New(), Name: name, Image: "https://storage.test/" + name, Price: price}
}

func TestFilePersister(t *testing.T) {
	p := newPersister(t)

	var st CartState
	ok, err := p.Load("cart", &st)
	require.NoError(t, err)
	assert.False(t, ok)

	saved := CartState{Items: []*entities.CartItem{{Name: "Pizza", Price: 12.5, Quantity: 2}}}
	require.NoError(t, p.Save("cart", saved))

	ok, err = p.Load("cart", &st)
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, st.Items, 1)
	assert.Equal(t, "Pizza", st.Items[0].Name)
}

func TestCartStore_AddAndTotal(t *testing.T) {
	_, c := newFake(t)
	notifier := &recordingNotifier{}
	cart := NewCartStore(c, newPersister(t), notifier)
	ctx := context.Background()

	pizza := recipe("pizza", 100)
	soup := recipe("soup", 0.1)

	_, err := cart.Add(ctx, pizza, 1)
	require.NoError(t, err)
	item, err := cart.Add(ctx, pizza, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	_, err = cart.Add(ctx, soup, 3)
	require.NoError(t, err)

	st := cart.Snapshot()
	require.Len(t, st.Items, 2)
	assert.True(t, decimal.RequireFromString("200.3").Equal(st.Total()), st.Total().String())
	assert.Equal(t, []string{domain.MessageSuccessAddToCart, domain.MessageSuccessAddToCart, domain.MessageSuccessAddToCart}, notifier.successes)
}

func TestCartStore_DecrementStopsAtOne(t *testing.T) {
	api, c := newFake(t)
	cart := NewCartStore(c, nil, nil)
	ctx := context.Background()

	pizza := recipe("pizza", 10)
	_, err := cart.Add(ctx, pizza, 2)
	require.NoError(t, err)

	require.NoError(t, cart.Decrement(ctx, pizza.ID.String()))
	assert.Equal(t, 1, cart.Snapshot().Items[0].Quantity)

	require.NoError(t, cart.Decrement(ctx, pizza.ID.String()))
	assert.Equal(t, 1, cart.Snapshot().Items[0].Quantity)
	assert.Equal(t, 1, api.updateCount(), "no request is sent once the line is at 1")

	require.NoError(t, cart.Increment(ctx, pizza.ID.String()))
	assert.Equal(t, 2, cart.Snapshot().Items[0].Quantity)

	assert.ErrorIs(t, cart.Decrement(ctx, uuid.NewString()), domain.ErrCartItemNotFound)
}

func TestCartStore_SyncRestoresThenRefreshes(t *testing.T) {
	api, c := newFake(t)
	p := newPersister(t)
	ctx := context.Background()

	stale := &entities.CartItem{RecipeID: uuid.New(), Name: "stale", Quantity: 4}
	require.NoError(t, p.Save("cart", CartState{Items: []*entities.CartItem{stale}}))

	fresh := &entities.CartItem{ID: uuid.New(), RecipeID: uuid.New(), Name: "fresh", Price: 5, Quantity: 1}
	api.setCart([]*entities.CartItem{fresh}, false)

	cart := NewCartStore(c, p, nil)
	require.NoError(t, cart.Sync(ctx))
	require.Len(t, cart.Snapshot().Items, 1)
	assert.Equal(t, "fresh", cart.Snapshot().Items[0].Name)

	// The refreshed state is what a new process restores.
	var saved CartState
	ok, err := p.Load("cart", &saved)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "fresh", saved.Items[0].Name)
}

func TestCartStore_SyncKeepsSnapshotWhenServerFails(t *testing.T) {
	api, c := newFake(t)
	p := newPersister(t)
	notifier := &recordingNotifier{}

	require.NoError(t, p.Save("cart", CartState{Items: []*entities.CartItem{{Name: "saved", Quantity: 1}}}))
	api.setCart(nil, true)

	cart := NewCartStore(c, p, notifier)
	err := cart.Sync(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, domain.MessageInternalServerError, apiErr.Message)
	assert.Equal(t, "saved", cart.Snapshot().Items[0].Name)
	assert.Equal(t, []string{domain.MessageInternalServerError}, notifier.errors)
}

func TestCartStore_Clear(t *testing.T) {
	_, c := newFake(t)
	cart := NewCartStore(c, nil, nil)
	ctx := context.Background()

	_, err := cart.Add(ctx, recipe("pizza", 10), 1)
	require.NoError(t, err)
	require.NoError(t, cart.Clear(ctx))
	assert.Empty(t, cart.Snapshot().Items)
	require.NoError(t, cart.Fetch(ctx))
	assert.Empty(t, cart.Snapshot().Items)
}

func TestUserStore_SessionCookie(t *testing.T) {
	_, c := newFake(t)
	notifier := &recordingNotifier{}
	users := NewUserStore(c, nil, notifier)
	ctx := context.Background()

	require.NoError(t, users.Sync(ctx))
	assert.False(t, users.Snapshot().IsAuthenticated)

	_, err := users.Login(ctx, "ana@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, domain.MessageFailedLogin, apiErr.Message)
	assert.Equal(t, []string{domain.MessageFailedLogin}, notifier.errors)

	u, err := users.Login(ctx, "ana@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Fullname)
	assert.Equal(t, []string{"welcome back Ana"}, notifier.successes)

	require.NoError(t, users.CheckAuth(ctx))
	assert.True(t, users.Snapshot().IsAuthenticated)

	require.NoError(t, users.Logout(ctx))
	assert.False(t, users.Snapshot().IsAuthenticated)
	require.NoError(t, users.CheckAuth(ctx))
	assert.Nil(t, users.Snapshot().User)
}

func TestOrderStore_CheckoutAndStatus(t *testing.T) {
	_, c := newFake(t)
	orders := NewOrderStore(c, newPersister(t), nil)
	ctx := context.Background()

	items := []*entities.CartItem{{RecipeID: uuid.New(), Name: "Pizza", Image: "img", Price: 100, Quantity: 2}}
	delivery := domain.DeliveryDetailsRequest{Name: "Ana", Email: "ana@example.com", Address: "Jl. Merdeka 1", City: "Jakarta"}

	created, err := orders.Checkout(ctx, uuid.NewString(), items, delivery)
	require.NoError(t, err)
	assert.Equal(t, 200.0, created.TotalAmount)
	assert.Equal(t, domain.OrderStatusPending, created.Status)
	require.Len(t, orders.Snapshot().Orders, 1)

	_, err = orders.UpdateStatus(ctx, created.ID.String(), "teleported")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, domain.ErrInvalidOrderStatus.Error(), apiErr.Detail)

	updated, err := orders.UpdateStatus(ctx, created.ID.String(), domain.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, updated.Status)
	assert.Equal(t, 200.0, updated.TotalAmount)
	assert.Equal(t, domain.OrderStatusConfirmed, orders.Snapshot().Orders[0].Status)

	var buf bytes.Buffer
	require.NoError(t, orders.Export(ctx, &buf))
	assert.Equal(t, "PK-xlsx", buf.String())
}

func TestAPIError_Message(t *testing.T) {
	err := decodeError(http.StatusNotFound, []byte(`{"success":false,"message":"failed to get category","error":"category not found"}`))
	assert.Equal(t, "404: failed to get category: category not found", err.Error())

	err = decodeError(http.StatusBadGateway, []byte(`<html>bad gateway</html>`))
	assert.Equal(t, "502: Bad Gateway", err.Error())
}
