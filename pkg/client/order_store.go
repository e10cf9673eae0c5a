package client

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"context"
	"io"
	"net/http"
	"net/url"
)

type OrderState struct {
	Orders    []*entities.Order `json:"orders"`
	AllOrders []*entities.Order `json:"allOrders"`
}

type OrderStore struct {
	store[OrderState]
	client *Client
}

func NewOrderStore(client *Client, persist Persister, notifier Notifier) *OrderStore {
	s := &OrderStore{client: client}
	s.setup("orders", persist, notifier)
	return s
}

func (s *OrderStore) Sync(ctx context.Context) error {
	if err := s.restore(); err != nil {
		return err
	}
	return s.Fetch(ctx)
}

// Fetch refreshes the caller's own orders.
func (s *OrderStore) Fetch(ctx context.Context) error {
	var out struct {
		Orders []*entities.Order `json:"orders"`
	}
	if _, err := s.client.doJSON(ctx, http.MethodGet, "/api/v1/order/orders", nil, &out); err != nil {
		return s.fail(err)
	}
	return s.update(func(st *OrderState) { st.Orders = out.Orders })
}

// FetchAll refreshes every order. Admin only.
func (s *OrderStore) FetchAll(ctx context.Context) error {
	var out struct {
		Orders []*entities.Order `json:"orders"`
	}
	if _, err := s.client.doJSON(ctx, http.MethodGet, "/api/v1/order/admin/orders", nil, &out); err != nil {
		return s.fail(err)
	}
	return s.update(func(st *OrderState) { st.AllOrders = out.Orders })
}

// Checkout places an order for the given cart lines. When payments are on
// the returned order carries the payment page URL.
func (s *OrderStore) Checkout(ctx context.Context, categoryID string, items []*entities.CartItem, delivery domain.DeliveryDetailsRequest) (*entities.Order, error) {
	req := domain.CheckoutRequest{
		CategoryID:      categoryID,
		CartItems:       make([]domain.CheckoutItemRequest, 0, len(items)),
		DeliveryDetails: delivery,
	}
	for _, item := range items {
		req.CartItems = append(req.CartItems, domain.CheckoutItemRequest{
			RecipeID: item.RecipeID.String(),
			Name:     item.Name,
			Image:    item.Image,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	var out struct {
		Order *entities.Order `json:"order"`
	}
	msg, err := s.client.doJSON(ctx, http.MethodPost, "/api/v1/order/orders", req, &out)
	if err != nil {
		return nil, s.fail(err)
	}
	s.ok(msg)

	err = s.update(func(st *OrderState) {
		st.Orders = append([]*entities.Order{out.Order}, st.Orders...)
	})
	return out.Order, err
}

func (s *OrderStore) UpdateStatus(ctx context.Context, orderID, status string) (*entities.Order, error) {
	var out struct {
		Order *entities.Order `json:"order"`
	}
	path := "/api/v1/order/admin/orders/" + url.PathEscape(orderID) + "/status"
	msg, err := s.client.doJSON(ctx, http.MethodPut, path, domain.UpdateOrderStatusRequest{Status: status}, &out)
	if err != nil {
		return nil, s.fail(err)
	}
	s.ok(msg)

	err = s.update(func(st *OrderState) {
		st.Orders = replaceOrder(st.Orders, out.Order)
		st.AllOrders = replaceOrder(st.AllOrders, out.Order)
	})
	return out.Order, err
}

// Export writes the admin spreadsheet of all orders to w.
func (s *OrderStore) Export(ctx context.Context, w io.Writer) error {
	return s.fail(s.client.download(ctx, "/api/v1/order/admin/orders/export", w))
}

func replaceOrder(list []*entities.Order, o *entities.Order) []*entities.Order {
	out := make([]*entities.Order, 0, len(list))
	for _, existing := range list {
		if existing.ID == o.ID {
			existing = o
		}
		out = append(out, existing)
	}
	return out
}
