package order

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"FoodHub/pkg/category"
	"FoodHub/pkg/midtrans"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, userID string, req domain.CheckoutRequest) (*entities.Order, error)
		GetOrders(ctx context.Context, userID string) ([]*entities.Order, error)
		GetAllOrders(ctx context.Context) ([]*entities.Order, error)
		UpdateOrderStatus(ctx context.Context, id string, req domain.UpdateOrderStatusRequest) (*entities.Order, error)
		ExportOrders(ctx context.Context, w io.Writer) error
		HandlePaymentNotification(ctx context.Context, notification domain.MidtransNotification) (*entities.Order, error)
	}

	orderService struct {
		orderRepository    OrderRepository
		categoryRepository category.CategoryRepository
		midtransService    midtrans.MidtransService
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	categoryRepository category.CategoryRepository,
	midtransService midtrans.MidtransService,
) OrderService {
	return &orderService{
		orderRepository:    orderRepository,
		categoryRepository: categoryRepository,
		midtransService:    midtransService,
	}
}

// CreateOrder snapshots the submitted lines. Prices are taken as sent and
// never compared with the catalog.
func (s *orderService) CreateOrder(ctx context.Context, userID string, req domain.CheckoutRequest) (*entities.Order, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	if len(req.CartItems) == 0 {
		return nil, domain.ErrEmptyCart
	}

	cat, err := s.categoryRepository.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.OrderItem, 0, len(req.CartItems))
	total := decimal.Zero
	for _, line := range req.CartItems {
		if line.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		items = append(items, entities.OrderItem{
			RecipeID: line.RecipeID,
			Name:     line.Name,
			Image:    line.Image,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
		total = total.Add(decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	order := &entities.Order{
		ID:         uuid.New(),
		UserID:     uid,
		CategoryID: cat.ID,
		DeliveryDetails: entities.DeliveryDetails{
			Name:    req.DeliveryDetails.Name,
			Email:   req.DeliveryDetails.Email,
			Address: req.DeliveryDetails.Address,
			City:    req.DeliveryDetails.City,
		},
		CartItems:     items,
		TotalAmount:   total.InexactFloat64(),
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}

	if s.midtransService.Enabled() {
		session, err := s.midtransService.CreateTransaction(ctx, order)
		if err != nil {
			return nil, err
		}
		order.PaymentToken = session.Token
		order.PaymentURL = session.RedirectURL
		order.PaymentStatus = domain.PaymentStatusPending
	}

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	order.Category = cat
	return order, nil
}

func (s *orderService) GetOrders(ctx context.Context, userID string) ([]*entities.Order, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	return s.orderRepository.GetOrdersByUser(ctx, uid)
}

func (s *orderService) GetAllOrders(ctx context.Context) ([]*entities.Order, error) {
	return s.orderRepository.GetAllOrders(ctx)
}

// UpdateOrderStatus accepts any of the five statuses from any current
// status, including moves backwards.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, req domain.UpdateOrderStatusRequest) (*entities.Order, error) {
	if !domain.IsValidOrderStatus(req.Status) {
		return nil, domain.ErrInvalidOrderStatus
	}

	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepository.UpdateOrderStatus(ctx, order.ID, req.Status); err != nil {
		return nil, err
	}
	order.Status = req.Status
	return order, nil
}

func (s *orderService) HandlePaymentNotification(ctx context.Context, notification domain.MidtransNotification) (*entities.Order, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, notification.OrderID)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := s.midtransService.CheckTransaction(ctx, order.ID.String())
	if err != nil {
		return nil, err
	}
	if err := s.orderRepository.UpdatePaymentStatus(ctx, order.ID, paymentStatus); err != nil {
		return nil, err
	}
	order.PaymentStatus = paymentStatus
	return order, nil
}

var exportHeaders = []string{
	"Order ID", "Customer", "Email", "Category", "Items",
	"Total Amount", "Status", "Payment Status", "Address", "City", "Created At",
}

// ExportOrders writes every order as one row of an .xlsx workbook.
func (s *orderService) ExportOrders(ctx context.Context, w io.Writer) error {
	orders, err := s.orderRepository.GetAllOrders(ctx)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	for _, h := range exportHeaders {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.ID.String())
		row.AddCell().SetValue(o.DeliveryDetails.Name)
		row.AddCell().SetValue(o.DeliveryDetails.Email)
		categoryName := ""
		if o.Category != nil {
			categoryName = o.Category.Name
		}
		row.AddCell().SetValue(categoryName)
		row.AddCell().SetValue(describeItems(o.CartItems))
		row.AddCell().SetValue(o.TotalAmount)
		row.AddCell().SetValue(o.Status)
		row.AddCell().SetValue(o.PaymentStatus)
		row.AddCell().SetValue(o.DeliveryDetails.Address)
		row.AddCell().SetValue(o.DeliveryDetails.City)
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return file.Write(w)
}

func describeItems(items []entities.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, i := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", i.Name, i.Quantity))
	}
	return strings.Join(parts, "; ")
}
