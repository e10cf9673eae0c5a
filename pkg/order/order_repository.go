package order

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error)
		GetAllOrders(ctx context.Context) ([]*entities.Order, error)
		UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error
		UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus string) error
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error
}

func (r *orderRepository) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("User").Preload("Category")
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	var order entities.Order
	if err := r.withRefs(ctx).Where("id = ?", parsed).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.withRefs(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetAllOrders(ctx context.Context) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.withRefs(ctx).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus overwrites the status unconditionally.
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.updateColumn(ctx, id, "status", status)
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus string) error {
	return r.updateColumn(ctx, id, "payment_status", paymentStatus)
}

func (r *orderRepository) updateColumn(ctx context.Context, id uuid.UUID, column, value string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Order{}).
		Where("id = ?", id).
		Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
