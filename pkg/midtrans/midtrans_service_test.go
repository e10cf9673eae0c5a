package midtrans

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemDetails(t *testing.T) {
	items, gross := ItemDetails([]entities.OrderItem{
		{RecipeID: "r1", Name: "Margherita", Price: 100, Quantity: 2},
		{RecipeID: "r2", Name: "Garlic Bread With An Extremely Long Name That Exceeds Fifty", Price: 24.6, Quantity: 1},
	})

	assert.Equal(t, int64(225), gross)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(100), items[0].Price)
	assert.Equal(t, int32(2), items[0].Qty)
	assert.Equal(t, int64(25), items[1].Price)
	assert.Len(t, items[1].Name, maxItemNameLength)
}

func TestPaymentStatus(t *testing.T) {
	cases := map[[2]string]string{
		{"capture", "accept"}:    domain.PaymentStatusPaid,
		{"capture", "challenge"}: domain.PaymentStatusPending,
		{"settlement", ""}:       domain.PaymentStatusPaid,
		{"pending", ""}:          domain.PaymentStatusPending,
		{"deny", ""}:             domain.PaymentStatusFailed,
		{"cancel", ""}:           domain.PaymentStatusFailed,
		{"expire", ""}:           domain.PaymentStatusExpired,
	}
	for in, want := range cases {
		assert.Equal(t, want, PaymentStatus(in[0], in[1]), in)
	}
}

func TestDisabledService(t *testing.T) {
	s := &midtransService{}
	assert.False(t, s.Enabled())

	_, err := s.CreateTransaction(context.Background(), &entities.Order{})
	assert.ErrorIs(t, err, domain.ErrPaymentsDisabled)

	_, err = s.CheckTransaction(context.Background(), "id")
	assert.ErrorIs(t, err, domain.ErrPaymentsDisabled)
}
