package midtrans

import (
	"FoodHub/domain"
	"FoodHub/entities"
	"FoodHub/internal/utils"
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"
)

const maxItemNameLength = 50

type (
	MidtransService interface {
		Enabled() bool
		CreateTransaction(ctx context.Context, order *entities.Order) (*domain.PaymentSession, error)
		CheckTransaction(ctx context.Context, orderID string) (string, error)
	}

	midtransService struct {
		snapClient snap.Client
		coreClient coreapi.Client
		enabled    bool
	}
)

// NewMidtransService reads SERVER_KEY and IsProd. Without a server key the
// service is disabled and checkout skips the payment session.
func NewMidtransService() MidtransService {
	serverKey := utils.GetConfig("SERVER_KEY")
	s := &midtransService{enabled: serverKey != ""}
	if !s.enabled {
		log.Warn("SERVER_KEY not set, payments disabled")
		return s
	}

	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}
	s.snapClient.New(serverKey, env)
	s.coreClient.New(serverKey, env)
	return s
}

func (s *midtransService) Enabled() bool {
	return s.enabled
}

func (s *midtransService) CreateTransaction(_ context.Context, order *entities.Order) (*domain.PaymentSession, error) {
	if !s.enabled {
		return nil, domain.ErrPaymentsDisabled
	}

	items, gross := ItemDetails(order.CartItems)
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.ID.String(),
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: order.DeliveryDetails.Name,
			Email: order.DeliveryDetails.Email,
			BillAddr: &midtrans.CustomerAddress{
				FName:   order.DeliveryDetails.Name,
				Address: order.DeliveryDetails.Address,
				City:    order.DeliveryDetails.City,
			},
		},
		Items: &items,
	}

	resp, midtransErr := s.snapClient.CreateTransaction(req)
	if midtransErr != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentFailed, midtransErr.GetMessage())
	}
	return &domain.PaymentSession{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

// CheckTransaction asks Midtrans for the authoritative state of orderID and
// maps it to a payment status. The notification body itself is not trusted.
func (s *midtransService) CheckTransaction(_ context.Context, orderID string) (string, error) {
	if !s.enabled {
		return "", domain.ErrPaymentsDisabled
	}

	resp, midtransErr := s.coreClient.CheckTransaction(orderID)
	if midtransErr != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrPaymentNotVerified, midtransErr.GetMessage())
	}
	if resp.OrderID != "" && resp.OrderID != orderID {
		return "", domain.ErrPaymentNotVerified
	}
	return PaymentStatus(resp.TransactionStatus, resp.FraudStatus), nil
}

// ItemDetails converts the order snapshot into whole-unit Midtrans items.
// The gross amount is the sum of the rounded lines so Midtrans accepts it.
func ItemDetails(lines []entities.OrderItem) ([]midtrans.ItemDetails, int64) {
	items := make([]midtrans.ItemDetails, 0, len(lines))
	gross := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromFloat(line.Price).Round(0)
		gross = gross.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))

		name := line.Name
		if r := []rune(name); len(r) > maxItemNameLength {
			name = string(r[:maxItemNameLength])
		}
		items = append(items, midtrans.ItemDetails{
			ID:    line.RecipeID,
			Name:  name,
			Price: price.IntPart(),
			Qty:   int32(line.Quantity),
		})
	}
	return items, gross.IntPart()
}

func PaymentStatus(transactionStatus, fraudStatus string) string {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return domain.PaymentStatusPending
		}
		return domain.PaymentStatusPaid
	case "settlement":
		return domain.PaymentStatusPaid
	case "pending":
		return domain.PaymentStatusPending
	case "deny", "cancel", "failure":
		return domain.PaymentStatusFailed
	case "expire":
		return domain.PaymentStatusExpired
	default:
		return domain.PaymentStatusPending
	}
}
