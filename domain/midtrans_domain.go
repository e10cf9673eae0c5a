package domain

import "errors"

const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
	PaymentStatusExpired = "expired"
)

var (
	MessageSuccessPaymentNotification = "payment notification processed"
	MessageFailedPaymentNotification  = "failed to process payment notification"
	MessageFailedCreatePayment        = "failed to create payment"

	ErrPaymentFailed      = errors.New("payment processing failed")
	ErrPaymentNotVerified = errors.New("payment notification could not be verified")
	ErrPaymentsDisabled   = errors.New("payments are not configured")
)

type (
	PaymentSession struct {
		Token       string `json:"token"`
		RedirectURL string `json:"redirectUrl"`
	}

	// MidtransNotification is the subset of the Midtrans HTTP notification body we read.
	MidtransNotification struct {
		OrderID           string `json:"order_id" validate:"required"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
