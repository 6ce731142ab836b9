package payment

import (
	"context"
	"fmt"
	"time"

	"hivewellness/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/refund"
	"go.uber.org/zap"
)

// Processor is the narrow charge/refund contract the booking engine depends
// on. The payment provider's own semantics stay behind this interface.
type Processor interface {
	Charge(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
	Refund(ctx context.Context, invoice *models.Invoice) error
}

// StripeProcessor charges session fees through Stripe PaymentIntents.
type StripeProcessor struct {
	logger *zap.Logger
}

// NewStripeProcessor constructs the production payment processor. The global
// stripe.Key must already be set.
func NewStripeProcessor(logger *zap.Logger) *StripeProcessor {
	return &StripeProcessor{logger: logger}
}

func (p *StripeProcessor) Charge(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %.2f", req.Amount)
	}
	if req.PaymentMethodID == "" {
		return nil, fmt.Errorf("missing payment method")
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		ClientID:  req.ClientID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(req.Amount * 100)),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Confirm:       stripe.Bool(true),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		p.logger.Error("stripe charge failed", zap.String("client", req.ClientID), zap.Error(err))
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.UpdatedAt = time.Now()
	if pi.Status == stripe.PaymentIntentStatusSucceeded {
		inv.Status = "paid"
	}

	p.logger.Info("charge processed",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID),
		zap.String("status", inv.Status))
	return inv, nil
}

func (p *StripeProcessor) Refund(ctx context.Context, invoice *models.Invoice) error {
	if invoice == nil || invoice.PaymentID == "" {
		return fmt.Errorf("invoice has no settled payment to refund")
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(invoice.PaymentID),
	}
	params.Context = ctx

	if _, err := refund.New(params); err != nil {
		p.logger.Error("stripe refund failed", zap.String("invoice", invoice.InvoiceID), zap.Error(err))
		return fmt.Errorf("refund failed: %w", err)
	}

	invoice.Status = "refunded"
	invoice.UpdatedAt = time.Now()
	p.logger.Info("refund processed", zap.String("invoice", invoice.InvoiceID))
	return nil
}
