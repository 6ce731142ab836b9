package models

import "time"

// PaymentRequest describes a charge to be taken before a paid session is
// reserved.
type PaymentRequest struct {
	ClientID        string  `json:"clientId"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	PaymentMethodID string  `json:"paymentMethodId"` // Stripe payment method reference
}

// Invoice records the outcome of a charge.
type Invoice struct {
	InvoiceID string    `bson:"invoice_id" json:"invoiceId"`
	ClientID  string    `bson:"client_id" json:"clientId"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	PaymentID string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"` // Stripe PaymentIntent id
	Status    string    `bson:"status" json:"status"`                            // "paid", "pending" or "refunded"
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
