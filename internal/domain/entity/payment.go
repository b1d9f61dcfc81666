package entity

import "time"

// Payment is the ledger entry of a user's latest package purchase. At most one exists per UserEmail.
type Payment struct {
	ID            string    `json:"id"`
	UserEmail     string    `json:"userEmail"`
	PackageName   string    `json:"packageName"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	TransactionID string    `json:"transactionId"`
	PaidAt        time.Time `json:"paidAt"`
}

// PaymentRecord is the outcome of applying a purchase.
type PaymentRecord struct {
	Payment *Payment `json:"payment"`

	// Created is false when an earlier purchase was overwritten.
	Created bool `json:"created"`
}

// PaymentIntent is a provider-side charge intent.
type PaymentIntent struct {
	ID           string `json:"id,omitempty"`
	ClientSecret string `json:"clientSecret"`
	Provider     string `json:"provider"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}
