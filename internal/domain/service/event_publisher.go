package service

import (
	"context"
	"time"
)

// Event types published by the application.
const (
	EventPurchaseCompleted    = "purchase.completed"
	EventMealRequestSubmitted = "meal_request.submitted"
)

// Event is a domain event sent to the message bus.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// PurchaseCompletedData is the payload of EventPurchaseCompleted.
type PurchaseCompletedData struct {
	Email         string `json:"email"`
	PackageName   string `json:"package"`
	Amount        int64  `json:"amount"`
	TransactionID string `json:"transactionId"`
	Created       bool   `json:"created"`
}

// MealRequestSubmittedData is the payload of EventMealRequestSubmitted.
type MealRequestSubmittedData struct {
	RequestID string `json:"requestId"`
	MealID    string `json:"mealId"`
	Email     string `json:"email"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
