package entity

import "time"

// MealRequestStatus is the admin-owned workflow state of a request.
type MealRequestStatus string

const (
	MealRequestPending   MealRequestStatus = "pending"
	MealRequestServed    MealRequestStatus = "served"
	MealRequestCancelled MealRequestStatus = "cancelled"
)

// IsValid checks if the status is a known value.
func (s MealRequestStatus) IsValid() bool {
	switch s {
	case MealRequestPending, MealRequestServed, MealRequestCancelled:
		return true
	default:
		return false
	}
}

// MealRequest is a user's request to be served a meal.
type MealRequest struct {
	ID          string            `json:"id"`
	MealID      string            `json:"mealId"`
	UserEmail   string            `json:"userEmail"`
	UserName    string            `json:"userName"`
	Status      MealRequestStatus `json:"status"`
	RequestedAt time.Time         `json:"requestedAt"`
}

// MealRequestView joins a request with the current state of its meal.
type MealRequestView struct {
	RequestID   string            `json:"requestId"`
	MealID      string            `json:"mealId"`
	UserEmail   string            `json:"userEmail"`
	UserName    string            `json:"userName"`
	Status      MealRequestStatus `json:"status"`
	RequestedAt time.Time         `json:"requestedAt"`
	Title       string            `json:"title"`
	LikeCount   int               `json:"likeCount"`
	ReviewCount int               `json:"reviewCount"`
}

// MealRequestKey identifies a request for deduplication. An empty UserEmail matches any user.
type MealRequestKey struct {
	MealID    string
	UserEmail string
}

// MealRequestFilter narrows admin listings.
type MealRequestFilter struct {
	Status MealRequestStatus
	Search string
	Page   Page
}
