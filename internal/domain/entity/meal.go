package entity

import "time"

// Meal is a catalog entry. Likes is a set of user emails; Reviews is append-only in insertion order.
type Meal struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Category         string    `json:"category"`
	Price            float64   `json:"price"`
	Description      string    `json:"description,omitempty"`
	Image            string    `json:"image,omitempty"`
	Ingredients      []string  `json:"ingredients,omitempty"`
	DistributorEmail string    `json:"distributorEmail,omitempty"`
	Rating           float64   `json:"rating"`
	Likes            []string  `json:"likes"`
	Reviews          []Review  `json:"reviews"`
	PostedAt         time.Time `json:"postedAt"`
}

// LikeCount returns the number of distinct users who liked the meal.
func (m *Meal) LikeCount() int {
	return len(m.Likes)
}

// ReviewCount returns the number of reviews on the meal.
func (m *Meal) ReviewCount() int {
	return len(m.Reviews)
}

// Review is embedded in a Meal.
type Review struct {
	AuthorEmail string    `json:"authorEmail"`
	AuthorName  string    `json:"authorName"`
	Text        string    `json:"text"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserReview is the projection of a single review joined with its meal.
type UserReview struct {
	MealID    string `json:"mealId"`
	MealTitle string `json:"mealTitle"`
	LikeCount int    `json:"likeCount"`
	Review    Review `json:"review"`
}

// MealFilter narrows catalog listings. Zero values disable a criterion.
type MealFilter struct {
	Category string
	Search   string
	MinPrice float64
	MaxPrice float64
	Page     Page
}
