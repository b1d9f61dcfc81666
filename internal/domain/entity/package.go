package entity

// Package is a subscription tier that can be purchased.
type Package struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Level    int      `json:"level"`
	Benefits []string `json:"benefits,omitempty"`
}
