package models

type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	Duration    string  `json:"duration"` // e.g. "2-3 hours"
	Image       string  `json:"image,omitempty"`
	IsActive    bool    `json:"is_active"`
}
