package models

// Provider is the business profile linked one-to-one to a User of type
// provider. Rating and TotalReviews are seeded display values; the
// authoritative numbers come from the analytics projections.
type Provider struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	BusinessName string   `json:"business_name"`
	Specialties  []string `json:"specialties"`
	Experience   int      `json:"experience"` // years
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"total_reviews"`
	Verified     bool     `json:"verified"`
	Availability []string `json:"availability"` // weekday names
	ServiceArea  []string `json:"service_area"`
	PriceRange   string   `json:"price_range,omitempty"`
	Description  string   `json:"description,omitempty"`
	TotalJobs    int      `json:"total_jobs"`
	ResponseTime string   `json:"response_time,omitempty"`
	Location     string   `json:"location,omitempty"`
}
