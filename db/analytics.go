package db

import (
	"sort"

	"github.com/fixmaster/fixmaster-core/models"
)

// Analytics are derived values recomputed from the collections on every
// call. They are never stored back, so the collections stay the single
// source of truth.

type CustomerAnalytics struct {
	TotalBookings     int      `json:"total_bookings"`
	CompletedBookings int      `json:"completed_bookings"`
	PendingBookings   int      `json:"pending_bookings"`
	TotalSpent        float64  `json:"total_spent"`
	FavoriteServices  []string `json:"favorite_services"`
}

type ProviderAnalytics struct {
	TotalBookings int     `json:"total_bookings"`
	CompletedJobs int     `json:"completed_jobs"`
	PendingJobs   int     `json:"pending_jobs"`
	TotalEarnings float64 `json:"total_earnings"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

func (s *Store) GetCustomerAnalytics(customerID string) CustomerAnalytics {
	bookings := s.ListBookingsByCustomerID(customerID)

	a := CustomerAnalytics{TotalBookings: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingCompleted:
			a.CompletedBookings++
			a.TotalSpent += realizedCost(b)
		case models.BookingPending:
			a.PendingBookings++
		}
	}
	a.FavoriteServices = s.mostBookedServices(bookings, 3)
	return a
}

func (s *Store) GetProviderAnalytics(providerID string) ProviderAnalytics {
	bookings := s.ListBookingsByProviderID(providerID)

	a := ProviderAnalytics{TotalBookings: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingCompleted:
			a.CompletedJobs++
			a.TotalEarnings += realizedCost(b)
		case models.BookingPending:
			a.PendingJobs++
		}
	}

	reviews := s.ListReviewsByProviderID(providerID)
	a.TotalReviews = len(reviews)
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		a.AverageRating = float64(sum) / float64(len(reviews))
	}
	return a
}

// realizedCost is the final cost once set, the estimate until then.
func realizedCost(b models.Booking) float64 {
	if b.FinalCost != nil {
		return *b.FinalCost
	}
	return b.EstimatedCost
}

// mostBookedServices returns the names of the top n most frequently
// booked services, ties kept in first-encountered order.
func (s *Store) mostBookedServices(bookings []models.Booking, n int) []string {
	type serviceCount struct {
		id    string
		count int
	}

	counts := make(map[string]int)
	var order []serviceCount
	for _, b := range bookings {
		if counts[b.ServiceID] == 0 {
			order = append(order, serviceCount{id: b.ServiceID})
		}
		counts[b.ServiceID]++
	}
	for i := range order {
		order[i].count = counts[order[i].id]
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	if len(order) > n {
		order = order[:n]
	}

	names := make([]string, 0, len(order))
	for _, sc := range order {
		svc, err := s.FindServiceByID(sc.id)
		if err != nil {
			names = append(names, "Unknown Service")
			continue
		}
		names = append(names, svc.Name)
	}
	return names
}
