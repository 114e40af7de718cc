package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fixmaster/fixmaster-core/models"
)

// Seed loads the fixture catalog so dashboards have data to show on a
// fresh process. Fixture ids are stable so records can reference each
// other; ids created at runtime never collide with them.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, fixtureUsers()...)
	s.services = append(s.services, fixtureServices()...)
	s.providers = append(s.providers, fixtureProviders()...)
	s.bookings = append(s.bookings, fixtureBookings()...)
	s.payments = append(s.payments, fixturePayments()...)
	s.reviews = append(s.reviews, fixtureReviews()...)
	s.notifications = append(s.notifications, fixtureNotifications()...)

	log.Printf("store seeded: %d users, %d services, %d providers, %d bookings",
		len(s.users), len(s.services), len(s.providers), len(s.bookings))
}

func fixtureTime(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func hashPassword(plain string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash fixture password: %v", err)
	}
	return string(hashed)
}

func fixtureUsers() []models.User {
	created := fixtureTime(2024, time.January, 15, 10, 0)
	return []models.User{
		{
			ID:        "user-1",
			Name:      "Ahmed Rahman",
			Email:     "customer@test.com",
			Password:  hashPassword("password"),
			Type:      models.UserTypeCustomer,
			Phone:     "+8801712345678",
			Address:   "Dhanmondi, Dhaka",
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:        "user-2",
			Name:      "Fatima Khan",
			Email:     "fatima@example.com",
			Password:  hashPassword("password123"),
			Type:      models.UserTypeCustomer,
			Phone:     "+8801812345678",
			Address:   "Gulshan, Dhaka",
			CreatedAt: fixtureTime(2024, time.January, 20, 10, 0),
			UpdatedAt: fixtureTime(2024, time.January, 20, 10, 0),
		},
		{
			ID:        "user-3",
			Name:      "Mohammad Ali",
			Email:     "provider@test.com",
			Password:  hashPassword("password"),
			Type:      models.UserTypeProvider,
			Phone:     "+8801912345678",
			Address:   "Uttara, Dhaka",
			CreatedAt: fixtureTime(2024, time.January, 10, 10, 0),
			UpdatedAt: fixtureTime(2024, time.January, 10, 10, 0),
		},
		{
			ID:        "user-4",
			Name:      "Rashida Begum",
			Email:     "rashida@example.com",
			Password:  hashPassword("password123"),
			Type:      models.UserTypeProvider,
			Phone:     "+8801612345678",
			Address:   "Mirpur, Dhaka",
			CreatedAt: fixtureTime(2024, time.January, 12, 10, 0),
			UpdatedAt: fixtureTime(2024, time.January, 12, 10, 0),
		},
	}
}

func fixtureServices() []models.Service {
	return []models.Service{
		{
			ID:          "service-1",
			Name:        "AC Repair & Maintenance",
			Category:    "Appliance Repair",
			Description: "Professional air conditioning repair and maintenance services",
			BasePrice:   1500,
			Duration:    "2-3 hours",
			IsActive:    true,
		},
		{
			ID:          "service-2",
			Name:        "Plumbing Services",
			Category:    "Home Repair",
			Description: "Complete plumbing solutions including leak repair and pipe installation",
			BasePrice:   800,
			Duration:    "1-2 hours",
			IsActive:    true,
		},
		{
			ID:          "service-3",
			Name:        "Electrical Repair",
			Category:    "Home Repair",
			Description: "Electrical wiring, socket installation, and circuit repair",
			BasePrice:   1000,
			Duration:    "1-3 hours",
			IsActive:    true,
		},
		{
			ID:          "service-4",
			Name:        "House Cleaning",
			Category:    "Cleaning",
			Description: "Deep cleaning services for homes and apartments",
			BasePrice:   2000,
			Duration:    "3-4 hours",
			IsActive:    true,
		},
	}
}

func fixtureProviders() []models.Provider {
	return []models.Provider{
		{
			ID:           "provider-1",
			UserID:       "user-3",
			BusinessName: "Ali Electronics",
			Specialties:  []string{"AC Repair", "Electrical Work", "Appliance Repair"},
			Experience:   8,
			Rating:       4.8,
			TotalReviews: 156,
			Verified:     true,
			Availability: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			ServiceArea:  []string{"Dhanmondi", "Gulshan", "Banani", "Uttara"},
			PriceRange:   "৳800 - ৳3000",
			Description:  "Expert in electrical repairs and AC maintenance with 8 years of experience.",
			TotalJobs:    234,
			ResponseTime: "30 minutes",
			Location:     "Uttara, Dhaka",
		},
		{
			ID:           "provider-2",
			UserID:       "user-4",
			BusinessName: "Rashida Home Services",
			Specialties:  []string{"House Cleaning", "Deep Cleaning", "Office Cleaning"},
			Experience:   5,
			Rating:       4.6,
			TotalReviews: 89,
			Verified:     true,
			Availability: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			ServiceArea:  []string{"Mirpur", "Dhanmondi", "Mohammadpur"},
			PriceRange:   "৳1500 - ৳5000",
			Description:  "Professional cleaning services with attention to detail and customer satisfaction.",
			TotalJobs:    112,
			ResponseTime: "45 minutes",
			Location:     "Mirpur, Dhaka",
		},
	}
}

func fixtureBookings() []models.Booking {
	finalCost := 1800.0
	completedAt := fixtureTime(2024, time.January, 25, 14, 0)
	return []models.Booking{
		{
			ID:            "booking-1",
			CustomerID:    "user-1",
			ProviderID:    "provider-1",
			ServiceID:     "service-1",
			Status:        models.BookingCompleted,
			ScheduledDate: "2024-01-25",
			ScheduledTime: "10:00",
			Address:       "House 25, Road 7, Dhanmondi, Dhaka",
			Description:   "AC not cooling properly, needs inspection and repair",
			EstimatedCost: 2000,
			FinalCost:     &finalCost,
			PaymentID:     "payment-1",
			CreatedAt:     fixtureTime(2024, time.January, 20, 10, 0),
			UpdatedAt:     completedAt,
			CompletedAt:   &completedAt,
		},
		{
			ID:            "booking-2",
			CustomerID:    "user-2",
			ProviderID:    "provider-2",
			ServiceID:     "service-4",
			Status:        models.BookingConfirmed,
			ScheduledDate: "2024-02-15",
			ScheduledTime: "09:00",
			Address:       "Apartment 4B, Gulshan Avenue, Dhaka",
			Description:   "Deep cleaning for 3-bedroom apartment",
			EstimatedCost: 3500,
			CreatedAt:     fixtureTime(2024, time.February, 10, 9, 0),
			UpdatedAt:     fixtureTime(2024, time.February, 10, 9, 0),
		},
		{
			ID:            "booking-3",
			CustomerID:    "user-1",
			ProviderID:    "provider-1",
			ServiceID:     "service-3",
			Status:        models.BookingPending,
			ScheduledDate: "2024-02-20",
			ScheduledTime: "14:00",
			Address:       "House 25, Road 7, Dhanmondi, Dhaka",
			Description:   "Install new electrical outlets in living room",
			EstimatedCost: 1200,
			CreatedAt:     fixtureTime(2024, time.February, 12, 16, 0),
			UpdatedAt:     fixtureTime(2024, time.February, 12, 16, 0),
		},
	}
}

func fixturePayments() []models.Payment {
	completedAt := fixtureTime(2024, time.January, 25, 14, 5)
	return []models.Payment{
		{
			ID:            "payment-1",
			BookingID:     "booking-1",
			CustomerID:    "user-1",
			ProviderID:    "provider-1",
			Amount:        1800,
			Method:        models.MethodMobileBanking,
			Status:        models.PaymentCompleted,
			TransactionID: "TXN123456789",
			Metadata: map[string]string{
				"bkash_number": "01712345678",
				"reference":    "AC Repair Payment",
			},
			CreatedAt:   fixtureTime(2024, time.January, 25, 14, 0),
			CompletedAt: &completedAt,
		},
	}
}

func fixtureReviews() []models.Review {
	return []models.Review{
		{
			ID:         "review-1",
			BookingID:  "booking-1",
			CustomerID: "user-1",
			ProviderID: "provider-1",
			Rating:     5,
			Comment:    "Excellent service! Very professional and fixed the AC quickly.",
			CreatedAt:  fixtureTime(2024, time.January, 26, 10, 0),
		},
	}
}

func fixtureNotifications() []models.Notification {
	return []models.Notification{
		{
			ID:        "notif-1",
			UserID:    "user-1",
			Title:     "Booking Confirmed",
			Message:   "Your AC repair booking has been confirmed for Jan 25, 10:00 AM",
			Type:      models.NotificationBooking,
			Read:      false,
			CreatedAt: fixtureTime(2024, time.January, 20, 11, 0),
		},
		{
			ID:        "notif-2",
			UserID:    "user-3",
			Title:     "New Booking Request",
			Message:   "New electrical repair booking request from Ahmed Rahman",
			Type:      models.NotificationBooking,
			Read:      false,
			CreatedAt: fixtureTime(2024, time.February, 12, 16, 5),
		},
	}
}
