package main

import (
	"fmt"
	"log"
	"time"

	"github.com/fixmaster/fixmaster-core/config"
	"github.com/fixmaster/fixmaster-core/cron"
	"github.com/fixmaster/fixmaster-core/db"
	"github.com/fixmaster/fixmaster-core/models"
	"github.com/fixmaster/fixmaster-core/services"
)

// Demo walkthrough: a seeded store, a customer booking a service,
// paying for it, and both dashboards reflecting the result.
func main() {
	cfg := config.Load()
	store := db.NewSeeded()

	auth := services.NewAuthService(store)
	bookings := services.NewBookingService(store, cfg.ServiceChargeRate)
	payments := services.NewPaymentService(store, cfg.SettlementDelay)
	dashboards := services.NewDashboardService(store)

	reminders := cron.NewReminderScheduler(store)
	if err := reminders.Start(cfg.ReminderSpec); err != nil {
		log.Fatalf("failed to start reminder scheduler: %v", err)
	}
	defer reminders.Stop()

	// Sign in as the fixture customer.
	customer, err := auth.Login("customer@test.com", "password")
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	fmt.Printf("Logged in as %s (%s)\n", customer.Name, customer.Email)

	// Book a plumbing job with the fixture provider.
	booking, err := bookings.Create(services.CreateBookingInput{
		CustomerID:    customer.ID,
		ProviderID:    "provider-1",
		ServiceID:     "service-2",
		ScheduledDate: time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
		ScheduledTime: "14:00",
		Address:       "House 25, Road 7, Dhanmondi, Dhaka",
		Description:   "Kitchen sink is leaking",
	})
	if err != nil {
		log.Fatalf("booking failed: %v", err)
	}
	fmt.Printf("Booking %s created, estimated cost %.2f\n", booking.ID, booking.EstimatedCost)

	// Pay and wait for the simulated settlement.
	payment, err := payments.Initiate(services.InitiatePaymentInput{
		BookingID: booking.ID,
		Method:    models.MethodMobileBanking,
		Metadata:  map[string]string{"bkash_number": customer.Phone},
	})
	if err != nil {
		log.Fatalf("payment failed: %v", err)
	}
	fmt.Printf("Payment %s is %s\n", payment.ID, payment.Status)

	deadline := time.Now().Add(cfg.SettlementDelay + 5*time.Second)
	for {
		payment, err = store.FindPaymentByID(payment.ID)
		if err != nil {
			log.Fatalf("payment lookup failed: %v", err)
		}
		if payment.Status == models.PaymentCompleted {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("settlement did not arrive in time")
		}
		time.Sleep(100 * time.Millisecond)
	}
	fmt.Printf("Payment settled (%s)\n", payment.TransactionID)

	// Both dashboards now reflect the confirmed booking.
	cd, err := dashboards.Customer(customer.ID)
	if err != nil {
		log.Fatalf("customer dashboard failed: %v", err)
	}
	fmt.Printf("Customer: %d bookings, %d completed, total spent %.2f, favorites %v\n",
		cd.Analytics.TotalBookings, cd.Analytics.CompletedBookings, cd.Analytics.TotalSpent, cd.Analytics.FavoriteServices)

	pd, err := dashboards.Provider("user-3")
	if err != nil {
		log.Fatalf("provider dashboard failed: %v", err)
	}
	fmt.Printf("Provider %s: %d bookings, rating %.1f over %d reviews, earnings %.2f\n",
		pd.Provider.BusinessName, pd.Analytics.TotalBookings, pd.Analytics.AverageRating,
		pd.Analytics.TotalReviews, pd.Analytics.TotalEarnings)
}
