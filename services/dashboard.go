package services

import (
	"errors"
	"fmt"

	"github.com/fixmaster/fixmaster-core/db"
	"github.com/fixmaster/fixmaster-core/models"
)

var ErrNotAProvider = errors.New("user has no provider profile")

// DashboardService assembles the per-user reads the dashboards render.
// Each field is an independent read of the store at call time; there is
// no cross-field consistency guarantee.
type DashboardService struct {
	store *db.Store
}

func NewDashboardService(store *db.Store) *DashboardService {
	return &DashboardService{store: store}
}

type CustomerDashboard struct {
	User          models.User           `json:"user"`
	Bookings      []models.Booking      `json:"bookings"`
	Payments      []models.Payment      `json:"payments"`
	Notifications []models.Notification `json:"notifications"`
	Analytics     db.CustomerAnalytics  `json:"analytics"`
}

type ProviderDashboard struct {
	User          models.User           `json:"user"`
	Provider      models.Provider       `json:"provider"`
	Bookings      []models.Booking      `json:"bookings"`
	Reviews       []models.Review       `json:"reviews"`
	Notifications []models.Notification `json:"notifications"`
	Analytics     db.ProviderAnalytics  `json:"analytics"`
}

func (ds *DashboardService) Customer(userID string) (CustomerDashboard, error) {
	user, err := ds.store.FindUserByID(userID)
	if err != nil {
		return CustomerDashboard{}, fmt.Errorf("user %s: %w", userID, err)
	}
	user.Password = ""

	return CustomerDashboard{
		User:          user,
		Bookings:      ds.store.ListBookingsByCustomerID(userID),
		Payments:      ds.store.ListPaymentsByCustomerID(userID),
		Notifications: ds.store.ListNotificationsByUserID(userID),
		Analytics:     ds.store.GetCustomerAnalytics(userID),
	}, nil
}

func (ds *DashboardService) Provider(userID string) (ProviderDashboard, error) {
	user, err := ds.store.FindUserByID(userID)
	if err != nil {
		return ProviderDashboard{}, fmt.Errorf("user %s: %w", userID, err)
	}
	user.Password = ""

	provider, err := ds.store.FindProviderByUserID(userID)
	if err != nil {
		return ProviderDashboard{}, ErrNotAProvider
	}

	return ProviderDashboard{
		User:          user,
		Provider:      provider,
		Bookings:      ds.store.ListBookingsByProviderID(provider.ID),
		Reviews:       ds.store.ListReviewsByProviderID(provider.ID),
		Notifications: ds.store.ListNotificationsByUserID(userID),
		Analytics:     ds.store.GetProviderAnalytics(provider.ID),
	}, nil
}

// MarkNotificationRead flips a notification's read flag.
func (ds *DashboardService) MarkNotificationRead(id string) error {
	return ds.store.MarkNotificationRead(id)
}
