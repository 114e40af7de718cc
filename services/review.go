package services

import (
	"errors"
	"fmt"

	"github.com/fixmaster/fixmaster-core/db"
	"github.com/fixmaster/fixmaster-core/models"
)

var (
	ErrAlreadyReviewed     = errors.New("booking has already been reviewed")
	ErrBookingNotCompleted = errors.New("only completed bookings can be reviewed")
)

type ReviewService struct {
	store *db.Store
}

func NewReviewService(store *db.Store) *ReviewService {
	return &ReviewService{store: store}
}

type SubmitReviewInput struct {
	BookingID string `validate:"required"`
	Rating    int    `validate:"required,min=1,max=5"`
	Comment   string
}

// Submit records a review for a completed booking. One review per
// booking; a second submission is rejected.
func (rs *ReviewService) Submit(in SubmitReviewInput) (models.Review, error) {
	if err := models.Validate.Struct(in); err != nil {
		return models.Review{}, fmt.Errorf("invalid review: %w", err)
	}

	booking, err := rs.store.FindBookingByID(in.BookingID)
	if err != nil {
		return models.Review{}, fmt.Errorf("booking %s: %w", in.BookingID, err)
	}
	if booking.Status != models.BookingCompleted {
		return models.Review{}, ErrBookingNotCompleted
	}
	if _, err := rs.store.FindReviewByBookingID(booking.ID); err == nil {
		return models.Review{}, ErrAlreadyReviewed
	}

	review := rs.store.CreateReview(models.Review{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		ProviderID: booking.ProviderID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	})

	if provider, err := rs.store.FindProviderByID(booking.ProviderID); err == nil {
		rs.store.CreateNotification(models.Notification{
			UserID:  provider.UserID,
			Title:   "New Review",
			Message: fmt.Sprintf("You received a %d-star review", in.Rating),
			Type:    models.NotificationReview,
		})
	}

	return review, nil
}
