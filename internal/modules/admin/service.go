// Package admin exposes the received bookings to the ops surface.
package admin

import (
	"context"

	"studiorental/internal/domain"
)

type BookingLister interface {
	List(ctx context.Context, limit, offset int) ([]domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, reference string, status domain.BookingStatus) error
}

type Service struct {
	bookings BookingLister
}

func NewService(bookings BookingLister) *Service {
	return &Service{bookings: bookings}
}

func (s *Service) ListBookings(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.List(ctx, limit, offset)
}

func (s *Service) GetBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookings.GetByReference(ctx, reference)
}

// SetBookingStatus moves a received booking to confirmed or cancelled. No
// transition matrix here beyond the enum: the ops team owns the lifecycle
// after submission.
func (s *Service) SetBookingStatus(ctx context.Context, reference string, status string) error {
	switch domain.BookingStatus(status) {
	case domain.BookingConfirmed, domain.BookingCancelled, domain.BookingReceived:
		return s.bookings.UpdateStatus(ctx, reference, domain.BookingStatus(status))
	default:
		return ErrInvalidStatus
	}
}
