// Package submission is the durable half of the booking pipeline: it takes
// the wizard's normalized payload and records it. The wizard core only knows
// the SubmissionSender interface; everything behind it (storage, later
// notification fan-out) lives here.
package submission

import (
	"context"
	"errors"
	"fmt"
	"log"

	"studiorental/internal/domain"
	"studiorental/internal/modules/wizard"
	"studiorental/internal/repository"
)

type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
}

type Service struct {
	store BookingStore
}

func NewService(store BookingStore) *Service {
	return &Service{store: store}
}

var _ wizard.SubmissionSender = (*Service)(nil)

// SubmitBooking persists the payload and returns the stored bookingId as the
// correlation id. A duplicate reference (same-second collision) surfaces as a
// plain error so the wizard keeps the session retryable.
func (s *Service) SubmitBooking(ctx context.Context, reference string, p *wizard.SubmissionPayload) (string, error) {
	rec := &domain.Booking{
		BookingID:    p.BookingID,
		Reference:    reference,
		SpaceIDs:     p.Studios,
		EquipmentIDs: p.Equipment,
		PropIDs:      p.Props,
		Date:         p.Date,
		BookingType:  p.BookingType,
		TimeSlots:    p.TimeSlots,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Company:      p.Company,
		Message:      p.Message,
		Total:        p.Total,
		Status:       domain.BookingReceived,
	}

	if err := s.store.Create(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicateReference) {
			return "", fmt.Errorf("reference %s already recorded: %w", reference, err)
		}
		return "", err
	}

	log.Printf("booking recorded: reference=%s bookingId=%s total=%d", reference, rec.BookingID, rec.Total)
	return rec.BookingID, nil
}
