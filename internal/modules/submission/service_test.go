package submission

import (
	"context"
	"errors"
	"testing"

	"studiorental/internal/domain"
	"studiorental/internal/modules/wizard"
	"studiorental/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) Create(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func testPayload() *wizard.SubmissionPayload {
	return &wizard.SubmissionPayload{
		BookingID:   "BK-1756650000000-a1b2c3d4",
		Studios:     []string{"loft"},
		Equipment:   []string{"strobe-kit"},
		Props:       []string{},
		Date:        "2026-09-15",
		BookingType: "hourly",
		TimeSlots:   []string{"10:00", "11:00"},
		Name:        "Alex Berg",
		Email:       "alex@example.com",
		Phone:       "+46 70 123 45 67",
		Total:       700,
	}
}

func TestService_SubmitBooking(t *testing.T) {
	store := new(MockBookingStore)
	var saved *domain.Booking
	store.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.Booking) }).
		Return(nil)

	service := NewService(store)

	corrID, err := service.SubmitBooking(context.Background(), "260831EMW7", testPayload())
	require.NoError(t, err)
	assert.Equal(t, "BK-1756650000000-a1b2c3d4", corrID)

	require.NotNil(t, saved)
	assert.Equal(t, "260831EMW7", saved.Reference)
	assert.Equal(t, []string{"loft"}, saved.SpaceIDs)
	assert.Equal(t, []string{"10:00", "11:00"}, saved.TimeSlots)
	assert.Equal(t, int64(700), saved.Total)
	assert.Equal(t, domain.BookingReceived, saved.Status)
}

func TestService_SubmitBooking_DuplicateReference(t *testing.T) {
	store := new(MockBookingStore)
	store.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateReference)

	service := NewService(store)

	_, err := service.SubmitBooking(context.Background(), "260831EMW7", testPayload())
	assert.ErrorIs(t, err, repository.ErrDuplicateReference)
}

func TestService_SubmitBooking_StoreError(t *testing.T) {
	store := new(MockBookingStore)
	store.On("Create", mock.Anything, mock.Anything).Return(errors.New("db gone"))

	service := NewService(store)

	_, err := service.SubmitBooking(context.Background(), "260831EMW7", testPayload())
	assert.Error(t, err)
}
