package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"studiorental/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogProvider struct {
	mock.Mock
}

func (m *MockCatalogProvider) GetCatalog(ctx context.Context) (*domain.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Catalog), args.Error(1)
}

type MockSubmissionSender struct {
	mock.Mock
}

func (m *MockSubmissionSender) SubmitBooking(ctx context.Context, reference string, payload *SubmissionPayload) (string, error) {
	args := m.Called(ctx, reference, payload)
	return args.String(0), args.Error(1)
}

func newTestService(sender SubmissionSender) *Service {
	catalogs := new(MockCatalogProvider)
	catalogs.On("GetCatalog", mock.Anything).Return(testCatalog(), nil)

	svc := NewService(catalogs, sender, nil)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 31, 14, 30, 5, 0, time.UTC)
	}
	return svc
}

// drives a fresh session to the contact step with a valid hourly
// configuration: loft + strobe kit, 2 hours.
func sessionAtContactStep(t *testing.T, svc *Service) string {
	t.Helper()

	v, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	id := v.ID

	_, err = svc.ToggleSpace(id, "loft")
	require.NoError(t, err)
	_, err = svc.Advance(id)
	require.NoError(t, err)
	_, err = svc.ToggleEquipment(id, "strobe-kit")
	require.NoError(t, err)
	_, err = svc.Advance(id)
	require.NoError(t, err)
	_, err = svc.Advance(id)
	require.NoError(t, err)

	_, err = svc.SetDate(id, "2026-09-15")
	require.NoError(t, err)
	_, err = svc.SetMode(id, "hourly")
	require.NoError(t, err)
	_, err = svc.ToggleHour(id, 10)
	require.NoError(t, err)
	_, err = svc.ToggleHour(id, 11)
	require.NoError(t, err)

	v, err = svc.Advance(id)
	require.NoError(t, err)
	require.Equal(t, StepContact, v.Step)

	_, err = svc.SetContact(id, ContactRequest{
		Name:  "Alex Berg",
		Email: "alex@example.com",
		Phone: "+46 70 123 45 67",
	})
	require.NoError(t, err)

	return id
}

func TestService_CreateSession(t *testing.T) {
	svc := newTestService(new(MockSubmissionSender))

	v, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, StepSpaces, v.Step)
	assert.Equal(t, int64(0), v.Quote)
	assert.Equal(t, "SEK", v.Currency)
}

func TestService_GetSession_Unknown(t *testing.T) {
	svc := newTestService(new(MockSubmissionSender))

	_, err := svc.GetSession("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_Submit_Success(t *testing.T) {
	sender := new(MockSubmissionSender)
	var captured *SubmissionPayload
	var capturedRef string
	sender.On("SubmitBooking", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedRef = args.String(1)
			captured = args.Get(2).(*SubmissionPayload)
		}).
		Return("corr-42", nil)

	svc := newTestService(sender)
	id := sessionAtContactStep(t, svc)

	conf, err := svc.Submit(context.Background(), id)
	require.NoError(t, err)

	// loft 300/h + strobe kit 50/h, 2 hours
	assert.Equal(t, int64(700), conf.Total)
	assert.Equal(t, domain.ModeHourly, conf.BookingType)
	assert.Equal(t, 2, conf.HourCount)
	assert.Equal(t, "2026-09-15", conf.Date)

	// reference derives from the fixed clock: 2026-08-31 14:30:05
	require.Equal(t, "260831EMW7", capturedRef)
	assert.Equal(t, "260831-EMW7", conf.BookingReference)

	require.NotNil(t, captured)
	assert.Equal(t, []string{"loft"}, captured.Studios)
	assert.Equal(t, []string{"strobe-kit"}, captured.Equipment)
	assert.Empty(t, captured.Props)
	assert.Equal(t, "hourly", captured.BookingType)
	assert.Equal(t, []string{"10:00", "11:00"}, captured.TimeSlots)
	assert.Equal(t, int64(700), captured.Total)
	assert.Equal(t, "Alex Berg", captured.Name)
	assert.NotEmpty(t, captured.BookingID)
	assert.NotEqual(t, capturedRef, captured.BookingID, "bookingId and reference are distinct identifiers")

	v, err := svc.GetSession(id)
	require.NoError(t, err)
	assert.True(t, v.Submitted)
	assert.Equal(t, "260831-EMW7", v.Reference)
	sender.AssertNumberOfCalls(t, "SubmitBooking", 1)
}

func TestService_Submit_FullDayPayloadHasEmptyTimeSlots(t *testing.T) {
	sender := new(MockSubmissionSender)
	var captured *SubmissionPayload
	sender.On("SubmitBooking", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(2).(*SubmissionPayload) }).
		Return("corr-1", nil)

	svc := newTestService(sender)
	id := sessionAtContactStep(t, svc)
	// switch basis at the contact step is not possible; go back to step 4
	_, err := svc.Retreat(id)
	require.NoError(t, err)
	_, err = svc.SetMode(id, "fullday")
	require.NoError(t, err)
	_, err = svc.Advance(id)
	require.NoError(t, err)

	conf, err := svc.Submit(context.Background(), id)
	require.NoError(t, err)

	// loft 1250/day + strobe kit 200/day
	assert.Equal(t, int64(1450), conf.Total)
	assert.Equal(t, "fullday", captured.BookingType)
	assert.Equal(t, []string{}, captured.TimeSlots)
}

func TestService_Submit_FailurePreservesState(t *testing.T) {
	sender := new(MockSubmissionSender)
	sender.On("SubmitBooking", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("network down")).Once()
	sender.On("SubmitBooking", mock.Anything, mock.Anything, mock.Anything).
		Return("corr-2", nil).Once()

	svc := newTestService(sender)
	id := sessionAtContactStep(t, svc)

	_, err := svc.Submit(context.Background(), id)
	require.ErrorIs(t, err, ErrSubmissionFailed)

	// everything entered before the failed attempt is still there
	v, err := svc.GetSession(id)
	require.NoError(t, err)
	assert.Equal(t, StepContact, v.Step)
	assert.False(t, v.Submitted)
	assert.Empty(t, v.Reference)
	assert.Equal(t, []string{"loft"}, v.Selection.SpaceIDs)
	assert.Equal(t, []int{10, 11}, v.Selection.Hours)
	assert.Equal(t, "Alex Berg", v.Contact.Name)
	assert.Equal(t, "alex@example.com", v.Contact.Email)

	// manual retry succeeds
	conf, err := svc.Submit(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(700), conf.Total)
}

func TestService_Submit_InvalidContact(t *testing.T) {
	sender := new(MockSubmissionSender)
	svc := newTestService(sender)
	id := sessionAtContactStep(t, svc)

	_, err := svc.SetContact(id, ContactRequest{Name: "Alex", Email: "broken", Phone: ""})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), id)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StepContact, verr.Step)
	assert.Contains(t, verr.Fields, "Email")
	assert.Contains(t, verr.Fields, "Phone")
	sender.AssertNotCalled(t, "SubmitBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Submit_HourlyNeedsHours(t *testing.T) {
	sender := new(MockSubmissionSender)
	svc := newTestService(sender)
	id := sessionAtContactStep(t, svc)

	// the selection is still editable at the contact step; undo both slots
	_, err := svc.ToggleHour(id, 10)
	require.NoError(t, err)
	_, err = svc.ToggleHour(id, 11)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), id)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StepDateTime, verr.Step)
	assert.Contains(t, verr.Fields, "hours")
	sender.AssertNotCalled(t, "SubmitBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Submit_NeedsASpace(t *testing.T) {
	sender := new(MockSubmissionSender)
	svc := newTestService(sender)
	id := sessionAtContactStep(t, svc)

	// toggle the only space back off after reaching the contact step
	_, err := svc.ToggleSpace(id, "loft")
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), id)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StepSpaces, verr.Step)
	assert.Contains(t, verr.Fields, "spaces")
	sender.AssertNotCalled(t, "SubmitBooking", mock.Anything, mock.Anything, mock.Anything)

	// restoring the space makes the same session submittable again
	sender.On("SubmitBooking", mock.Anything, mock.Anything, mock.Anything).Return("corr-5", nil)
	_, err = svc.ToggleSpace(id, "loft")
	require.NoError(t, err)
	conf, err := svc.Submit(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(700), conf.Total)
}

func TestService_Submit_WrongStep(t *testing.T) {
	svc := newTestService(new(MockSubmissionSender))

	v, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), v.ID)
	assert.ErrorIs(t, err, ErrNotAtContactStep)
}

func TestService_Submit_Twice(t *testing.T) {
	sender := new(MockSubmissionSender)
	sender.On("SubmitBooking", mock.Anything, mock.Anything, mock.Anything).Return("corr-3", nil)

	svc := newTestService(sender)
	id := sessionAtContactStep(t, svc)

	_, err := svc.Submit(context.Background(), id)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), id)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	sender.AssertNumberOfCalls(t, "SubmitBooking", 1)
}

func TestService_Submit_BlocksWhileInFlight(t *testing.T) {
	sender := new(MockSubmissionSender)
	entered := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan struct{})
	sender.On("SubmitBooking", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return("corr-4", nil)

	svc := newTestService(sender)
	id := sessionAtContactStep(t, svc)

	go func() {
		defer close(firstDone)
		_, err := svc.Submit(context.Background(), id)
		assert.NoError(t, err)
	}()

	// wait until the first submit is inside the collaborator call
	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("first submit never reached the collaborator")
	}

	_, err := svc.Submit(context.Background(), id)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	<-firstDone
	sender.AssertNumberOfCalls(t, "SubmitBooking", 1)
}

func TestService_ValidationErrorSurfacesThroughAdvance(t *testing.T) {
	svc := newTestService(new(MockSubmissionSender))
	v, err := svc.CreateSession(context.Background())
	require.NoError(t, err)

	_, err = svc.Advance(v.ID)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StepSpaces, verr.Step)
}
