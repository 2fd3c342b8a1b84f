package wizard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"studiorental/internal/domain"
	"studiorental/internal/pkg/refcode"

	"github.com/google/uuid"
)

// Service owns the live wizard sessions and orchestrates the final
// submission. Sessions live in memory for the duration of one visit; durable
// state only exists on the other side of the SubmissionSender boundary.
type Service struct {
	catalogs CatalogProvider
	sender   SubmissionSender
	hub      *Hub
	now      func() time.Time

	mu      sync.RWMutex
	entries map[string]*sessionEntry
}

type sessionEntry struct {
	mu   sync.Mutex
	sess *Session
}

func NewService(catalogs CatalogProvider, sender SubmissionSender, hub *Hub) *Service {
	return &Service{
		catalogs: catalogs,
		sender:   sender,
		hub:      hub,
		now:      time.Now,
		entries:  make(map[string]*sessionEntry),
	}
}

// CreateSession loads a catalog snapshot and starts a fresh wizard at the
// first step.
func (s *Service) CreateSession(ctx context.Context) (*SessionView, error) {
	catalog, err := s.catalogs.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	sess := NewSession(uuid.NewString(), catalog, s.now())

	s.mu.Lock()
	s.entries[sess.ID] = &sessionEntry{sess: sess}
	s.mu.Unlock()

	return view(sess), nil
}

func (s *Service) entry(id string) (*sessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

// withSession runs fn with the session locked and pushes the recomputed
// quote to any listening socket afterwards.
func (s *Service) withSession(id string, fn func(*Session) error) (*SessionView, error) {
	e, err := s.entry(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := fn(e.sess); err != nil {
		return nil, err
	}

	s.pushQuote(e.sess)
	return view(e.sess), nil
}

func (s *Service) GetSession(id string) (*SessionView, error) {
	e, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return view(e.sess), nil
}

func (s *Service) Advance(id string) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error {
		if verr := sess.Advance(); verr != nil {
			return verr
		}
		return nil
	})
}

func (s *Service) Retreat(id string) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error {
		sess.Retreat()
		return nil
	})
}

func (s *Service) ToggleSpace(id, itemID string) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error { return sess.ToggleSpace(itemID) })
}

func (s *Service) ToggleEquipment(id, itemID string) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error { return sess.ToggleEquipment(itemID) })
}

func (s *Service) ToggleProp(id, itemID string) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error { return sess.ToggleProp(itemID) })
}

func (s *Service) SetMode(id, mode string) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error { return sess.SetMode(mode) })
}

func (s *Service) SetDate(id, date string) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error { return sess.SetDate(date) })
}

func (s *Service) ToggleHour(id string, hour int) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error { return sess.ToggleHour(hour) })
}

func (s *Service) SetContact(id string, req ContactRequest) (*SessionView, error) {
	return s.withSession(id, func(sess *Session) error {
		return sess.SetContact(domain.ContactInfo{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Company: req.Company,
			Message: req.Message,
		})
	})
}

// Submit validates the contact form, mints the booking reference and the
// payload's bookingId, and hands everything to the submission collaborator.
// The session only transitions to Submitted when the collaborator reports
// success; on failure all entered data stays put and the user retries. A
// failed attempt discards its reference — the retry mints a fresh one.
//
// The submitting flag blocks a second Submit while one is in flight. There is
// no cancellation: the source behavior never had any, and a timeout policy
// belongs to the caller's context.
func (s *Service) Submit(ctx context.Context, id string) (*Confirmation, error) {
	e, err := s.entry(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	sess := e.sess

	switch {
	case sess.Step == StepSubmitted:
		e.mu.Unlock()
		return nil, ErrAlreadySubmitted
	case sess.Step != StepContact:
		e.mu.Unlock()
		return nil, ErrNotAtContactStep
	case sess.submitting:
		e.mu.Unlock()
		return nil, ErrSubmitInFlight
	}

	if verr := sess.SubmitGateErrors(); verr != nil {
		e.mu.Unlock()
		return nil, verr
	}
	if fields := sess.ContactErrors(); fields != nil {
		e.mu.Unlock()
		return nil, &ValidationError{Step: StepContact, Fields: fields}
	}

	now := s.now()
	total := sess.Quote()
	reference := refcode.Generate(now)
	payload := buildPayload(sess, newBookingID(now), total)
	currency := sess.catalog.Currency
	sess.submitting = true

	// The collaborator call happens outside the session lock; the
	// submitting flag keeps re-entrant submits out meanwhile.
	e.mu.Unlock()

	correlationID, senderErr := s.sender.SubmitBooking(ctx, reference, payload)

	e.mu.Lock()
	defer e.mu.Unlock()
	sess.submitting = false

	if senderErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, senderErr)
	}

	sess.Step = StepSubmitted
	sess.Reference = reference
	sess.BookingID = payload.BookingID
	sess.CorrelationID = correlationID
	sess.Total = total

	conf := &Confirmation{
		BookingReference: refcode.Format(reference),
		Total:            total,
		Currency:         currency,
		Date:             sess.Selection.Date,
		BookingType:      sess.Selection.Mode,
		HourCount:        sess.Selection.HourCount(),
	}

	if s.hub != nil {
		s.hub.Broadcast(sess.ID, &QuoteEvent{
			Type:      EventSubmitted,
			SessionID: sess.ID,
			Step:      sess.Step,
			Total:     total,
			Reference: conf.BookingReference,
		})
	}

	return conf, nil
}

func (s *Service) pushQuote(sess *Session) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(sess.ID, &QuoteEvent{
		Type:      EventQuote,
		SessionID: sess.ID,
		Step:      sess.Step,
		Total:     sess.Quote(),
	})
}

// newBookingID is the simple per-session id generator for the payload. It is
// deliberately distinct from the display-facing booking reference; downstream
// consumers expect both.
func newBookingID(now time.Time) string {
	return fmt.Sprintf("BK-%d-%s", now.UnixMilli(), strings.SplitN(uuid.NewString(), "-", 2)[0])
}

func buildPayload(sess *Session, bookingID string, total int64) *SubmissionPayload {
	return &SubmissionPayload{
		BookingID:   bookingID,
		Studios:     copyIDs(sess.Selection.SpaceIDs),
		Equipment:   copyIDs(sess.Selection.EquipmentIDs),
		Props:       copyIDs(sess.Selection.PropIDs),
		Date:        sess.Selection.Date,
		BookingType: string(sess.Selection.Mode),
		TimeSlots:   sess.Selection.TimeSlots(),
		Name:        sess.Contact.Name,
		Email:       sess.Contact.Email,
		Phone:       sess.Contact.Phone,
		Company:     sess.Contact.Company,
		Message:     sess.Contact.Message,
		Total:       total,
	}
}

func copyIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func view(sess *Session) *SessionView {
	return &SessionView{
		ID:        sess.ID,
		Step:      sess.Step,
		Selection: sess.Selection,
		Contact:   sess.Contact,
		Quote:     sess.Quote(),
		Currency:  sess.catalog.Currency,
		Submitted: sess.Step == StepSubmitted,
		Reference: formatIfSet(sess.Reference),
	}
}

func formatIfSet(ref string) string {
	if ref == "" {
		return ""
	}
	return refcode.Format(ref)
}
