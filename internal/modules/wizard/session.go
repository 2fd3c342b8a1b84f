package wizard

import (
	"strings"
	"time"

	"studiorental/internal/domain"
	"studiorental/internal/modules/pricing"
	"studiorental/internal/pkg/validator"
)

// Step is the wizard's position. Steps are linear: there is no branching,
// only gated forward movement and unconditional backward movement.
type Step int

const (
	StepSpaces Step = iota + 1
	StepEquipment
	StepProps
	StepDateTime
	StepContact
	StepSubmitted
)

// Session holds one visitor's wizard state. All transitions are plain
// methods mutating the struct, so the whole flow is unit-testable without an
// HTTP harness. The catalog snapshot is fixed at creation.
type Session struct {
	ID        string             `json:"id"`
	Step      Step               `json:"step"`
	Selection domain.Selection   `json:"selection"`
	Contact   domain.ContactInfo `json:"contact"`

	// populated on successful submission only
	Reference     string `json:"reference,omitempty"`
	BookingID     string `json:"booking_id,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
	Total         int64  `json:"total,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	catalog    *domain.Catalog
	submitting bool
}

func NewSession(id string, catalog *domain.Catalog, now time.Time) *Session {
	return &Session{
		ID:        id,
		Step:      StepSpaces,
		CreatedAt: now,
		catalog:   catalog,
	}
}

func (s *Session) Catalog() *domain.Catalog { return s.catalog }

// Quote recomputes the running total from the current selection. Never
// cached; every call prices from scratch.
func (s *Session) Quote() int64 {
	return pricing.Total(&s.Selection, s.catalog)
}

// GateErrors reports why the current step cannot be left, or nil when it
// can. Equipment and props are optional upsells and never gate.
func (s *Session) GateErrors() map[string]string {
	return s.stepGateErrors(s.Step)
}

func (s *Session) stepGateErrors(step Step) map[string]string {
	switch step {
	case StepSpaces:
		if len(s.Selection.SpaceIDs) == 0 {
			return map[string]string{"spaces": "at least one space is required"}
		}
	case StepDateTime:
		fields := make(map[string]string)
		if s.Selection.Date == "" {
			fields["date"] = "required"
		}
		if s.Selection.Mode == domain.ModeNone {
			fields["mode"] = "required"
		}
		if s.Selection.Mode == domain.ModeHourly && len(s.Selection.Hours) == 0 {
			fields["hours"] = "at least one hour slot is required"
		}
		if len(fields) > 0 {
			return fields
		}
	}
	return nil
}

// SubmitGateErrors re-checks the earlier gates against the accumulated
// state. The selection stays editable at the contact step, so a
// configuration that passed Advance can be undone again before Submit.
func (s *Session) SubmitGateErrors() *ValidationError {
	for _, step := range []Step{StepSpaces, StepDateTime} {
		if fields := s.stepGateErrors(step); fields != nil {
			return &ValidationError{Step: step, Fields: fields}
		}
	}
	return nil
}

// Advance moves to the next step if the current step's gate passes. At the
// contact step there is nothing to advance to; Submit is the gate there.
func (s *Session) Advance() *ValidationError {
	if s.Step >= StepContact {
		return nil
	}
	if fields := s.GateErrors(); fields != nil {
		return &ValidationError{Step: s.Step, Fields: fields}
	}
	s.Step++
	return nil
}

// Retreat moves one step back, unconditionally. No-op at the first step and
// after submission.
func (s *Session) Retreat() {
	if s.Step > StepSpaces && s.Step != StepSubmitted {
		s.Step--
	}
}

func (s *Session) ToggleSpace(id string) error {
	if s.Step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	sp, ok := s.catalog.Space(id)
	if !ok {
		return ErrUnknownItem
	}
	// Spaces must be bookable; add-on availability is only advisory.
	if !sp.Available && !s.Selection.HasSpace(id) {
		return ErrSpaceUnavailable
	}
	s.Selection.ToggleSpace(id)
	return nil
}

func (s *Session) ToggleEquipment(id string) error {
	if s.Step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if _, ok := s.catalog.EquipmentItem(id); !ok {
		return ErrUnknownItem
	}
	s.Selection.ToggleEquipment(id)
	return nil
}

func (s *Session) ToggleProp(id string) error {
	if s.Step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if _, ok := s.catalog.Prop(id); !ok {
		return ErrUnknownItem
	}
	s.Selection.ToggleProp(id)
	return nil
}

func (s *Session) SetMode(mode string) error {
	if s.Step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	m, ok := domain.ParseBookingMode(mode)
	if !ok {
		return ErrInvalidMode
	}
	s.Selection.SetMode(m)
	return nil
}

func (s *Session) SetDate(date string) error {
	if s.Step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	s.Selection.Date = date
	return nil
}

func (s *Session) ToggleHour(hour int) error {
	if s.Step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if hour < 0 || hour > 23 {
		return ErrInvalidHour
	}
	s.Selection.ToggleHour(hour)
	return nil
}

// SetContact stores the contact fields, trimmed. Validation happens at
// Submit, not here: the user fills the form incrementally.
func (s *Session) SetContact(c domain.ContactInfo) error {
	if s.Step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Company = strings.TrimSpace(c.Company)
	c.Message = strings.TrimSpace(c.Message)
	s.Contact = c
	return nil
}

// ContactErrors validates the contact form for submission: name, a
// well-formed email and phone are required.
func (s *Session) ContactErrors() map[string]string {
	return validator.Validate(s.Contact)
}
