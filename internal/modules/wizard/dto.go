package wizard

import "studiorental/internal/domain"

type ToggleItemRequest struct {
	ID string `json:"id" binding:"required"`
}

type SetModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

type SetDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type ToggleHourRequest struct {
	Hour *int `json:"hour" binding:"required"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// SubmissionPayload is the normalized shape handed to the submission
// collaborator. The field names are part of the contract with downstream
// consumers and must not drift.
type SubmissionPayload struct {
	BookingID   string   `json:"bookingId"`
	Studios     []string `json:"studios"`
	Equipment   []string `json:"equipment"`
	Props       []string `json:"props"`
	Date        string   `json:"date"`
	BookingType string   `json:"bookingType"`
	TimeSlots   []string `json:"timeSlots"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Company     string   `json:"company"`
	Message     string   `json:"message"`
	Total       int64    `json:"total"`
}

// Confirmation is what the UI renders after a successful submission.
type Confirmation struct {
	BookingReference string             `json:"booking_reference"` // display form, separator included
	Total            int64              `json:"total"`
	Currency         string             `json:"currency"`
	Date             string             `json:"date"`
	BookingType      domain.BookingMode `json:"booking_type"`
	HourCount        int                `json:"hour_count"`
}

// SessionView is the read model for GET /sessions/:id — the raw state plus
// the freshly derived quote.
type SessionView struct {
	ID        string             `json:"id"`
	Step      Step               `json:"step"`
	Selection domain.Selection   `json:"selection"`
	Contact   domain.ContactInfo `json:"contact"`
	Quote     int64              `json:"quote"`
	Currency  string             `json:"currency"`
	Submitted bool               `json:"submitted"`
	Reference string             `json:"reference,omitempty"`
}
