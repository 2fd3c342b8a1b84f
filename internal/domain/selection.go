package domain

import (
	"sort"
	"time"
)

type BookingMode string

const (
	ModeNone    BookingMode = ""
	ModeHourly  BookingMode = "hourly"
	ModeFullDay BookingMode = "fullday"
)

func ParseBookingMode(s string) (BookingMode, bool) {
	switch BookingMode(s) {
	case ModeHourly, ModeFullDay:
		return BookingMode(s), true
	}
	return ModeNone, false
}

// Selection is the wizard's accumulated working state: which catalog items
// are picked, the pricing mode, the date and the hour slots. Only the wizard
// mutates it, one discrete user action at a time.
type Selection struct {
	SpaceIDs     []string    `json:"space_ids"`
	EquipmentIDs []string    `json:"equipment_ids"`
	PropIDs      []string    `json:"prop_ids"`
	Mode         BookingMode `json:"mode"`
	Date         string      `json:"date"` // "2006-01-02", empty until chosen
	Hours        []int       `json:"hours"`
}

func toggleID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ToggleSpace adds the id if absent, removes it if present. Toggling twice is
// a no-op overall.
func (s *Selection) ToggleSpace(id string)     { s.SpaceIDs = toggleID(s.SpaceIDs, id) }
func (s *Selection) ToggleEquipment(id string) { s.EquipmentIDs = toggleID(s.EquipmentIDs, id) }
func (s *Selection) ToggleProp(id string)      { s.PropIDs = toggleID(s.PropIDs, id) }

func (s *Selection) HasSpace(id string) bool     { return containsID(s.SpaceIDs, id) }
func (s *Selection) HasEquipment(id string) bool { return containsID(s.EquipmentIDs, id) }
func (s *Selection) HasProp(id string) bool      { return containsID(s.PropIDs, id) }

// SetMode picks the pricing basis. Changing the mode clears the hour slots:
// a partial hour selection made under the old basis must not silently price
// the new one.
func (s *Selection) SetMode(m BookingMode) {
	if s.Mode == m {
		return
	}
	s.Mode = m
	s.Hours = nil
}

// ToggleHour adds or removes one hour slot (start hour 0-23), keeping the set
// sorted and free of duplicates.
func (s *Selection) ToggleHour(h int) {
	for i, v := range s.Hours {
		if v == h {
			s.Hours = append(s.Hours[:i], s.Hours[i+1:]...)
			return
		}
	}
	s.Hours = append(s.Hours, h)
	sort.Ints(s.Hours)
}

// HourCount is the number of selected hour slots; the hourly price
// multiplier.
func (s *Selection) HourCount() int { return len(s.Hours) }

// TimeSlots renders the hour slots as "HH:00" strings for the submission
// payload. Empty (not nil) for full-day bookings.
func (s *Selection) TimeSlots() []string {
	if s.Mode == ModeFullDay {
		return []string{}
	}
	out := make([]string, 0, len(s.Hours))
	for _, h := range s.Hours {
		out = append(out, time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04"))
	}
	return out
}

// ContactInfo is entered at the final step and validated only there.
type ContactInfo struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Company string `json:"company"`
	Message string `json:"message"`
}
