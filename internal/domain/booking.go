package domain

import "time"

type BookingStatus string

const (
	BookingReceived  BookingStatus = "received"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the durable record the submission collaborator writes once a
// wizard completes. The core never reads it back; it exists for the ops
// surface and for correlating notification systems.
type Booking struct {
	ID           int64         `json:"id" gorm:"primaryKey"`
	BookingID    string        `json:"booking_id" gorm:"uniqueIndex"`
	Reference    string        `json:"reference" gorm:"uniqueIndex"`
	SpaceIDs     []string      `json:"space_ids" gorm:"serializer:json"`
	EquipmentIDs []string      `json:"equipment_ids" gorm:"serializer:json"`
	PropIDs      []string      `json:"prop_ids" gorm:"serializer:json"`
	Date         string        `json:"date"`
	BookingType  string        `json:"booking_type"`
	TimeSlots    []string      `json:"time_slots" gorm:"serializer:json"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Company      string        `json:"company,omitempty"`
	Message      string        `json:"message,omitempty" gorm:"type:text"`
	Total        int64         `json:"total"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
