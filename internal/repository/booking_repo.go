package repository

import (
	"context"
	"errors"
	"time"

	"studiorental/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateReference means a booking with the same reference already
// exists. References collide only within the same calendar second, so the
// caller treats this as retryable.
var ErrDuplicateReference = errors.New("duplicate booking reference")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingRow struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	BookingID    string    `gorm:"column:booking_id;uniqueIndex"`
	Reference    string    `gorm:"column:reference;uniqueIndex"`
	SpaceIDs     []string  `gorm:"column:space_ids;serializer:json"`
	EquipmentIDs []string  `gorm:"column:equipment_ids;serializer:json"`
	PropIDs      []string  `gorm:"column:prop_ids;serializer:json"`
	Date         string    `gorm:"column:date"`
	BookingType  string    `gorm:"column:booking_type"`
	TimeSlots    []string  `gorm:"column:time_slots;serializer:json"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	Phone        string    `gorm:"column:phone"`
	Company      string    `gorm:"column:company"`
	Message      string    `gorm:"column:message;type:text"`
	Total        int64     `gorm:"column:total"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (bookingRow) TableName() string { return "bookings" }

func toDomainBooking(m bookingRow) domain.Booking {
	return domain.Booking{
		ID:           m.ID,
		BookingID:    m.BookingID,
		Reference:    m.Reference,
		SpaceIDs:     m.SpaceIDs,
		EquipmentIDs: m.EquipmentIDs,
		PropIDs:      m.PropIDs,
		Date:         m.Date,
		BookingType:  m.BookingType,
		TimeSlots:    m.TimeSlots,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Company:      m.Company,
		Message:      m.Message,
		Total:        m.Total,
		Status:       domain.BookingStatus(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toBookingRow(b *domain.Booking) bookingRow {
	return bookingRow{
		ID:           b.ID,
		BookingID:    b.BookingID,
		Reference:    b.Reference,
		SpaceIDs:     b.SpaceIDs,
		EquipmentIDs: b.EquipmentIDs,
		PropIDs:      b.PropIDs,
		Date:         b.Date,
		BookingType:  b.BookingType,
		TimeSlots:    b.TimeSlots,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		Company:      b.Company,
		Message:      b.Message,
		Total:        b.Total,
		Status:       string(b.Status),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	row := toBookingRow(b)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateReference
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateReference
		}
		return err
	}
	b.ID = row.ID
	b.CreatedAt = row.CreatedAt
	b.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *BookingRepository) List(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingRow
	q := r.db.WithContext(ctx).Order("created_at DESC").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	var row bookingRow
	err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	b := toDomainBooking(row)
	return &b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, reference string, status domain.BookingStatus) error {
	res := r.db.WithContext(ctx).Model(&bookingRow{}).
		Where("reference = ?", reference).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
