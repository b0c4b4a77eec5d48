package booking

import (
	"errors"

	bookingModel "agency-backend/models/booking"

	"gorm.io/gorm"
)

// Store is the persistence contract the booking workflows need: point lookup
// by token and an atomic conditional status update. All durable state lives
// here, the service itself holds no shared mutable state.
type Store interface {
	Create(b *bookingModel.Booking) error
	FindByToken(token string) (*bookingModel.Booking, error)
	FindByID(id uint) (*bookingModel.Booking, error)
	// UpdateStatusIf applies updates to the booking only while its status is
	// still one of from, in a single conditional UPDATE. It reports whether
	// the row was actually transitioned.
	UpdateStatusIf(id uint, from []bookingModel.BookingStatus, updates map[string]interface{}) (bool, error)
	AppendStatusEvent(ev *bookingModel.BookingStatusEvent) error
	List(limit, offset int) ([]bookingModel.Booking, int64, error)
}

// GormStore backs Store with PostgreSQL through GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(b *bookingModel.Booking) error {
	return s.db.Create(b).Error
}

func (s *GormStore) FindByToken(token string) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	if err := s.db.Where("access_token = ?", token).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *GormStore) FindByID(id uint) (*bookingModel.Booking, error) {
	var b bookingModel.Booking
	if err := s.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// UpdateStatusIf relies on the database's atomicity for the single UPDATE
// statement, no application-level lock is taken. Concurrent callers racing on
// the same booking see exactly one RowsAffected == 1.
func (s *GormStore) UpdateStatusIf(id uint, from []bookingModel.BookingStatus, updates map[string]interface{}) (bool, error) {
	res := s.db.Model(&bookingModel.Booking{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) AppendStatusEvent(ev *bookingModel.BookingStatusEvent) error {
	return s.db.Create(ev).Error
}

func (s *GormStore) List(limit, offset int) ([]bookingModel.Booking, int64, error) {
	var total int64
	if err := s.db.Model(&bookingModel.Booking{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []bookingModel.Booking
	if err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
