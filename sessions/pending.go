package sessions

import (
	"errors"
	"fmt"
	"lms/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRegistrationExpired = errors.New("sessions: pending registration not found or expired")

// PendingStore hands the just-registered email to the verify-email screen.
// Entries live for ttl and are read by an opaque handle.
type PendingStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewPendingStore(db *gorm.DB, ttl time.Duration) *PendingStore {
	return &PendingStore{db: db, ttl: ttl, now: time.Now}
}

// Put stores a pending registration and returns its handle
func (s *PendingStore) Put(email, name string) (models.PendingRegistration, error) {
	entry := models.PendingRegistration{
		Handle:    uuid.NewString(),
		Email:     email,
		Name:      name,
		ExpiresAt: s.now().Add(s.ttl),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return models.PendingRegistration{}, fmt.Errorf("store pending registration: %w", err)
	}
	return entry, nil
}

func (s *PendingStore) Get(handle string) (models.PendingRegistration, error) {
	var entry models.PendingRegistration
	err := s.db.Where("handle = ? AND expires_at > ?", handle, s.now()).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PendingRegistration{}, ErrRegistrationExpired
	}
	if err != nil {
		return models.PendingRegistration{}, fmt.Errorf("load pending registration: %w", err)
	}
	return entry, nil
}

// Remove drops the entry once the email is verified
func (s *PendingStore) Remove(handle string) error {
	return s.db.Where("handle = ?", handle).Delete(&models.PendingRegistration{}).Error
}

func (s *PendingStore) PurgeExpired(now time.Time) (int64, error) {
	res := s.db.Where("expires_at <= ?", now).Delete(&models.PendingRegistration{})
	return res.RowsAffected, res.Error
}
