package wizard

import (
	"encoding/json"
	"errors"
	"fmt"
	"lms/models"
	"lms/models/course"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrDraftNotFound = errors.New("wizard: draft not found")

// Store keeps wizards between requests. A save pushes the expiry forward.
type Store struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewStore(db *gorm.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl, now: time.Now}
}

func (s *Store) Save(w *Wizard) error {
	record, err := toRecord(w)
	if err != nil {
		return err
	}
	record.ExpiresAt = s.now().Add(s.ttl)

	// Reuse the row of an already saved draft
	var existing models.CourseDraft
	res := s.db.Where("draft_key = ?", w.ID).Limit(1).Find(&existing)
	if res.Error != nil {
		return fmt.Errorf("load draft %s: %w", w.ID, res.Error)
	}
	if res.RowsAffected > 0 {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}

	if err := s.db.Save(&record).Error; err != nil {
		return fmt.Errorf("save draft %s: %w", w.ID, err)
	}
	return nil
}

// Load returns the mentor's unexpired draft
func (s *Store) Load(id string, mentorID uint) (*Wizard, error) {
	var record models.CourseDraft
	err := s.db.
		Where("draft_key = ? AND mentor_id = ? AND expires_at > ?", id, mentorID, s.now()).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load draft %s: %w", id, err)
	}
	return fromRecord(record)
}

// Delete discards a draft after submit or cancel
func (s *Store) Delete(id string, mentorID uint) error {
	res := s.db.Unscoped().Where("draft_key = ? AND mentor_id = ?", id, mentorID).Delete(&models.CourseDraft{})
	if res.Error != nil {
		return fmt.Errorf("delete draft %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrDraftNotFound
	}
	return nil
}

func (s *Store) PurgeExpired(now time.Time) (int64, error) {
	res := s.db.Unscoped().Where("expires_at <= ?", now).Delete(&models.CourseDraft{})
	return res.RowsAffected, res.Error
}

func toRecord(w *Wizard) (models.CourseDraft, error) {
	keyPoints, err := json.Marshal(nonNil(w.Draft.KeyPoints))
	if err != nil {
		return models.CourseDraft{}, err
	}
	personas, err := json.Marshal(nonNil(w.Draft.Personas))
	if err != nil {
		return models.CourseDraft{}, err
	}
	images, err := json.Marshal(w.Draft.ExistingImages)
	if err != nil {
		return models.CourseDraft{}, err
	}

	record := models.CourseDraft{
		DraftKey:       w.ID,
		MentorID:       w.MentorID,
		CurrentStep:    int(w.Step),
		Name:           w.Draft.Name,
		Description:    w.Draft.Description,
		SubjectID:      w.Draft.SubjectID,
		Tools:          w.Draft.Tools,
		Price:          w.Draft.Price,
		Availability:   string(w.Draft.Availability),
		KeyPoints:      datatypes.JSON(keyPoints),
		Personas:       datatypes.JSON(personas),
		ExistingImages: datatypes.JSON(images),
	}
	if w.CourseID != 0 {
		courseID := w.CourseID
		record.CourseID = &courseID
	}
	if p := w.Draft.MainPhoto; p != nil {
		record.MainPhoto = p.Data
		record.MainPhotoName = p.Name
		record.MainPhotoType = p.ContentType
	}
	return record, nil
}

func fromRecord(record models.CourseDraft) (*Wizard, error) {
	w := &Wizard{
		ID:       record.DraftKey,
		MentorID: record.MentorID,
		Step:     Step(record.CurrentStep),
		Draft: Draft{
			Name:         record.Name,
			Description:  record.Description,
			SubjectID:    record.SubjectID,
			Tools:        record.Tools,
			Price:        record.Price,
			Availability: course.Availability(record.Availability),
		},
	}
	if record.CourseID != nil {
		w.CourseID = *record.CourseID
	}
	if err := unmarshalJSON(record.KeyPoints, &w.Draft.KeyPoints); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(record.Personas, &w.Draft.Personas); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(record.ExistingImages, &w.Draft.ExistingImages); err != nil {
		return nil, err
	}
	if record.MainPhotoName != "" {
		w.Draft.MainPhoto = &Photo{
			Name:        record.MainPhotoName,
			ContentType: record.MainPhotoType,
			Data:        record.MainPhoto,
		}
	}
	return w, nil
}

func unmarshalJSON(raw datatypes.JSON, target any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode draft field: %w", err)
	}
	return nil
}
