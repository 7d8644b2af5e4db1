package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseDraft keeps wizard progress between requests. CourseID is nil while
// the wizard creates a new course.
type CourseDraft struct {
	gorm.Model
	DraftKey       string         `gorm:"size:36;uniqueIndex;not null" json:"draft_id"`
	MentorID       uint           `gorm:"index;not null" json:"mentor_id"`
	CourseID       *uint          `json:"course_id"`
	CurrentStep    int            `gorm:"default:1" json:"current_step"`
	Name           string         `json:"name"`
	Description    string         `gorm:"type:text" json:"description"`
	SubjectID      uint           `json:"subject_id"`
	Tools          string         `json:"tools"`
	Price          float64        `json:"price"`
	Availability   string         `gorm:"type:varchar(20);default:'draft'" json:"availability"`
	KeyPoints      datatypes.JSON `json:"key_points"`
	Personas       datatypes.JSON `json:"personas"`
	ExistingImages datatypes.JSON `json:"existing_images"`
	MainPhoto      []byte         `json:"-"`
	MainPhotoName  string         `json:"main_photo_name"`
	MainPhotoType  string         `json:"main_photo_type"`
	ExpiresAt      time.Time      `gorm:"index" json:"expires_at"`
}
