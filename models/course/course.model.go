package course

import "time"

// Availability controls whether a course is visible in the catalog
type Availability string

const (
	AvailabilityDraft     Availability = "draft"
	AvailabilityPublished Availability = "published"
)

// Subject groups courses in the catalog
type Subject struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Topic belongs to a subject
type Topic struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	SubjectID uint   `json:"subject_id"`
}

type Mentor struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Image is a stored course picture. The portal never edits existing images.
type Image struct {
	ID     uint   `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"is_main"`
}

// Course as returned by the LMS API
type Course struct {
	ID            uint         `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	SubjectID     uint         `json:"subject_id"`
	Subject       *Subject     `json:"subject,omitempty"`
	Mentor        *Mentor      `json:"mentor,omitempty"`
	Tools         string       `json:"tools"`
	Price         float64      `json:"price"`
	Availability  Availability `json:"availability"`
	KeyPoints     []string     `json:"key_points"`
	Personas      []string     `json:"personas"`
	Images        []Image      `json:"images"`
	Sections      []Section    `json:"sections,omitempty"`
	StudentCount  int          `json:"student_count"`
	ReviewCount   int          `json:"review_count"`
	AverageRating float64      `json:"average_rating"`
	CreatedAt     time.Time    `json:"created_at"`
}

// CoursePayload is the body of course create and update calls
type CoursePayload struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	SubjectID    uint         `json:"subject_id"`
	Tools        string       `json:"tools"`
	Price        float64      `json:"price"`
	Availability Availability `json:"availability"`
	KeyPoints    []string     `json:"key_points"`
	Personas     []string     `json:"personas"`
	ImageURL     string       `json:"image_url,omitempty"`
}

// Review is a student rating shown on the course detail page
type Review struct {
	ID          uint      `json:"id"`
	CourseID    uint      `json:"course_id"`
	StudentName string    `json:"student_name"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

// Resource is a downloadable document attached to a course
type Resource struct {
	ID       uint   `json:"id"`
	CourseID uint   `json:"course_id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}
