package wizard

import (
	"errors"
	"fmt"
	"lms/models/course"
	"lms/schemas"

	"github.com/google/uuid"
)

// Step is a wizard page. StepSubmitted is terminal and cannot be navigated to.
type Step int

const (
	StepInfo Step = iota + 1
	StepPhotos
	StepDetails
	StepPrice
	StepReview
	StepSubmitted
)

const (
	MaxKeyPoints = 4
	MaxPersonas  = 4
)

var stepNames = map[Step]string{
	StepInfo:      "info",
	StepPhotos:    "photos",
	StepDetails:   "details",
	StepPrice:     "price",
	StepReview:    "review",
	StepSubmitted: "submitted",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Navigable reports whether GoToStep accepts s
func (s Step) Navigable() bool {
	return s >= StepInfo && s <= StepReview
}

var (
	ErrInvalidStep      = errors.New("wizard: step out of range")
	ErrAlreadySubmitted = errors.New("wizard: draft already submitted")
	ErrTooManyEntries   = errors.New("wizard: too many entries")
)

// Photo is a new main photo waiting for upload
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}

// Draft holds the course fields collected across steps
type Draft struct {
	Name           string
	Description    string
	SubjectID      uint
	Tools          string
	Price          float64
	Availability   course.Availability
	KeyPoints      []string
	Personas       []string
	MainPhoto      *Photo
	ExistingImages []course.Image
}

// Wizard is the course authoring state. CourseID is zero in add mode.
type Wizard struct {
	ID       string
	MentorID uint
	CourseID uint
	Step     Step
	Draft    Draft
}

// New starts an empty wizard for a new course
func New(mentorID uint) *Wizard {
	return &Wizard{
		ID:       uuid.NewString(),
		MentorID: mentorID,
		Step:     StepInfo,
		Draft:    Draft{Availability: course.AvailabilityDraft},
	}
}

// FromCourse starts a wizard that edits c. Existing images are read-only.
func FromCourse(mentorID uint, c course.Course) *Wizard {
	w := New(mentorID)
	w.CourseID = c.ID
	w.Draft = Draft{
		Name:           c.Name,
		Description:    c.Description,
		SubjectID:      c.SubjectID,
		Tools:          c.Tools,
		Price:          c.Price,
		Availability:   c.Availability,
		KeyPoints:      capped(c.KeyPoints, MaxKeyPoints),
		Personas:       capped(c.Personas, MaxPersonas),
		ExistingImages: append([]course.Image(nil), c.Images...),
	}
	if w.Draft.Availability == "" {
		w.Draft.Availability = course.AvailabilityDraft
	}
	return w
}

func (w *Wizard) Editing() bool { return w.CourseID != 0 }

// GoToStep jumps to any step 1..5. Earlier steps are not checked.
func (w *Wizard) GoToStep(s Step) error {
	if w.Step == StepSubmitted {
		return ErrAlreadySubmitted
	}
	if !s.Navigable() {
		return ErrInvalidStep
	}
	w.Step = s
	return nil
}

func (w *Wizard) Next() error {
	if w.Step >= StepReview {
		return w.GoToStep(StepReview)
	}
	return w.GoToStep(w.Step + 1)
}

func (w *Wizard) Back() error {
	if w.Step <= StepInfo {
		return w.GoToStep(StepInfo)
	}
	return w.GoToStep(w.Step - 1)
}

func (w *Wizard) SetInfo(info schemas.CourseInfoForm) {
	w.Draft.Name = info.Name
	w.Draft.Description = info.Description
	w.Draft.SubjectID = info.SubjectID
	w.Draft.Tools = info.Tools
}

func (w *Wizard) SetPhoto(photo Photo) {
	w.Draft.MainPhoto = &photo
}

func (w *Wizard) SetDetails(details schemas.CourseDetailsForm) error {
	if len(details.KeyPoints) > MaxKeyPoints || len(details.Personas) > MaxPersonas {
		return ErrTooManyEntries
	}
	w.Draft.KeyPoints = details.KeyPoints
	w.Draft.Personas = details.Personas
	return nil
}

func (w *Wizard) SetPrice(price schemas.CoursePriceForm) {
	w.Draft.Price = price.Price
	w.Draft.Availability = course.Availability(price.Availability)
}

// Payload builds the course body. imageURL is empty unless an upload succeeded.
func (w *Wizard) Payload(imageURL string) course.CoursePayload {
	return course.CoursePayload{
		Name:         w.Draft.Name,
		Description:  w.Draft.Description,
		SubjectID:    w.Draft.SubjectID,
		Tools:        w.Draft.Tools,
		Price:        w.Draft.Price,
		Availability: w.Draft.Availability,
		KeyPoints:    nonNil(w.Draft.KeyPoints),
		Personas:     nonNil(w.Draft.Personas),
		ImageURL:     imageURL,
	}
}

func capped(values []string, limit int) []string {
	if len(values) > limit {
		values = values[:limit]
	}
	return append([]string(nil), values...)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
