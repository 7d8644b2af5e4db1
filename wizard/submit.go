package wizard

import (
	"context"
	"errors"
	"fmt"
	"lms/models/course"
	"log"
)

// ImageFailurePolicy decides what a failed main photo upload does to a submit.
// The course call is attempted under both policies.
type ImageFailurePolicy string

const (
	// BestEffort logs the failure and says nothing to the user
	BestEffort ImageFailurePolicy = "best_effort"
	// ReportImageFailure returns the failure as an outcome warning
	ReportImageFailure ImageFailurePolicy = "report"
)

func ParsePolicy(s string) (ImageFailurePolicy, error) {
	switch p := ImageFailurePolicy(s); p {
	case BestEffort, ReportImageFailure:
		return p, nil
	case "":
		return BestEffort, nil
	}
	return "", fmt.Errorf("unknown image failure policy %q", s)
}

const ImageUploadWarning = "Main photo could not be uploaded!"

var ErrSubmitFailed = errors.New("wizard: course could not be saved")

// CourseAPI is the part of the LMS API a submit needs
type CourseAPI interface {
	UploadImage(ctx context.Context, filename string, data []byte) (string, error)
	CreateCourse(ctx context.Context, payload course.CoursePayload) (course.Course, error)
	UpdateCourse(ctx context.Context, courseID uint, payload course.CoursePayload) (course.Course, error)
}

// Outcome of a submit. Warnings is only filled under ReportImageFailure.
type Outcome struct {
	Course   course.Course `json:"course"`
	ImageURL string        `json:"image_url,omitempty"`
	Warnings []string      `json:"warnings,omitempty"`
}

type Submitter struct {
	API    CourseAPI
	Policy ImageFailurePolicy
}

// Complete uploads a new main photo if there is one, then creates or updates
// the course exactly once. Nothing is rolled back when the course call fails;
// the wizard is left on the review step.
func (s *Submitter) Complete(ctx context.Context, w *Wizard) (Outcome, error) {
	var out Outcome
	if w.Step == StepSubmitted {
		return out, ErrAlreadySubmitted
	}

	if photo := w.Draft.MainPhoto; photo != nil {
		url, err := s.API.UploadImage(ctx, photo.Name, photo.Data)
		if err != nil {
			log.Printf("[COURSE-WIZARD] main photo upload failed for draft %s: %v", w.ID, err)
			if s.Policy == ReportImageFailure {
				out.Warnings = append(out.Warnings, ImageUploadWarning)
			}
		} else {
			out.ImageURL = url
		}
	}

	payload := w.Payload(out.ImageURL)

	var (
		saved course.Course
		err   error
	)
	if w.Editing() {
		saved, err = s.API.UpdateCourse(ctx, w.CourseID, payload)
	} else {
		saved, err = s.API.CreateCourse(ctx, payload)
	}
	if err != nil {
		log.Printf("[COURSE-WIZARD] course save failed for draft %s: %v", w.ID, err)
		w.Step = StepReview
		return out, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	out.Course = saved
	w.Step = StepSubmitted
	return out, nil
}
