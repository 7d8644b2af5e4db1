package controllers

import (
	"errors"
	"lms/middleware"
	"lms/models/course"
	"lms/schemas"
	"lms/services"
	"lms/utils"
	"lms/wizard"
	"log"

	"github.com/gofiber/fiber/v2"
)

type draftView struct {
	DraftID        string         `json:"draft_id"`
	CourseID       uint           `json:"course_id,omitempty"`
	CurrentStep    int            `json:"current_step"`
	StepName       string         `json:"step_name"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	SubjectID      uint           `json:"subject_id"`
	Tools          string         `json:"tools"`
	Price          float64        `json:"price"`
	Availability   string         `json:"availability"`
	KeyPoints      []string       `json:"key_points"`
	Personas       []string       `json:"personas"`
	HasMainPhoto   bool           `json:"has_main_photo"`
	ExistingImages []course.Image `json:"existing_images"`
}

func viewOf(w *wizard.Wizard) draftView {
	return draftView{
		DraftID:        w.ID,
		CourseID:       w.CourseID,
		CurrentStep:    int(w.Step),
		StepName:       w.Step.String(),
		Name:           w.Draft.Name,
		Description:    w.Draft.Description,
		SubjectID:      w.Draft.SubjectID,
		Tools:          w.Draft.Tools,
		Price:          w.Draft.Price,
		Availability:   string(w.Draft.Availability),
		KeyPoints:      w.Draft.KeyPoints,
		Personas:       w.Draft.Personas,
		HasMainPhoto:   w.Draft.MainPhoto != nil,
		ExistingImages: w.Draft.ExistingImages,
	}
}

// loadDraft reads the draft of the calling mentor
func loadDraft(c *fiber.Ctx) (*wizard.Wizard, error) {
	return drafts.Load(c.Locals("draftID").(string), c.Locals("userId").(uint))
}

// saveAndRespond persists w and answers with its current state
func saveAndRespond(c *fiber.Ctx, w *wizard.Wizard, status int, message string) error {
	if err := drafts.Save(w); err != nil {
		log.Printf("Error saving draft %s: %v", w.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save draft!", nil)
	}
	return middleware.JsonResponse(c, status, true, message, viewOf(w))
}

// StartDraft opens the wizard for a new course
func StartDraft(c *fiber.Ctx) error {
	w := wizard.New(c.Locals("userId").(uint))
	return saveAndRespond(c, w, fiber.StatusCreated, "Draft created successfully!")
}

// StartEditDraft opens the wizard on an existing course
func StartEditDraft(c *fiber.Ctx) error {
	courseID := c.Locals("course_id").(uint)

	// Load the course being edited
	existing, err := api.GetCourse(middleware.UpstreamContext(c), courseID)
	if services.IsNotFound(err) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if err != nil {
		return respondError(c, err, "Failed to fetch course!")
	}

	w := wizard.FromCourse(c.Locals("userId").(uint), existing)
	return saveAndRespond(c, w, fiber.StatusCreated, "Draft created successfully!")
}

func GetDraft(c *fiber.Ctx) error {
	w, err := loadDraft(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch draft!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft fetched successfully!", viewOf(w))
}

// GoToStep jumps to any step without checking earlier ones, or moves one
// step next/back
func GoToStep(c *fiber.Ctx) error {
	w, err := loadDraft(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch draft!")
	}

	// Move the wizard
	switch c.Locals("direction").(string) {
	case "next":
		err = w.Next()
	case "back":
		err = w.Back()
	default:
		err = w.GoToStep(c.Locals("step").(wizard.Step))
	}
	if err != nil {
		return respondError(c, err, "Failed to change step!")
	}
	return saveAndRespond(c, w, fiber.StatusOK, "Step changed successfully!")
}

func UpdateInfo(c *fiber.Ctx) error {
	w, err := loadDraft(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch draft!")
	}
	w.SetInfo(*c.Locals("validatedCourseInfo").(*schemas.CourseInfoForm))
	if err := w.GoToStep(wizard.StepPhotos); err != nil {
		return respondError(c, err, "Failed to change step!")
	}
	return saveAndRespond(c, w, fiber.StatusOK, "Course info saved!")
}

func UploadMainPhoto(c *fiber.Ctx) error {
	w, err := loadDraft(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch draft!")
	}
	photo := c.Locals("mainPhoto").(utils.UploadedFile)
	w.SetPhoto(wizard.Photo{Name: photo.Name, ContentType: photo.ContentType, Data: photo.Data})
	if err := w.GoToStep(wizard.StepDetails); err != nil {
		return respondError(c, err, "Failed to change step!")
	}
	return saveAndRespond(c, w, fiber.StatusOK, "Main photo saved!")
}

func UpdateDetails(c *fiber.Ctx) error {
	w, err := loadDraft(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch draft!")
	}
	if err := w.SetDetails(*c.Locals("validatedCourseDetails").(*schemas.CourseDetailsForm)); err != nil {
		return respondError(c, err, "Failed to save details!")
	}
	if err := w.GoToStep(wizard.StepPrice); err != nil {
		return respondError(c, err, "Failed to change step!")
	}
	return saveAndRespond(c, w, fiber.StatusOK, "Course details saved!")
}

func UpdatePrice(c *fiber.Ctx) error {
	w, err := loadDraft(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch draft!")
	}
	w.SetPrice(*c.Locals("validatedCoursePrice").(*schemas.CoursePriceForm))
	if err := w.GoToStep(wizard.StepReview); err != nil {
		return respondError(c, err, "Failed to change step!")
	}
	return saveAndRespond(c, w, fiber.StatusOK, "Course price saved!")
}

// CompleteDraft submits the draft. A failed course call keeps the draft.
func CompleteDraft(c *fiber.Ctx) error {
	w, err := loadDraft(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch draft!")
	}

	// Upload the photo and save the course
	outcome, err := submitter.Complete(middleware.UpstreamContext(c), w)
	if err != nil {
		if errors.Is(err, wizard.ErrSubmitFailed) {
			if saveErr := drafts.Save(w); saveErr != nil {
				log.Printf("Error saving draft %s after failed submit: %v", w.ID, saveErr)
			}
		}
		return respondError(c, err, "Failed to save course!")
	}

	// The draft is done with
	if err := drafts.Delete(w.ID, w.MentorID); err != nil {
		log.Printf("Error discarding submitted draft %s: %v", w.ID, err)
	}

	status, message := fiber.StatusCreated, "Course created successfully!" // add mode
	if w.Editing() {
		status, message = fiber.StatusOK, "Course updated successfully!"
	}
	return middleware.JsonResponse(c, status, true, message, outcome)
}

// CancelDraft discards the draft
func CancelDraft(c *fiber.Ctx) error {
	if err := drafts.Delete(c.Locals("draftID").(string), c.Locals("userId").(uint)); err != nil {
		return respondError(c, err, "Failed to discard draft!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Draft discarded successfully!", nil)
}
