package controllers

import (
	"errors"
	"lms/authoring"
	"lms/dashboard"
	"lms/middleware"
	"lms/schemas"
	"lms/services"
	"lms/wizard"

	"github.com/gofiber/fiber/v2"
)

var (
	api       *services.Client
	drafts    *wizard.Store
	submitter *wizard.Submitter
	sections  *authoring.SectionCoordinator
	lessons   *authoring.LessonCoordinator
	pages     *dashboard.Builder
)

// Setup wires the course handlers to the LMS client and the draft store
func Setup(client *services.Client, store *wizard.Store, cache authoring.SectionCache, policy wizard.ImageFailurePolicy) {
	api = client
	drafts = store
	submitter = &wizard.Submitter{API: client, Policy: policy}
	sections = authoring.NewSectionCoordinator(client, cache)
	lessons = authoring.NewLessonCoordinator(client, cache)
	pages = dashboard.NewBuilder(client)
}

// respondError maps domain errors to responses and everything else to the
// upstream status
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var fieldErrs schemas.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return middleware.ValidationErrorResponse(c, fieldErrs)
	case errors.Is(err, authoring.ErrNotConfirmed):
		return middleware.JsonResponse(c, fiber.StatusPreconditionRequired, false, "Confirmation required!", nil)
	case errors.Is(err, authoring.ErrLessonNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	case errors.Is(err, wizard.ErrDraftNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Draft not found!", nil)
	case errors.Is(err, wizard.ErrAlreadySubmitted):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Draft was already submitted!", nil)
	case errors.Is(err, wizard.ErrTooManyEntries):
		return middleware.ValidationErrorResponse(c, map[string]string{"details": "At most 4 key points and 4 personas!"})
	case errors.Is(err, wizard.ErrInvalidStep):
		return middleware.ValidationErrorResponse(c, map[string]string{"step": "Step must be between 1 and 5!"})
	}
	return middleware.UpstreamErrorResponse(c, err, fallback)
}
