package courseValidator

import (
	"lms/middleware"
	"lms/schemas"
	"lms/utils"
	"lms/validators"
	"lms/wizard"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func invalid(c *fiber.Ctx, message string) error {
	return middleware.JsonResponse(c, fiber.StatusBadRequest, false, message, nil)
}

// DraftID validates the :draft_id param
func DraftID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("draft_id"))
		if err != nil {
			return invalid(c, "Invalid Draft ID!")
		}
		c.Locals("draftID", id.String())
		return c.Next()
	}
}

// GoToStep validates the requested step number, or a "next"/"back" direction
func GoToStep() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Step      int    `json:"step"`
			Direction string `json:"direction"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return invalid(c, "Invalid request body!")
		}

		// A direction wins over a step number
		direction := strings.ToLower(strings.TrimSpace(reqData.Direction))
		switch direction {
		case "next", "back":
			c.Locals("direction", direction)
			return c.Next()
		case "":
		default:
			return middleware.ValidationErrorResponse(c, map[string]string{
				"direction": "Direction must be one of next, back!",
			})
		}

		step := wizard.Step(reqData.Step)
		if !step.Navigable() {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"step": "Step must be between 1 and 5!",
			})
		}

		c.Locals("direction", "")
		c.Locals("step", step)
		return c.Next()
	}
}

func CourseInfo() fiber.Handler {
	return validators.Form[schemas.CourseInfoForm]("validatedCourseInfo")
}

func CourseDetails() fiber.Handler {
	return validators.Form[schemas.CourseDetailsForm]("validatedCourseDetails")
}

func CoursePrice() fiber.Handler {
	return validators.Form[schemas.CoursePriceForm]("validatedCoursePrice")
}

// MainPhoto checks the uploaded image: 2MB at most and an image type
func MainPhoto() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("main_photo")
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"main_photo": "Main photo is required!",
			})
		}

		photo, err := utils.ValidateImageFile(file)
		if err != nil {
			if fileErr, ok := err.(*utils.FileError); ok {
				return middleware.ValidationErrorResponse(c, map[string]string{"main_photo": fileErr.Message})
			}
			return invalid(c, "Could not read the uploaded file!")
		}

		c.Locals("mainPhoto", photo)
		return c.Next()
	}
}
