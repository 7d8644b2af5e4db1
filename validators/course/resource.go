package courseValidator

import (
	"lms/middleware"
	"lms/utils"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// Resource validates :course_id and the uploaded document
func Resource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := validators.ID(c, "course_id")
		if !ok {
			return invalid(c, "Invalid Course ID!")
		}

		file, err := c.FormFile("file")
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"file": "File is required!"})
		}

		doc, err := utils.ValidateDocumentFile(file)
		if err != nil {
			if fileErr, ok := err.(*utils.FileError); ok {
				return middleware.ValidationErrorResponse(c, map[string]string{"file": fileErr.Message})
			}
			return invalid(c, "Could not read the uploaded file!")
		}

		c.Locals("course_id", courseID)
		c.Locals("resourceFile", doc)
		return c.Next()
	}
}
