package courseValidator

import (
	"lms/schemas"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// Section validates :course_id and :section_id
func Section() fiber.Handler {
	return validators.IDs(map[string]string{
		"course_id":  "Course ID",
		"section_id": "Section ID",
	})
}

// SectionBody parses the section form. Rules are checked by the coordinator.
func SectionBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(schemas.SectionForm)
		if err := c.BodyParser(reqData); err != nil {
			return invalid(c, "Invalid request body!")
		}
		c.Locals("sectionForm", reqData)
		return c.Next()
	}
}

// Confirm reads the ?confirm=true answer of a delete
func Confirm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("confirmed", c.QueryBool("confirm", false))
		return c.Next()
	}
}
