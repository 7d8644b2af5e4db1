package courseValidator

import (
	"lms/authoring"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// Lesson validates :course_id, :section_id and :lesson_id
func Lesson() fiber.Handler {
	return validators.IDs(map[string]string{
		"course_id":  "Course ID",
		"section_id": "Section ID",
		"lesson_id":  "Lesson ID",
	})
}

// LessonBody parses the lesson form. Both content fields may be present;
// only the one matching content_type is used.
func LessonBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := authoring.NewLessonDraft()
		if err := c.BodyParser(&reqData); err != nil {
			return invalid(c, "Invalid request body!")
		}
		c.Locals("lessonDraft", reqData)
		return c.Next()
	}
}
