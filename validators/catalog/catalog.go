package catalogValidator

import (
	"lms/schemas"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

func Subject() fiber.Handler {
	return validators.Form[schemas.SubjectForm]("validatedSubject")
}

func Topic() fiber.Handler {
	return validators.Form[schemas.TopicForm]("validatedTopic")
}

// ListTopics reads the optional subject_id filter
func ListTopics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subjectID := c.QueryInt("subject_id", 0)
		if subjectID < 0 {
			subjectID = 0
		}
		c.Locals("subjectID", uint(subjectID))
		return c.Next()
	}
}
