package courseValidator

import (
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :course_id param
func CourseID() fiber.Handler {
	return validators.IDs(map[string]string{"course_id": "Course ID"})
}

// ListCourses reads paging
func ListCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("pageQuery", validators.Page(c))
		return c.Next()
	}
}

// CourseDetail validates the course id and reads the tab and paging
func CourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := validators.ID(c, "course_id")
		if !ok {
			return invalid(c, "Invalid Course ID!")
		}
		c.Locals("course_id", courseID)
		c.Locals("tab", c.Query("tab"))
		c.Locals("pageQuery", validators.Page(c))
		return c.Next()
	}
}
