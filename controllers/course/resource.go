package controllers

import (
	"lms/middleware"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadResource attaches a checked document to the course
func UploadResource(c *fiber.Ctx) error {
	courseID := c.Locals("course_id").(uint)
	file := c.Locals("resourceFile").(utils.UploadedFile)

	resource, err := api.UploadResource(middleware.UpstreamContext(c), courseID, file.Name, file.Data)
	if err != nil {
		return respondError(c, err, "Failed to upload resource!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource uploaded successfully!", resource)
}
