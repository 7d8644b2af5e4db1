package controllers

import (
	"lms/authoring"
	"lms/middleware"
	"lms/schemas"

	"github.com/gofiber/fiber/v2"
)

// ListSections returns the course sections in order_index order
func ListSections(c *fiber.Ctx) error {
	courseID := c.Locals("course_id").(uint)

	list, err := sections.List(middleware.UpstreamContext(c), courseID)
	if err != nil {
		return respondError(c, err, "Failed to fetch sections!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", list)
}

func CreateSection(c *fiber.Ctx) error {
	courseID := c.Locals("course_id").(uint)
	form := c.Locals("sectionForm").(*schemas.SectionForm)

	section, err := sections.Create(middleware.UpstreamContext(c), courseID, *form)
	if err != nil {
		return respondError(c, err, "Failed to create section!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// GetSectionForm returns the edit form pre-filled from the current section
func GetSectionForm(c *fiber.Ctx) error {
	courseID := c.Locals("course_id").(uint)
	sectionID := c.Locals("section_id").(uint)

	list, err := sections.List(middleware.UpstreamContext(c), courseID)
	if err != nil {
		return respondError(c, err, "Failed to fetch section!")
	}

	// Find the section in the course list
	for _, s := range list {
		if s.ID == sectionID {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Section fetched successfully!", sections.EditForm(s))
		}
	}
	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
}

func UpdateSection(c *fiber.Ctx) error {
	courseID := c.Locals("course_id").(uint)
	sectionID := c.Locals("section_id").(uint)
	form := c.Locals("sectionForm").(*schemas.SectionForm)

	section, err := sections.Update(middleware.UpstreamContext(c), courseID, sectionID, *form)
	if err != nil {
		return respondError(c, err, "Failed to update section!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

// DeleteSection needs ?confirm=true; without it nothing is sent upstream
func DeleteSection(c *fiber.Ctx) error {
	courseID := c.Locals("course_id").(uint)
	sectionID := c.Locals("section_id").(uint)
	confirmed := authoring.Answer(c.Locals("confirmed").(bool))

	if err := sections.Delete(middleware.UpstreamContext(c), courseID, sectionID, confirmed); err != nil {
		return respondError(c, err, "Failed to delete section!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}
