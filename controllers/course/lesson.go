package controllers

import (
	"lms/authoring"
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func ListLessons(c *fiber.Ctx) error {
	sectionID := c.Locals("section_id").(uint)

	list, err := lessons.List(middleware.UpstreamContext(c), sectionID)
	if err != nil {
		return respondError(c, err, "Failed to fetch lessons!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", list)
}

// CreateLesson appends the lesson after the section's last one
func CreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("course_id").(uint)
	sectionID := c.Locals("section_id").(uint)
	draft := c.Locals("lessonDraft").(authoring.LessonDraft)

	lesson, err := lessons.Create(middleware.UpstreamContext(c), courseID, sectionID, draft)
	if err != nil {
		return respondError(c, err, "Failed to create lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// GetLessonForm returns the edit form pre-filled from the stored lesson
func GetLessonForm(c *fiber.Ctx) error {
	sectionID := c.Locals("section_id").(uint)
	lessonID := c.Locals("lesson_id").(uint)

	lesson, err := lessons.Get(middleware.UpstreamContext(c), sectionID, lessonID)
	if err != nil {
		return respondError(c, err, "Failed to fetch lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", authoring.DraftFromLesson(lesson))
}

func UpdateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("course_id").(uint)
	sectionID := c.Locals("section_id").(uint)
	lessonID := c.Locals("lesson_id").(uint)
	draft := c.Locals("lessonDraft").(authoring.LessonDraft)

	lesson, err := lessons.Update(middleware.UpstreamContext(c), courseID, sectionID, lessonID, draft)
	if err != nil {
		return respondError(c, err, "Failed to update lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// DeleteLesson needs ?confirm=true
func DeleteLesson(c *fiber.Ctx) error {
	courseID := c.Locals("course_id").(uint)
	lessonID := c.Locals("lesson_id").(uint)
	confirmed := authoring.Answer(c.Locals("confirmed").(bool))

	if err := lessons.Delete(middleware.UpstreamContext(c), courseID, lessonID, confirmed); err != nil {
		return respondError(c, err, "Failed to delete lesson!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
