package controllers

import (
	"lms/dashboard"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
)

// ListCourses returns the public catalog
func ListCourses(c *fiber.Ctx) error {
	q := c.Locals("pageQuery").(models.PageQuery)

	courses, err := api.ListCourses(middleware.UpstreamContext(c), q)
	if err != nil {
		return respondError(c, err, "Failed to fetch courses!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// ListMyCourses returns the calling mentor's courses
func ListMyCourses(c *fiber.Ctx) error {
	q := c.Locals("pageQuery").(models.PageQuery)

	courses, err := api.ListMyCourses(middleware.UpstreamContext(c), q)
	if err != nil {
		return respondError(c, err, "Failed to fetch courses!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// CourseDetail returns the course plus the data of the selected tab
func CourseDetail(c *fiber.Ctx) error {
	role := c.Locals("role").(models.Role)
	courseID := c.Locals("course_id").(uint)
	tab := dashboard.ParseTab(c.Locals("tab").(string)) // unknown tabs open the overview
	q := c.Locals("pageQuery").(models.PageQuery)

	detail, err := pages.CourseDetail(middleware.UpstreamContext(c), role, courseID, tab, q)
	if err != nil {
		return respondError(c, err, "Failed to fetch course details!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", detail)
}

// Enroll starts an enrollment and hands back the payment redirect
func Enroll(c *fiber.Ctx) error {
	courseID := c.Locals("course_id").(uint)

	// The LMS API answers with the payment URL to redirect to
	result, err := api.Enroll(middleware.UpstreamContext(c), courseID)
	if err != nil {
		return respondError(c, err, "Failed to enroll in course!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment started! Complete the payment to continue.", result)
}

func ListMyEnrollments(c *fiber.Ctx) error {
	q := c.Locals("pageQuery").(models.PageQuery)

	enrollments, err := api.ListMyEnrollments(middleware.UpstreamContext(c), q)
	if err != nil {
		return respondError(c, err, "Failed to fetch enrollments!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}
