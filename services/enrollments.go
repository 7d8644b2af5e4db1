package services

import (
	"context"
	"lms/models"
	"lms/models/course"

	"github.com/go-resty/resty/v2"
)

// Enroll starts an enrollment and returns the payment redirect
func (c *Client) Enroll(ctx context.Context, courseID uint) (course.EnrollResult, error) {
	return call[course.EnrollResult](c.request(ctx), resty.MethodPost, "/courses/"+id(courseID)+"/enroll")
}

func (c *Client) ListMyEnrollments(ctx context.Context, q models.PageQuery) (models.Page[course.Enrollment], error) {
	r := c.request(ctx).SetQueryParams(pageParams(q))
	return call[models.Page[course.Enrollment]](r, resty.MethodGet, "/me/enrollments")
}

func (c *Client) ListCourseEnrollments(ctx context.Context, courseID uint, q models.PageQuery) (models.Page[course.Enrollment], error) {
	r := c.request(ctx).SetQueryParams(pageParams(q))
	return call[models.Page[course.Enrollment]](r, resty.MethodGet, "/courses/"+id(courseID)+"/enrollments")
}
