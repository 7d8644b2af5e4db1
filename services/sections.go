package services

import (
	"context"
	"lms/models/course"

	"github.com/go-resty/resty/v2"
)

func (c *Client) ListSections(ctx context.Context, courseID uint) ([]course.Section, error) {
	return call[[]course.Section](c.request(ctx), resty.MethodGet, "/courses/"+id(courseID)+"/sections")
}

func (c *Client) GetSection(ctx context.Context, sectionID uint) (course.Section, error) {
	return call[course.Section](c.request(ctx), resty.MethodGet, "/sections/"+id(sectionID))
}

func (c *Client) CreateSection(ctx context.Context, courseID uint, payload course.SectionPayload) (course.Section, error) {
	r := c.request(ctx).SetBody(payload)
	return call[course.Section](r, resty.MethodPost, "/courses/"+id(courseID)+"/sections")
}

func (c *Client) UpdateSection(ctx context.Context, sectionID uint, payload course.SectionPayload) (course.Section, error) {
	return call[course.Section](c.request(ctx).SetBody(payload), resty.MethodPut, "/sections/"+id(sectionID))
}

func (c *Client) DeleteSection(ctx context.Context, sectionID uint) error {
	_, err := call[any](c.request(ctx), resty.MethodDelete, "/sections/"+id(sectionID))
	return err
}
