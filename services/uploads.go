package services

import (
	"bytes"
	"context"
	"lms/models/course"

	"github.com/go-resty/resty/v2"
)

type uploadedImage struct {
	URL string `json:"url"`
}

// UploadImage stores an image and returns its public URL
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	r := c.request(ctx).SetFileReader("file", filename, bytes.NewReader(data))
	img, err := call[uploadedImage](r, resty.MethodPost, "/uploads/images")
	if err != nil {
		return "", err
	}
	return img.URL, nil
}

// UploadResource attaches a document to a course
func (c *Client) UploadResource(ctx context.Context, courseID uint, filename string, data []byte) (course.Resource, error) {
	r := c.request(ctx).SetFileReader("file", filename, bytes.NewReader(data))
	return call[course.Resource](r, resty.MethodPost, "/courses/"+id(courseID)+"/resources")
}
