package services

import (
	"context"
	"lms/models"

	"github.com/go-resty/resty/v2"
)

func (c *Client) Login(ctx context.Context, email, password string) (models.AuthSession, error) {
	r := c.request(ctx).SetBody(map[string]string{"email": email, "password": password})
	return call[models.AuthSession](r, resty.MethodPost, "/auth/login")
}

func (c *Client) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	return call[models.User](c.request(ctx).SetBody(reg), resty.MethodPost, "/auth/register")
}

func (c *Client) VerifyEmail(ctx context.Context, email, code string) error {
	r := c.request(ctx).SetBody(map[string]string{"email": email, "code": code})
	_, err := call[any](r, resty.MethodPost, "/auth/verify-email")
	return err
}

func (c *Client) ResendVerification(ctx context.Context, email string) error {
	r := c.request(ctx).SetBody(map[string]string{"email": email})
	_, err := call[any](r, resty.MethodPost, "/auth/resend-verification")
	return err
}

// Me returns the user owning the token in ctx
func (c *Client) Me(ctx context.Context) (models.User, error) {
	return call[models.User](c.request(ctx), resty.MethodGet, "/auth/me")
}
