package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lms/models"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-2xx answer from the LMS API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lms api: %d %s", e.Status, e.Message)
}

// StatusOf returns the upstream status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// Client talks to the LMS REST API. Every exported method is one HTTP call.
type Client struct {
	http *resty.Client
}

// API is the client used by the controllers
var API *Client

// Initialize sets API
func Initialize(baseURL string, timeout time.Duration) {
	API = New(baseURL, timeout)
}

func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

type tokenKey struct{}

// WithToken attaches the caller's upstream access token to ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

func (c *Client) request(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx)
	if token := tokenFrom(ctx); token != "" {
		r.SetAuthToken(token)
	}
	return r
}

// call executes r and unwraps the {message, data} envelope into T.
func call[T any](r *resty.Request, method, path string) (T, error) {
	var zero T

	resp, err := r.Execute(method, path)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		var failure models.Envelope[json.RawMessage]
		message := resp.Status()
		if err := json.Unmarshal(resp.Body(), &failure); err == nil && failure.Message != "" {
			message = failure.Message
		}
		return zero, &APIError{Status: resp.StatusCode(), Message: message}
	}

	if len(resp.Body()) == 0 {
		return zero, nil
	}

	var envelope models.Envelope[T]
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return zero, fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return envelope.Data, nil
}

func pageParams(q models.PageQuery) map[string]string {
	q = q.Normalize()
	return map[string]string{
		"page":  strconv.Itoa(q.Page),
		"limit": strconv.Itoa(q.Limit),
	}
}

func id(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
