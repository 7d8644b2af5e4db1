package services

import (
	"context"
	"lms/models"
	"time"

	"github.com/go-resty/resty/v2"
)

// ListWithdrawals returns the caller's requests for a mentor, every request for a manager
func (c *Client) ListWithdrawals(ctx context.Context, filter models.WithdrawalFilter) (models.Page[models.Withdrawal], error) {
	r := c.request(ctx).SetQueryParams(pageParams(filter.PageQuery))
	if filter.Status != "" {
		r.SetQueryParam("status", string(filter.Status))
	}
	if !filter.From.IsZero() {
		r.SetQueryParam("from", filter.From.Format(time.RFC3339))
	}
	if !filter.To.IsZero() {
		r.SetQueryParam("to", filter.To.Format(time.RFC3339))
	}
	return call[models.Page[models.Withdrawal]](r, resty.MethodGet, "/withdrawals")
}

func (c *Client) RequestWithdrawal(ctx context.Context, req models.WithdrawalRequest) (models.Withdrawal, error) {
	return call[models.Withdrawal](c.request(ctx).SetBody(req), resty.MethodPost, "/withdrawals")
}

func (c *Client) ApproveWithdrawal(ctx context.Context, withdrawalID uint) (models.Withdrawal, error) {
	return call[models.Withdrawal](c.request(ctx), resty.MethodPost, "/withdrawals/"+id(withdrawalID)+"/approve")
}

func (c *Client) RejectWithdrawal(ctx context.Context, withdrawalID uint, note string) (models.Withdrawal, error) {
	r := c.request(ctx).SetBody(map[string]string{"note": note})
	return call[models.Withdrawal](r, resty.MethodPost, "/withdrawals/"+id(withdrawalID)+"/reject")
}
