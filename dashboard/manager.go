package dashboard

import (
	"context"
	"lms/models"
	"lms/models/course"
)

type ManagerDashboard struct {
	TotalCourses       int                 `json:"total_courses"`
	PendingWithdrawals []models.Withdrawal `json:"pending_withdrawals"`
	PendingCount       int                 `json:"pending_count"`
	Subjects           []course.Subject    `json:"subjects"`
}

func (b *Builder) manager(ctx context.Context) (ManagerDashboard, error) {
	courses, err := b.Source.ListCourses(ctx, models.PageQuery{Page: 1, Limit: 1})
	if err != nil {
		return ManagerDashboard{}, err
	}

	pending, err := b.Source.ListWithdrawals(ctx, models.WithdrawalFilter{
		Status:    models.WithdrawalPending,
		PageQuery: models.PageQuery{Page: 1, Limit: 10},
	})
	if err != nil {
		return ManagerDashboard{}, err
	}

	subjects, err := b.Source.ListSubjects(ctx)
	if err != nil {
		return ManagerDashboard{}, err
	}

	return ManagerDashboard{
		TotalCourses:       courses.Meta.Total,
		PendingWithdrawals: pending.Items,
		PendingCount:       pending.Meta.Total,
		Subjects:           subjects,
	}, nil
}
