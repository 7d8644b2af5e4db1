package dashboard

import (
	"context"
	"lms/models"
	"lms/models/course"

	"github.com/jinzhu/now"
)

// MentorDashboard figures are derived from list data and are for display only.
type MentorDashboard struct {
	Courses              []course.Course     `json:"courses"`
	TotalCourses         int                 `json:"total_courses"`
	TotalStudents        int                 `json:"total_students"`
	Revenue              float64             `json:"revenue"`
	WithdrawnThisMonth   float64             `json:"withdrawn_this_month"`
	WithdrawalsThisMonth []models.Withdrawal `json:"withdrawals_this_month"`
}

// Revenue is the sum of price times student count. It ignores refunds and
// discounts, so it is not a ledger figure.
func Revenue(courses []course.Course) float64 {
	var total float64
	for _, c := range courses {
		total += c.Price * float64(c.StudentCount)
	}
	return total
}

func (b *Builder) mentor(ctx context.Context) (MentorDashboard, error) {
	courses, err := b.Source.ListMyCourses(ctx, models.PageQuery{Page: 1, Limit: 100})
	if err != nil {
		return MentorDashboard{}, err
	}

	month := now.With(b.Now())
	withdrawals, err := b.Source.ListWithdrawals(ctx, models.WithdrawalFilter{
		From:      month.BeginningOfMonth(),
		To:        month.EndOfMonth(),
		PageQuery: models.PageQuery{Page: 1, Limit: 100},
	})
	if err != nil {
		return MentorDashboard{}, err
	}

	d := MentorDashboard{
		Courses:              courses.Items,
		TotalCourses:         courses.Meta.Total,
		Revenue:              Revenue(courses.Items),
		WithdrawalsThisMonth: withdrawals.Items,
	}
	for _, c := range courses.Items {
		d.TotalStudents += c.StudentCount
	}
	for _, w := range withdrawals.Items {
		if w.Status != models.WithdrawalRejected {
			d.WithdrawnThisMonth += w.Amount
		}
	}
	return d, nil
}
