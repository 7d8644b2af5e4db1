package dashboard

import (
	"context"
	"lms/models"
	"lms/models/course"
)

type StudentDashboard struct {
	Enrollments     []course.Enrollment `json:"enrollments"`
	InProgress      int                 `json:"in_progress"`
	Completed       int                 `json:"completed"`
	AverageProgress float64             `json:"average_progress"`
}

func (b *Builder) student(ctx context.Context) (StudentDashboard, error) {
	enrollments, err := b.Source.ListMyEnrollments(ctx, models.PageQuery{Page: 1, Limit: 50})
	if err != nil {
		return StudentDashboard{}, err
	}

	d := StudentDashboard{Enrollments: enrollments.Items}
	if len(enrollments.Items) == 0 {
		return d, nil
	}

	var sum float64
	for _, e := range enrollments.Items {
		sum += e.Progress
		if e.Progress >= 100 {
			d.Completed++
		} else {
			d.InProgress++
		}
	}
	d.AverageProgress = sum / float64(len(enrollments.Items))
	return d, nil
}
