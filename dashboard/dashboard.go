package dashboard

import (
	"context"
	"lms/models"
	"lms/models/course"
	"time"
)

// Source is the slice of the LMS API the dashboards read
type Source interface {
	ListCourses(ctx context.Context, q models.PageQuery) (models.Page[course.Course], error)
	ListMyCourses(ctx context.Context, q models.PageQuery) (models.Page[course.Course], error)
	GetCourse(ctx context.Context, courseID uint) (course.Course, error)
	ListSections(ctx context.Context, courseID uint) ([]course.Section, error)
	ListReviews(ctx context.Context, courseID uint, q models.PageQuery) (models.Page[course.Review], error)
	ListSubjects(ctx context.Context) ([]course.Subject, error)
	ListWithdrawals(ctx context.Context, filter models.WithdrawalFilter) (models.Page[models.Withdrawal], error)
	ListMyEnrollments(ctx context.Context, q models.PageQuery) (models.Page[course.Enrollment], error)
	ListCourseEnrollments(ctx context.Context, courseID uint, q models.PageQuery) (models.Page[course.Enrollment], error)
}

// View is what GET /dashboard returns. Exactly one role section is set.
type View struct {
	Role    models.Role       `json:"role"`
	Sidebar []NavItem         `json:"sidebar"`
	Manager *ManagerDashboard `json:"manager,omitempty"`
	Mentor  *MentorDashboard  `json:"mentor,omitempty"`
	Student *StudentDashboard `json:"student,omitempty"`
}

type Builder struct {
	Source Source
	Now    func() time.Time
}

func NewBuilder(source Source) *Builder {
	return &Builder{Source: source, Now: time.Now}
}

// Build dispatches on role
func (b *Builder) Build(ctx context.Context, role models.Role) (View, error) {
	return models.VisitRole[View](role, viewVisitor{ctx: ctx, b: b})
}

type viewVisitor struct {
	ctx context.Context
	b   *Builder
}

func (v viewVisitor) Manager() (View, error) {
	d, err := v.b.manager(v.ctx)
	if err != nil {
		return View{}, err
	}
	return View{Role: models.RoleManager, Sidebar: managerNav, Manager: &d}, nil
}

func (v viewVisitor) Mentor() (View, error) {
	d, err := v.b.mentor(v.ctx)
	if err != nil {
		return View{}, err
	}
	return View{Role: models.RoleMentor, Sidebar: mentorNav, Mentor: &d}, nil
}

func (v viewVisitor) Student() (View, error) {
	d, err := v.b.student(v.ctx)
	if err != nil {
		return View{}, err
	}
	return View{Role: models.RoleStudent, Sidebar: studentNav, Student: &d}, nil
}
