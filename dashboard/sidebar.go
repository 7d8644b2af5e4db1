package dashboard

import "lms/models"

type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

var managerNav = []NavItem{
	{"Dashboard", "/dashboard"},
	{"Courses", "/courses"},
	{"Subjects", "/manager/subjects"},
	{"Topics", "/manager/topics"},
	{"Withdrawals", "/manager/withdrawals"},
}

var mentorNav = []NavItem{
	{"Dashboard", "/dashboard"},
	{"My courses", "/mentor/courses"},
	{"New course", "/mentor/drafts"},
	{"Withdrawals", "/mentor/withdrawals"},
}

var studentNav = []NavItem{
	{"Dashboard", "/dashboard"},
	{"Browse courses", "/courses"},
	{"My learning", "/enrollments"},
}

// Sidebar returns the navigation for role
func Sidebar(role models.Role) ([]NavItem, error) {
	return models.VisitRole[[]NavItem](role, sidebarVisitor{})
}

type sidebarVisitor struct{}

func (sidebarVisitor) Manager() ([]NavItem, error) { return managerNav, nil }
func (sidebarVisitor) Mentor() ([]NavItem, error)  { return mentorNav, nil }
func (sidebarVisitor) Student() ([]NavItem, error) { return studentNav, nil }
