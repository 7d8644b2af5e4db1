package schemas

import (
	"lms/models/course"
	"strings"
)

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (f *LoginForm) Normalize() {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
}

type RegisterForm struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,oneof=mentor student"`
}

func (f *RegisterForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Role = strings.ToLower(strings.TrimSpace(f.Role))
}

type VerifyEmailForm struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,min=4,max=10"`
}

func (f *VerifyEmailForm) Normalize() {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Code = strings.TrimSpace(f.Code)
}

type SubjectForm struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=500"`
}

func (f *SubjectForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
}

type TopicForm struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	SubjectID uint   `json:"subject_id" validate:"required"`
}

func (f *TopicForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
}

type SectionForm struct {
	Title      string `json:"title" validate:"required,min=3,max=200"`
	OrderIndex int    `json:"order_index" validate:"gte=1"`
}

func (f *SectionForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
}

// LessonForm is a lesson submission. Only the field matching ContentType is
// expected to be filled.
type LessonForm struct {
	Title           string             `json:"title" validate:"required,min=3,max=200"`
	SectionID       uint               `json:"section_id" validate:"required"`
	OrderIndex      int                `json:"order_index" validate:"gte=0"`
	DurationMinutes int                `json:"duration_minutes" validate:"gte=1,lte=999"`
	ContentType     course.ContentType `json:"content_type" validate:"required,oneof=VIDEO ARTICLE"`
	ContentURL      string             `json:"content_url" validate:"required_if=ContentType VIDEO,omitempty,youtube"`
	ContentText     string             `json:"content_text" validate:"required_if=ContentType ARTICLE"`
}

func (f *LessonForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.ContentType = course.ContentType(strings.ToUpper(strings.TrimSpace(string(f.ContentType))))
	f.ContentURL = strings.TrimSpace(f.ContentURL)
	if strings.TrimSpace(f.ContentText) == "" {
		f.ContentText = ""
	}
}

// CourseInfoForm is wizard step 1
type CourseInfoForm struct {
	Name        string `json:"name" validate:"required,min=3,max=150"`
	Description string `json:"description" validate:"required,min=10"`
	SubjectID   uint   `json:"subject_id" validate:"required"`
	Tools       string `json:"tools" validate:"max=300"`
}

func (f *CourseInfoForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Tools = NormalizeTools(f.Tools)
}

// CourseDetailsForm is wizard step 3
type CourseDetailsForm struct {
	KeyPoints []string `json:"key_points" validate:"max=4,dive,required,max=200"`
	Personas  []string `json:"personas" validate:"max=4,dive,required,max=200"`
}

func (f *CourseDetailsForm) Normalize() {
	f.KeyPoints = trimAll(f.KeyPoints)
	f.Personas = trimAll(f.Personas)
}

// CoursePriceForm is wizard step 4. A zero price with published availability
// is accepted.
type CoursePriceForm struct {
	Price        float64 `json:"price" validate:"gte=0"`
	Availability string  `json:"availability" validate:"required,oneof=draft published"`
}

func (f *CoursePriceForm) Normalize() {
	f.Availability = strings.ToLower(strings.TrimSpace(f.Availability))
}

type WithdrawalForm struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	Method string  `json:"method" validate:"required,oneof=BANK UPI"`
	Note   string  `json:"note" validate:"max=300"`
}

func (f *WithdrawalForm) Normalize() {
	f.Method = strings.ToUpper(strings.TrimSpace(f.Method))
	f.Note = strings.TrimSpace(f.Note)
}

type RejectWithdrawalForm struct {
	Note string `json:"note" validate:"required,min=3,max=300"`
}

func (f *RejectWithdrawalForm) Normalize() {
	f.Note = strings.TrimSpace(f.Note)
}

// NormalizeTools trims each comma separated tool and drops empty ones
func NormalizeTools(tools string) string {
	var kept []string
	for _, tool := range strings.Split(tools, ",") {
		if tool = strings.TrimSpace(tool); tool != "" {
			kept = append(kept, tool)
		}
	}
	return strings.Join(kept, ", ")
}

// trimAll trims entries and drops blank ones
func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
