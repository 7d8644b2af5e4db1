package course

import "time"

// Enrollment links a student to a course
type Enrollment struct {
	ID          uint      `json:"id"`
	CourseID    uint      `json:"course_id"`
	Course      *Course   `json:"course,omitempty"`
	StudentID   uint      `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	Progress    float64   `json:"progress"` // percent, 0..100
	Status      string    `json:"status"`   // PENDING_PAYMENT, ACTIVE, COMPLETED
	EnrolledAt  time.Time `json:"enrolled_at"`
}

// EnrollResult carries the payment redirect the browser must follow
type EnrollResult struct {
	EnrollmentID uint   `json:"enrollment_id"`
	PaymentURL   string `json:"payment_url"`
}
