// Package models defines the persisted entities of the portal server.
package models

import (
	"time"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

// User is a login account. Role is immutable after provisioning; changing a
// person's role means provisioning a new account.
type User struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Role         common.Role `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Profile is the role-agnostic part of a dashboard profile. The UserID is a
// back-reference to the owning User, not ownership.
type Profile struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Bio       string    `json:"bio"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeacherProfile extends Profile with teaching-specific fields.
type TeacherProfile struct {
	Profile
	Department string   `json:"department"`
	Subjects   []string `json:"subjects"`
}

// StudentProfile extends Profile with enrolment fields. Marks maps a subject
// name onto the latest recorded score.
type StudentProfile struct {
	Profile
	RollNumber string             `json:"roll_number"`
	ClassName  string             `json:"class_name"`
	Marks      map[string]float64 `json:"marks,omitempty"`
}

// AdminProfile extends Profile with the administrative designation.
type AdminProfile struct {
	Profile
	Designation string `json:"designation"`
}

// AttendanceRecord is one marked slot. At most one record exists per
// (StudentID, ClassDate, Subject); re-marking the same slot overwrites
// Present and MarkedBy.
type AttendanceRecord struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	ClassDate time.Time `json:"class_date"`
	Subject   string    `json:"subject"`
	Present   bool      `json:"present"`
	MarkedBy  string    `json:"marked_by"`
	MarkedAt  time.Time `json:"marked_at"`
}

// Notice is a public announcement shown on the notice board.
type Notice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	PostedBy  string    `json:"posted_by"`
	CreatedAt time.Time `json:"created_at"`
}

// StudyMaterial references an uploaded document. FileKey points into object
// storage; the file itself never passes through this server.
type StudyMaterial struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subject    string    `json:"subject"`
	ClassName  string    `json:"class_name"`
	FileKey    string    `json:"file_key"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// AdmissionDetail describes one programme on the public admission page.
type AdmissionDetail struct {
	ID          string    `json:"id"`
	Program     string    `json:"program"`
	Eligibility string    `json:"eligibility"`
	Fees        string    `json:"fees"`
	Seats       int       `json:"seats"`
	UpdatedBy   string    `json:"updated_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}
