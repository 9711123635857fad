// Package models defines the wire shapes the portal CLI exchanges with the
// backend REST API.
package models

import (
	"time"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

// User is the authenticated account as reported by the server.
type User struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Role      common.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

// Profile is the role-agnostic part of a dashboard profile.
type Profile struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Bio       string    `json:"bio"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TeacherProfile struct {
	Profile
	Department string   `json:"department"`
	Subjects   []string `json:"subjects"`
}

type StudentProfile struct {
	Profile
	RollNumber string             `json:"roll_number"`
	ClassName  string             `json:"class_name"`
	Marks      map[string]float64 `json:"marks,omitempty"`
}

type AdminProfile struct {
	Profile
	Designation string `json:"designation"`
}

// AttendanceRecord is one marked slot for one student.
type AttendanceRecord struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	ClassDate time.Time `json:"class_date"`
	Subject   string    `json:"subject"`
	Present   bool      `json:"present"`
	MarkedBy  string    `json:"marked_by"`
	MarkedAt  time.Time `json:"marked_at"`
}

// AttendanceSummary aggregates presence for the student dashboard.
type AttendanceSummary struct {
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Percent float64 `json:"percent"`
}

// Notice is one announcement from the public notice board.
type Notice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	PostedBy  string    `json:"posted_by"`
	CreatedAt time.Time `json:"created_at"`
}
