// Package profiles persists the role-specific dashboard profiles. Profiles
// are provisioned together with their User and never deleted independently
// (ON DELETE CASCADE).
package profiles

import (
	"context"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
)

type Repository interface {
	// ProvisionEmpty creates the blank profile row matching the user's role.
	// Called inside the same transaction that creates the User.
	ProvisionEmpty(ctx context.Context, userID string, role common.Role, name string) error

	GetTeacher(ctx context.Context, userID string) (*models.TeacherProfile, error)
	UpdateTeacher(ctx context.Context, p *models.TeacherProfile) (*models.TeacherProfile, error)

	GetStudent(ctx context.Context, userID string) (*models.StudentProfile, error)
	UpdateStudent(ctx context.Context, p *models.StudentProfile) (*models.StudentProfile, error)
	ListStudents(ctx context.Context, className string) ([]*models.StudentProfile, error)

	GetAdmin(ctx context.Context, userID string) (*models.AdminProfile, error)
	UpdateAdmin(ctx context.Context, p *models.AdminProfile) (*models.AdminProfile, error)
}
