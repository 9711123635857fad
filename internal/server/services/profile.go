package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/repomanager"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s-]{6,14}$`)
)

// ProfileService reads and writes the role-specific dashboard profiles.
// Ownership (a teacher edits only their own profile) is enforced by the
// HTTP layer passing the authenticated user id.
type ProfileService struct {
	rm repomanager.RepositoryManager
}

func NewProfileService(rm repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{rm: rm}
}

// validateContact rejects malformed contact fields. Empty email/phone are
// allowed; a blank name is not.
func validateContact(name, email, phone string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name required", common.ErrValidation)
	}
	if email != "" && !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email", common.ErrValidation)
	}
	if phone != "" && !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: invalid phone", common.ErrValidation)
	}
	return nil
}

func (s *ProfileService) Teacher(ctx context.Context, userID string) (*models.TeacherProfile, error) {
	return s.rm.Profiles(s.rm.Conn()).GetTeacher(ctx, userID)
}

func (s *ProfileService) UpdateTeacher(ctx context.Context, p *models.TeacherProfile) (*models.TeacherProfile, error) {
	if err := validateContact(p.Name, p.Email, p.Phone); err != nil {
		return nil, err
	}
	return s.rm.Profiles(s.rm.Conn()).UpdateTeacher(ctx, p)
}

func (s *ProfileService) Student(ctx context.Context, userID string) (*models.StudentProfile, error) {
	return s.rm.Profiles(s.rm.Conn()).GetStudent(ctx, userID)
}

func (s *ProfileService) UpdateStudent(ctx context.Context, p *models.StudentProfile) (*models.StudentProfile, error) {
	if err := validateContact(p.Name, p.Email, p.Phone); err != nil {
		return nil, err
	}
	return s.rm.Profiles(s.rm.Conn()).UpdateStudent(ctx, p)
}

func (s *ProfileService) Admin(ctx context.Context, userID string) (*models.AdminProfile, error) {
	return s.rm.Profiles(s.rm.Conn()).GetAdmin(ctx, userID)
}

func (s *ProfileService) UpdateAdmin(ctx context.Context, p *models.AdminProfile) (*models.AdminProfile, error) {
	if err := validateContact(p.Name, p.Email, p.Phone); err != nil {
		return nil, err
	}
	return s.rm.Profiles(s.rm.Conn()).UpdateAdmin(ctx, p)
}

// ListStudents returns student profiles, optionally filtered by class, for
// the teacher's attendance sheet.
func (s *ProfileService) ListStudents(ctx context.Context, className string) ([]*models.StudentProfile, error) {
	return s.rm.Profiles(s.rm.Conn()).ListStudents(ctx, className)
}
