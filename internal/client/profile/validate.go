package profile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/models"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\- ]{6,14}$`)
)

// validateContact applies the local checks shared by every profile form:
// a non-empty name and, when given, plausible email and phone values.
// Failures wrap common.ErrValidation and happen before any network call.
func validateContact(p models.Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if p.Email != "" && !emailPattern.MatchString(p.Email) {
		return fmt.Errorf("%w: invalid email", common.ErrValidation)
	}
	if p.Phone != "" && !phonePattern.MatchString(p.Phone) {
		return fmt.Errorf("%w: invalid phone", common.ErrValidation)
	}
	return nil
}

// ValidateTeacher checks a teacher profile form before saving.
func ValidateTeacher(p *models.TeacherProfile) error {
	return validateContact(p.Profile)
}

// ValidateStudent checks a student profile form before saving.
func ValidateStudent(p *models.StudentProfile) error {
	if err := validateContact(p.Profile); err != nil {
		return err
	}
	if strings.TrimSpace(p.RollNumber) == "" {
		return fmt.Errorf("%w: roll number is required", common.ErrValidation)
	}
	return nil
}

// ValidateAdmin checks an admin profile form before saving.
func ValidateAdmin(p *models.AdminProfile) error {
	return validateContact(p.Profile)
}
