package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/repomanager"
)

// AttendanceService marks and reads attendance slots. A slot is identified
// by (student, class date, subject); marking the same slot twice overwrites
// the earlier mark rather than appending a duplicate.
type AttendanceService struct {
	rm repomanager.RepositoryManager
}

func NewAttendanceService(rm repomanager.RepositoryManager) *AttendanceService {
	return &AttendanceService{rm: rm}
}

// Summary aggregates a student's records for the dashboard widget.
type Summary struct {
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Percent float64 `json:"percent"`
}

// Mark records one attendance slot on behalf of the given teacher. The
// student must exist and hold the student role.
func (s *AttendanceService) Mark(ctx context.Context, teacherID, studentID string, classDate time.Time, subject string, present bool) (*models.AttendanceRecord, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, fmt.Errorf("%w: subject required", common.ErrValidation)
	}
	if classDate.IsZero() {
		return nil, fmt.Errorf("%w: class date required", common.ErrValidation)
	}

	student, err := s.rm.Users(s.rm.Conn()).GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown student", common.ErrValidation)
		}
		return nil, common.ErrInternal
	}
	if student.Role != common.RoleStudent {
		return nil, fmt.Errorf("%w: %s is not a student", common.ErrValidation, studentID)
	}

	rec := &models.AttendanceRecord{
		StudentID: studentID,
		ClassDate: classDate.UTC().Truncate(24 * time.Hour),
		Subject:   subject,
		Present:   present,
		MarkedBy:  teacherID,
	}
	return s.rm.Attendance(s.rm.Conn()).Upsert(ctx, rec)
}

// ForStudent returns a student's records with a presence summary.
func (s *AttendanceService) ForStudent(ctx context.Context, studentID string) ([]*models.AttendanceRecord, Summary, error) {
	recs, err := s.rm.Attendance(s.rm.Conn()).ListByStudent(ctx, studentID)
	if err != nil {
		return nil, Summary{}, err
	}

	sum := Summary{Total: len(recs)}
	for _, r := range recs {
		if r.Present {
			sum.Present++
		}
	}
	if sum.Total > 0 {
		sum.Percent = 100 * float64(sum.Present) / float64(sum.Total)
	}
	return recs, sum, nil
}

// Sheet returns all marks for one (date, subject) slot, for the teacher's
// review screen.
func (s *AttendanceService) Sheet(ctx context.Context, classDate time.Time, subject string) ([]*models.AttendanceRecord, error) {
	return s.rm.Attendance(s.rm.Conn()).ListBySlot(ctx, classDate.UTC().Truncate(24*time.Hour), subject)
}
