package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
)

func TestAttendanceServiceMark(t *testing.T) {
	ctx := context.Background()

	db, _ := newSQLMockDB(t)
	defer db.Close()
	rm := newFakeRepoManager(db)
	rm.u.byID["stu-1"] = &models.User{ID: "stu-1", Role: common.RoleStudent}
	rm.u.byID["tea-1"] = &models.User{ID: "tea-1", Role: common.RoleTeacher}

	s := NewAttendanceService(rm)

	t.Run("marks one slot with truncated date", func(t *testing.T) {
		classDate := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

		rec, err := s.Mark(ctx, "tea-1", "stu-1", classDate, "Mathematics", true)
		require.NoError(t, err)
		require.Equal(t, "stu-1", rec.StudentID)
		require.Equal(t, "tea-1", rec.MarkedBy)
		require.True(t, rec.Present)
		require.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), rec.ClassDate)
	})

	t.Run("empty subject", func(t *testing.T) {
		_, err := s.Mark(ctx, "tea-1", "stu-1", time.Now(), "  ", true)
		require.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("zero date", func(t *testing.T) {
		_, err := s.Mark(ctx, "tea-1", "stu-1", time.Time{}, "Mathematics", true)
		require.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := s.Mark(ctx, "tea-1", "ghost", time.Now(), "Mathematics", true)
		require.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("marking a teacher as student", func(t *testing.T) {
		_, err := s.Mark(ctx, "tea-1", "tea-1", time.Now(), "Mathematics", true)
		require.ErrorIs(t, err, common.ErrValidation)
	})
}

func TestAttendanceServiceForStudent(t *testing.T) {
	ctx := context.Background()

	db, _ := newSQLMockDB(t)
	defer db.Close()
	rm := newFakeRepoManager(db)
	rm.a.byStudent = []*models.AttendanceRecord{
		{StudentID: "stu-1", Present: true},
		{StudentID: "stu-1", Present: true},
		{StudentID: "stu-1", Present: false},
		{StudentID: "stu-1", Present: true},
	}

	s := NewAttendanceService(rm)

	recs, sum, err := s.ForStudent(ctx, "stu-1")
	require.NoError(t, err)
	require.Len(t, recs, 4)
	require.Equal(t, 4, sum.Total)
	require.Equal(t, 3, sum.Present)
	require.InDelta(t, 75.0, sum.Percent, 0.001)
}

func TestAttendanceServiceForStudentEmpty(t *testing.T) {
	ctx := context.Background()

	db, _ := newSQLMockDB(t)
	defer db.Close()
	rm := newFakeRepoManager(db)

	s := NewAttendanceService(rm)

	recs, sum, err := s.ForStudent(ctx, "stu-1")
	require.NoError(t, err)
	require.Empty(t, recs)
	require.Zero(t, sum.Percent)
}
