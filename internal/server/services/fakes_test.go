package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/dbx"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/attendance"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/profiles"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/repomanager"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/users"
)

// -------- test fakes --------

type fakeUsersRepo struct {
	users.Repository
	byUsername map[string]*models.User
	byID       map[string]*models.User

	created   []*models.User
	createErr error

	deleted []string
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u := *user
	u.ID = fmt.Sprintf("u-%d", len(f.created)+1)
	f.created = append(f.created, &u)
	return &u, nil
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	return f.created, nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type provisionCall struct {
	userID string
	role   common.Role
	name   string
}

type fakeProfilesRepo struct {
	profiles.Repository
	provisioned  []provisionCall
	provisionErr error

	teacher *models.TeacherProfile
	student *models.StudentProfile

	updatedTeacher *models.TeacherProfile
}

func (f *fakeProfilesRepo) ProvisionEmpty(ctx context.Context, userID string, role common.Role, name string) error {
	if f.provisionErr != nil {
		return f.provisionErr
	}
	f.provisioned = append(f.provisioned, provisionCall{userID: userID, role: role, name: name})
	return nil
}

func (f *fakeProfilesRepo) GetTeacher(ctx context.Context, userID string) (*models.TeacherProfile, error) {
	if f.teacher == nil {
		return nil, common.ErrNotFound
	}
	return f.teacher, nil
}

func (f *fakeProfilesRepo) UpdateTeacher(ctx context.Context, p *models.TeacherProfile) (*models.TeacherProfile, error) {
	f.updatedTeacher = p
	return p, nil
}

func (f *fakeProfilesRepo) GetStudent(ctx context.Context, userID string) (*models.StudentProfile, error) {
	if f.student == nil {
		return nil, common.ErrNotFound
	}
	return f.student, nil
}

type fakeAttendanceRepo struct {
	attendance.Repository
	upserted  []*models.AttendanceRecord
	upsertErr error

	byStudent []*models.AttendanceRecord
	bySlot    []*models.AttendanceRecord
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, rec *models.AttendanceRecord) (*models.AttendanceRecord, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	r := *rec
	r.ID = fmt.Sprintf("a-%d", len(f.upserted)+1)
	r.MarkedAt = time.Now()
	f.upserted = append(f.upserted, &r)
	return &r, nil
}

func (f *fakeAttendanceRepo) ListByStudent(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error) {
	return f.byStudent, nil
}

func (f *fakeAttendanceRepo) ListBySlot(ctx context.Context, classDate time.Time, subject string) ([]*models.AttendanceRecord, error) {
	return f.bySlot, nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	db *sql.DB
	u  *fakeUsersRepo
	p  *fakeProfilesRepo
	a  *fakeAttendanceRepo
}

func (m *fakeRepoManager) Conn() *sql.DB                                { return m.db }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository           { return m.u }
func (m *fakeRepoManager) Profiles(db dbx.DBTX) profiles.Repository     { return m.p }
func (m *fakeRepoManager) Attendance(db dbx.DBTX) attendance.Repository { return m.a }

// -------- helpers --------

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func newFakeRepoManager(db *sql.DB) *fakeRepoManager {
	return &fakeRepoManager{
		db: db,
		u: &fakeUsersRepo{
			byUsername: map[string]*models.User{},
			byID:       map[string]*models.User{},
		},
		p: &fakeProfilesRepo{},
		a: &fakeAttendanceRepo{},
	}
}
