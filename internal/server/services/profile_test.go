package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
)

func TestProfileServiceUpdateTeacher(t *testing.T) {
	ctx := context.Background()

	db, _ := newSQLMockDB(t)
	defer db.Close()
	rm := newFakeRepoManager(db)
	s := NewProfileService(rm)

	t.Run("valid profile passes through", func(t *testing.T) {
		p := &models.TeacherProfile{
			Profile: models.Profile{
				UserID: "tea-1",
				Name:   "Amit Kumar",
				Email:  "amit@example.edu",
				Phone:  "+91 98765 43210",
			},
			Department: "Mechanical",
			Subjects:   []string{"Thermodynamics"},
		}

		saved, err := s.UpdateTeacher(ctx, p)
		require.NoError(t, err)
		require.Equal(t, p, saved)
		require.Equal(t, p, rm.p.updatedTeacher)
	})

	t.Run("blank name", func(t *testing.T) {
		p := &models.TeacherProfile{Profile: models.Profile{UserID: "tea-1", Name: "   "}}
		_, err := s.UpdateTeacher(ctx, p)
		require.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("malformed email", func(t *testing.T) {
		p := &models.TeacherProfile{Profile: models.Profile{UserID: "tea-1", Name: "Amit", Email: "not-an-email"}}
		_, err := s.UpdateTeacher(ctx, p)
		require.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("malformed phone", func(t *testing.T) {
		p := &models.TeacherProfile{Profile: models.Profile{UserID: "tea-1", Name: "Amit", Phone: "abc"}}
		_, err := s.UpdateTeacher(ctx, p)
		require.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("empty email and phone are allowed", func(t *testing.T) {
		p := &models.TeacherProfile{Profile: models.Profile{UserID: "tea-1", Name: "Amit"}}
		_, err := s.UpdateTeacher(ctx, p)
		require.NoError(t, err)
	})
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name    string
		n, e, p string
		wantErr bool
	}{
		{"all valid", "Amit", "a@b.co", "+91 98765 43210", false},
		{"name only", "Amit", "", "", false},
		{"blank name", "", "a@b.co", "", true},
		{"email missing domain", "Amit", "a@b", "", true},
		{"phone too short", "Amit", "", "12", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContact(tt.n, tt.e, tt.p)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
