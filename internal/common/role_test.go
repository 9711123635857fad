package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"admin", RoleAdmin, true},
		{"teacher", RoleTeacher, true},
		{"student", RoleStudent, true},
		{"developer", RoleDeveloper, true},
		{"principal", "", false},
		{"", "", false},
		{"Admin", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		require.Equal(t, tt.ok, ok, "input %q", tt.in)
		require.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestRoleValid(t *testing.T) {
	require.True(t, RoleTeacher.Valid())
	require.False(t, Role("guest").Valid())
}
