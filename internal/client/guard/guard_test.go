package guard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/models"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/session"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

func authedState(role common.Role) session.State {
	return session.State{
		User:          &models.User{ID: "u-1", Username: "u", Role: role},
		Authenticated: true,
	}
}

func TestDecideLoading(t *testing.T) {
	d := Decide(session.State{Loading: true}, common.RoleAdmin)
	require.Equal(t, Loading, d.Outcome)
	require.Empty(t, d.RedirectTo)
}

func TestDecideUnauthenticated(t *testing.T) {
	d := Decide(session.State{}, common.RoleTeacher)
	require.Equal(t, Unauthenticated, d.Outcome)
	require.Equal(t, LoginRoute, d.RedirectTo)
}

func TestDecideAuthorized(t *testing.T) {
	d := Decide(authedState(common.RoleTeacher), common.RoleTeacher)
	require.Equal(t, Authorized, d.Outcome)
	require.Empty(t, d.RedirectTo)
}

// An admin visiting the teacher dashboard lands on /admin.
func TestDecideWrongRoleRedirectsHome(t *testing.T) {
	d := Decide(authedState(common.RoleAdmin), common.RoleTeacher)
	require.Equal(t, WrongRole, d.Outcome)
	require.Equal(t, "/admin", d.RedirectTo)
}

// A wrong-role session never reaches the protected view, whatever the role.
func TestDecideNeverAuthorizesOtherRoles(t *testing.T) {
	roles := []common.Role{common.RoleAdmin, common.RoleTeacher, common.RoleStudent, common.RoleDeveloper}
	for _, required := range roles {
		for _, actual := range roles {
			if actual == required {
				continue
			}
			d := Decide(authedState(actual), required)
			require.Equal(t, WrongRole, d.Outcome, "required=%s actual=%s", required, actual)
			require.Equal(t, HomeRoute(actual), d.RedirectTo)
		}
	}
}

func TestHomeRoute(t *testing.T) {
	require.Equal(t, "/admin", HomeRoute(common.RoleAdmin))
	require.Equal(t, "/teacher", HomeRoute(common.RoleTeacher))
	require.Equal(t, "/student", HomeRoute(common.RoleStudent))
	require.Equal(t, "/developer", HomeRoute(common.RoleDeveloper))
	require.Equal(t, "/", HomeRoute(common.Role("visitor")))
}
