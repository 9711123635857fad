package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/guard"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

func (a *App) Login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	err = a.session.Login(ctx, username, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnauthorized):
			log.Printf("Login unsuccessful: invalid username or password")
		case errors.Is(err, common.ErrTimeout):
			log.Printf("Login timed out, please try again")
		case errors.Is(err, common.ErrNetwork):
			log.Printf("Server unreachable: %v", err)
		default:
			log.Printf("Login unsuccessful: %v", err)
		}
		return
	}

	state := a.session.Snapshot()
	log.Printf("Login successful, dashboard: %s", guard.HomeRoute(state.Role()))
}

func (a *App) Logout(ctx context.Context) {
	if err := a.session.Logout(); err != nil {
		log.Printf("error: %v", err)
		return
	}
	a.teacherEditor = nil
	a.studentEditor = nil
	a.adminEditor = nil
	log.Printf("Logged out")
}

// authorize runs the route guard for a command requiring the given role and
// reports the redirect to the user when the view may not render.
func (a *App) authorize(required common.Role) bool {
	d := guard.Decide(a.session.Snapshot(), required)
	switch d.Outcome {
	case guard.Authorized:
		return true
	case guard.Loading:
		log.Printf("Session is still loading, try again")
	case guard.Unauthenticated:
		log.Printf("Please login first")
	case guard.WrongRole:
		log.Printf("Not available for your role, your dashboard is %s", d.RedirectTo)
	}
	return false
}
