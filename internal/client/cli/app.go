// Package cli implements the interactive portal client: a REPL that logs in
// against the backend, restores a persisted session on start, and exposes
// role-gated dashboard commands.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/api"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/config"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/models"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/profile"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/session"
)

type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Context
	reader  *bufio.Reader

	teacherEditor *profile.Editor[*models.TeacherProfile]
	studentEditor *profile.Editor[*models.StudentProfile]
	adminEditor   *profile.Editor[*models.AdminProfile]
}

func NewApp(c *config.Config) *App {
	apiClient := api.NewClient(c.APIBaseURL, c.RequestTimeout)
	store := session.NewFileTokenStore(c.TokenFilePath)
	sess := session.NewContext(apiClient, store)

	return &App{
		config:  c,
		api:     apiClient,
		session: sess,
		reader:  bufio.NewReader(os.Stdin),
	}
}

func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		log.Printf("could not restore previous session: %v", err)
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated
}
