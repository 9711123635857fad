package profile

import (
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/api"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/config"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/models"
)

func optionsFromConfig(cfg *config.Config) Options {
	return Options{
		Debounce:      cfg.DebounceInterval,
		FetchThrottle: cfg.FetchThrottle,
		SaveCooldown:  cfg.SaveCooldown,
	}
}

// NewTeacherEditor wires an editor to the teacher profile endpoints.
func NewTeacherEditor(client *api.Client, cfg *config.Config) *Editor[*models.TeacherProfile] {
	return NewEditor(client.TeacherProfile, client.UpdateTeacherProfile, ValidateTeacher, optionsFromConfig(cfg))
}

// NewStudentEditor wires an editor to the student profile endpoints.
func NewStudentEditor(client *api.Client, cfg *config.Config) *Editor[*models.StudentProfile] {
	return NewEditor(client.StudentProfile, client.UpdateStudentProfile, ValidateStudent, optionsFromConfig(cfg))
}

// NewAdminEditor wires an editor to the admin profile endpoints.
func NewAdminEditor(client *api.Client, cfg *config.Config) *Editor[*models.AdminProfile] {
	return NewEditor(client.AdminProfile, client.UpdateAdminProfile, ValidateAdmin, optionsFromConfig(cfg))
}
