package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/models"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/profile"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

// profile commands dispatch on the session role; each role has its own
// editor instance so edits survive between commands.

func (a *App) showProfile(ctx context.Context) {
	switch a.session.Snapshot().Role() {
	case common.RoleTeacher:
		a.showTeacherProfile(ctx)
	case common.RoleStudent:
		a.showStudentProfile(ctx)
	case common.RoleAdmin:
		a.showAdminProfile(ctx)
	default:
		log.Printf("Please login first")
	}
}

func (a *App) editProfile(ctx context.Context) {
	switch a.session.Snapshot().Role() {
	case common.RoleTeacher:
		a.editTeacherProfile(ctx)
	case common.RoleStudent:
		a.editStudentProfile(ctx)
	case common.RoleAdmin:
		a.editAdminProfile(ctx)
	default:
		log.Printf("Please login first")
	}
}

func (a *App) saveProfile(ctx context.Context) {
	var err error
	switch a.session.Snapshot().Role() {
	case common.RoleTeacher:
		if a.teacherEditor == nil {
			log.Printf("Nothing to save")
			return
		}
		err = a.teacherEditor.Save(ctx)
	case common.RoleStudent:
		if a.studentEditor == nil {
			log.Printf("Nothing to save")
			return
		}
		err = a.studentEditor.Save(ctx)
	case common.RoleAdmin:
		if a.adminEditor == nil {
			log.Printf("Nothing to save")
			return
		}
		err = a.adminEditor.Save(ctx)
	default:
		log.Printf("Please login first")
		return
	}
	reportSave(err)
}

// reportSave maps the failure taxonomy onto distinct user-facing messages.
func reportSave(err error) {
	switch {
	case err == nil:
		log.Printf("Profile saved")
	case errors.Is(err, profile.ErrSaveInFlight):
		log.Printf("A save is already in progress")
	case errors.Is(err, common.ErrValidation):
		log.Printf("Validation failed: %v", err)
	case errors.Is(err, common.ErrTimeout):
		log.Printf("Save timed out, please retry")
	case errors.Is(err, common.ErrUnauthorized):
		log.Printf("Session expired, please login again")
	case errors.Is(err, common.ErrNetwork):
		log.Printf("Server unreachable: %v", err)
	default:
		log.Printf("Save failed: %v", err)
	}
}

func (a *App) cancelProfile() {
	switch a.session.Snapshot().Role() {
	case common.RoleTeacher:
		if a.teacherEditor != nil {
			a.teacherEditor.Cancel()
		}
	case common.RoleStudent:
		if a.studentEditor != nil {
			a.studentEditor.Cancel()
		}
	case common.RoleAdmin:
		if a.adminEditor != nil {
			a.adminEditor.Cancel()
		}
	}
	log.Printf("Edits discarded")
}

// promptContact collects the shared profile fields, keeping the current
// value when the user enters an empty line.
func (a *App) promptContact(p *models.Profile) {
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &p.Name},
		{"Email", &p.Email},
		{"Phone", &p.Phone},
		{"Bio", &p.Bio},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.label, *f.dst), os.Stdout)
		if err != nil {
			return
		}
		if v != "" {
			*f.dst = v
		}
	}
}

func (a *App) showTeacherProfile(ctx context.Context) {
	if !a.authorize(common.RoleTeacher) {
		return
	}
	if a.teacherEditor == nil {
		a.teacherEditor = profile.NewTeacherEditor(a.api, a.config)
	}
	if err := a.teacherEditor.Fetch(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}
	p := a.teacherEditor.Working()
	fmt.Printf("Name:       %s\nEmail:      %s\nPhone:      %s\nBio:        %s\n", p.Name, p.Email, p.Phone, p.Bio)
	fmt.Printf("Department: %s\nSubjects:   %s\n", p.Department, strings.Join(p.Subjects, ", "))
}

func (a *App) editTeacherProfile(ctx context.Context) {
	if !a.authorize(common.RoleTeacher) {
		return
	}
	if a.teacherEditor == nil {
		a.teacherEditor = profile.NewTeacherEditor(a.api, a.config)
		if err := a.teacherEditor.Fetch(ctx); err != nil {
			log.Printf("error: %v", err)
			return
		}
	}
	a.teacherEditor.Edit()
	p := a.teacherEditor.Working()

	a.promptContact(&p.Profile)
	if v, err := GetSimpleText(a.reader, fmt.Sprintf("Department [%s]", p.Department), os.Stdout); err == nil && v != "" {
		p.Department = v
	}
	if v, err := GetSimpleText(a.reader, fmt.Sprintf("Subjects, comma separated [%s]", strings.Join(p.Subjects, ", ")), os.Stdout); err == nil && v != "" {
		var subjects []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				subjects = append(subjects, s)
			}
		}
		p.Subjects = subjects
	}

	a.teacherEditor.SetWorking(p)
	log.Printf("Edits staged, use 'save' to persist or 'cancel' to discard")
}

func (a *App) showStudentProfile(ctx context.Context) {
	if !a.authorize(common.RoleStudent) {
		return
	}
	if a.studentEditor == nil {
		a.studentEditor = profile.NewStudentEditor(a.api, a.config)
	}
	if err := a.studentEditor.Fetch(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}
	p := a.studentEditor.Working()
	fmt.Printf("Name:   %s\nEmail:  %s\nPhone:  %s\nBio:    %s\n", p.Name, p.Email, p.Phone, p.Bio)
	fmt.Printf("Roll:   %s\nClass:  %s\n", p.RollNumber, p.ClassName)
	for subject, mark := range p.Marks {
		fmt.Printf("  %s: %.1f\n", subject, mark)
	}
}

func (a *App) editStudentProfile(ctx context.Context) {
	if !a.authorize(common.RoleStudent) {
		return
	}
	if a.studentEditor == nil {
		a.studentEditor = profile.NewStudentEditor(a.api, a.config)
		if err := a.studentEditor.Fetch(ctx); err != nil {
			log.Printf("error: %v", err)
			return
		}
	}
	a.studentEditor.Edit()
	p := a.studentEditor.Working()

	a.promptContact(&p.Profile)

	a.studentEditor.SetWorking(p)
	log.Printf("Edits staged, use 'save' to persist or 'cancel' to discard")
}

func (a *App) showAdminProfile(ctx context.Context) {
	if !a.authorize(common.RoleAdmin) {
		return
	}
	if a.adminEditor == nil {
		a.adminEditor = profile.NewAdminEditor(a.api, a.config)
	}
	if err := a.adminEditor.Fetch(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}
	p := a.adminEditor.Working()
	fmt.Printf("Name:        %s\nEmail:       %s\nPhone:       %s\nBio:         %s\n", p.Name, p.Email, p.Phone, p.Bio)
	fmt.Printf("Designation: %s\n", p.Designation)
}

func (a *App) editAdminProfile(ctx context.Context) {
	if !a.authorize(common.RoleAdmin) {
		return
	}
	if a.adminEditor == nil {
		a.adminEditor = profile.NewAdminEditor(a.api, a.config)
		if err := a.adminEditor.Fetch(ctx); err != nil {
			log.Printf("error: %v", err)
			return
		}
	}
	a.adminEditor.Edit()
	p := a.adminEditor.Working()

	a.promptContact(&p.Profile)
	if v, err := GetSimpleText(a.reader, fmt.Sprintf("Designation [%s]", p.Designation), os.Stdout); err == nil && v != "" {
		p.Designation = v
	}

	a.adminEditor.SetWorking(p)
	log.Printf("Edits staged, use 'save' to persist or 'cancel' to discard")
}
