package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

func (a *App) listStudents(ctx context.Context, args []string) {
	if !a.authorize(common.RoleTeacher) {
		return
	}
	className := ""
	if len(args) > 0 {
		className = args[0]
	}

	students, err := a.api.ListStudents(ctx, className)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(students) == 0 {
		fmt.Println("No students found")
		return
	}
	for _, s := range students {
		fmt.Printf("%s  %-20s roll=%s class=%s\n", s.UserID, s.Name, s.RollNumber, s.ClassName)
	}
}

func (a *App) markAttendance(ctx context.Context) {
	if !a.authorize(common.RoleTeacher) {
		return
	}

	studentID, err := GetSimpleText(a.reader, "Student id", os.Stdout)
	if err != nil || studentID == "" {
		log.Printf("Student id is required")
		return
	}
	classDate, err := GetSimpleText(a.reader, "Class date (YYYY-MM-DD)", os.Stdout)
	if err != nil || classDate == "" {
		log.Printf("Class date is required")
		return
	}
	subject, err := GetSimpleText(a.reader, "Subject", os.Stdout)
	if err != nil || subject == "" {
		log.Printf("Subject is required")
		return
	}
	answer, err := GetSimpleText(a.reader, "Present? (y/n)", os.Stdout)
	if err != nil {
		return
	}
	present := strings.HasPrefix(strings.ToLower(answer), "y")

	rec, err := a.api.MarkAttendance(ctx, studentID, classDate, subject, present)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	status := "absent"
	if rec.Present {
		status = "present"
	}
	log.Printf("Marked %s %s for %s on %s", studentID, status, rec.Subject, rec.ClassDate.Format("2006-01-02"))
}

func (a *App) showAttendance(ctx context.Context) {
	if !a.authorize(common.RoleStudent) {
		return
	}

	records, summary, err := a.api.MyAttendance(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	for _, r := range records {
		status := "absent"
		if r.Present {
			status = "present"
		}
		fmt.Printf("%s  %-15s %s\n", r.ClassDate.Format("2006-01-02"), r.Subject, status)
	}
	fmt.Printf("Present %d of %d (%.1f%%)\n", summary.Present, summary.Total, summary.Percent)
}
