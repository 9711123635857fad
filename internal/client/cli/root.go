package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

func (a *App) getStatus() string {
	state := a.session.Snapshot()
	if state.User == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", state.User.Username, state.User.Role)
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to the college portal CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if !a.isLoggedIn() {
		a.Login(ctx)
	}

	for {
		fmt.Printf("portal %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.whoami()

		case "notices":
			a.showNotices(ctx)

		case "profile":
			a.showProfile(ctx)
		case "edit":
			a.editProfile(ctx)
		case "save":
			a.saveProfile(ctx)
		case "cancel":
			a.cancelProfile()

		case "students":
			a.listStudents(ctx, args)
		case "mark":
			a.markAttendance(ctx)
		case "attendance":
			a.showAttendance(ctx)

		case "users":
			a.listUsers(ctx)
		case "adduser":
			a.addUser(ctx)
		case "deluser":
			a.deleteUser(ctx, args)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	if !a.isLoggedIn() {
		fmt.Println("Available commands: login, notices, exit")
		return
	}

	base := "profile, edit, save, cancel, notices, whoami, logout, exit"
	switch a.session.Snapshot().Role() {
	case common.RoleTeacher:
		fmt.Println("Available commands: " + base + ", students, mark")
	case common.RoleStudent:
		fmt.Println("Available commands: " + base + ", attendance")
	case common.RoleAdmin:
		fmt.Println("Available commands: " + base + ", users, adduser, deluser")
	default:
		fmt.Println("Available commands: " + base)
	}
}

func (a *App) whoami() {
	state := a.session.Snapshot()
	if state.User == nil {
		fmt.Println("Not logged in")
		return
	}
	fmt.Printf("%s (%s)\n", state.User.Username, state.User.Role)
}

func (a *App) showNotices(ctx context.Context) {
	notices, err := a.api.Notices(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if len(notices) == 0 {
		fmt.Println("No notices")
		return
	}
	for _, n := range notices {
		fmt.Printf("[%s] %s\n", n.CreatedAt.Format("2006-01-02"), n.Title)
		if n.Body != "" {
			fmt.Println("  " + n.Body)
		}
	}
}
