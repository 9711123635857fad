package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

func (a *App) listUsers(ctx context.Context) {
	if !a.authorize(common.RoleAdmin) {
		return
	}

	users, err := a.api.ListUsers(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	for _, u := range users {
		fmt.Printf("%s  %-20s %s\n", u.ID, u.Username, u.Role)
	}
}

func (a *App) addUser(ctx context.Context) {
	if !a.authorize(common.RoleAdmin) {
		return
	}

	username, err := GetSimpleText(a.reader, "Username", os.Stdout)
	if err != nil || username == "" {
		log.Printf("Username is required")
		return
	}
	roleStr, err := GetSimpleText(a.reader, "Role (admin/teacher/student/developer)", os.Stdout)
	if err != nil {
		return
	}
	if _, ok := common.ParseRole(roleStr); !ok {
		log.Printf("Unknown role %q", roleStr)
		return
	}
	name, err := GetSimpleText(a.reader, "Display name", os.Stdout)
	if err != nil {
		return
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	user, err := a.api.ProvisionUser(ctx, username, string(password), roleStr, name)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	log.Printf("Created %s (%s) id=%s", user.Username, user.Role, user.ID)
}

func (a *App) deleteUser(ctx context.Context, args []string) {
	if !a.authorize(common.RoleAdmin) {
		return
	}
	if len(args) == 0 {
		fmt.Println("Usage: deluser <id>")
		return
	}

	if err := a.api.DeleteUser(ctx, args[0]); err != nil {
		log.Printf("error: %v", err)
		return
	}
	log.Printf("Deleted user %s", args[0])
}
