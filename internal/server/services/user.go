// Package services contains server-side business logic. This file implements
// UserService: credential checks, session token minting, and account
// provisioning.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/dbx"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/auth"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/config"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/models"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
//   - Login: verify credentials and mint a session token
//   - GetByID: "who am I" lookup for token validation
//   - Provision: create a user plus its role profile in one transaction
type UserService struct {
	rm                    repomanager.RepositoryManager
	jwtSecret             []byte
	jwtIssuer             string
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(rm repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		rm:                    rm,
		jwtSecret:             []byte(cfg.SecretKey),
		jwtIssuer:             cfg.JWTIssuer,
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Login verifies the password against the stored bcrypt hash and, on success,
// returns a session token plus the user. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	repo := s.rm.Users(s.rm.Conn())
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrUnauthorized
		}
		return "", nil, common.ErrInternal
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtIssuer, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrInternal
	}
	return token, user, nil
}

// GetByID returns the user behind an already-validated token.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	repo := s.rm.Users(s.rm.Conn())
	return repo.GetByID(ctx, id)
}

// Provision creates a new account and its blank role profile transactionally.
// The profile must exist before the user's first dashboard fetch.
func (s *UserService) Provision(ctx context.Context, username, password string, role common.Role, name string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", common.ErrValidation)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrValidation, role)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &models.User{Username: username, PasswordHash: hash, Role: role}
	err = dbx.WithTx(ctx, s.rm.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.rm.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		user = u
		return s.rm.Profiles(tx).ProvisionEmpty(ctx, u.ID, role, name)
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("provisioning error: %w", err)
	}
	return user, nil
}

// List returns all accounts, for the admin user-management screen.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.rm.Users(s.rm.Conn()).List(ctx)
}

// Delete removes an account. The role profile and attendance rows go with it
// via cascade.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.rm.Users(s.rm.Conn()).Delete(ctx, id)
}
