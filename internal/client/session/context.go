// Package session implements the client-side authentication context: the
// single holder of the current user, token and loading state. All views read
// from it and mutate it only through the exposed operations, so every
// consumer observes the same session.
package session

import (
	"context"
	"sync"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/client/models"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

// API is the slice of the REST client the session needs.
type API interface {
	SetToken(token string)
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	Me(ctx context.Context) (*models.User, error)
}

// State is an immutable snapshot of the session handed to subscribers.
// Fields carries the role-specific profile values merged in by
// UpdateProfile; it is never mutated in place.
type State struct {
	User          *models.User
	Fields        map[string]any
	Token         string
	Loading       bool
	Authenticated bool
}

// Role returns the current role, or "" when anonymous.
func (s State) Role() common.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// Context owns the session lifecycle: Restore at startup, Login/Logout on
// user action, UpdateProfile for optimistic local merges. At most one
// session is active at a time.
type Context struct {
	api   API
	store TokenStore

	mu        sync.Mutex
	state     State
	listeners []func(State)
}

func NewContext(api API, store TokenStore) *Context {
	return &Context{
		api:   api,
		store: store,
		state: State{Loading: true, Fields: map[string]any{}},
	}
}

// Snapshot returns the current state.
func (c *Context) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to run on every state change. fn is called outside
// the context's lock, with the snapshot that triggered it.
func (c *Context) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Context) setState(next State) {
	c.mu.Lock()
	c.state = next
	listeners := make([]func(State), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

// Restore reads the persisted token and validates it against the server.
// Whatever the outcome, the context leaves the loading state so the route
// guard can decide. A failed validation clears the stored token.
func (c *Context) Restore(ctx context.Context) error {
	token, err := c.store.Load()
	if err != nil || token == "" {
		c.setState(State{Fields: map[string]any{}})
		return err
	}

	c.api.SetToken(token)
	user, err := c.api.Me(ctx)
	if err != nil {
		c.api.SetToken("")
		_ = c.store.Clear()
		c.setState(State{Fields: map[string]any{}})
		return err
	}

	c.setState(State{
		User:          user,
		Fields:        map[string]any{},
		Token:         token,
		Authenticated: true,
	})
	return nil
}

// Login authenticates and, on success, installs and persists the session.
// On failure the state stays anonymous and the error goes to the caller.
func (c *Context) Login(ctx context.Context, username, password string) error {
	token, user, err := c.api.Login(ctx, username, password)
	if err != nil {
		c.setState(State{Fields: map[string]any{}})
		return err
	}

	c.api.SetToken(token)
	if err := c.store.Save(token); err != nil {
		return err
	}

	c.setState(State{
		User:          user,
		Fields:        map[string]any{},
		Token:         token,
		Authenticated: true,
	})
	return nil
}

// UpdateProfile shallow-merges the given fields into the session without
// contacting the server. Callers persist separately; this exists so local
// views can render an optimistic update while the write is in flight.
// Merging the same fields twice leaves the state unchanged.
func (c *Context) UpdateProfile(fields map[string]any) {
	c.mu.Lock()
	next := c.state
	merged := make(map[string]any, len(next.Fields)+len(fields))
	for k, v := range next.Fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	next.Fields = merged
	c.state = next
	listeners := make([]func(State), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

// Logout clears the persisted token and resets the session to anonymous.
func (c *Context) Logout() error {
	c.api.SetToken("")
	err := c.store.Clear()
	c.setState(State{Fields: map[string]any{}})
	return err
}
