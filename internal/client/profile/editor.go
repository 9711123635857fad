// Package profile implements the reconciliation flow between a locally
// edited profile form and the server's copy. The editor keeps two copies of
// the data, "original" (last confirmed server state) and "working" (user
// edits), and advances original only on a confirmed save response.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"time"
)

// ErrSaveInFlight is returned when a save is triggered while an earlier one
// has not settled yet, or within the cooldown after it settled. The caller
// treats it as a no-op.
var ErrSaveInFlight = errors.New("save already in progress")

// Options tunes the editor's timing behaviour. Zero values fall back to the
// defaults observed in the UI: 300ms debounce, 5s fetch throttle, 1s save
// cooldown.
type Options struct {
	Debounce      time.Duration
	FetchThrottle time.Duration
	SaveCooldown  time.Duration
}

func (o *Options) applyDefaults() {
	if o.Debounce <= 0 {
		o.Debounce = 300 * time.Millisecond
	}
	if o.FetchThrottle <= 0 {
		o.FetchThrottle = 5 * time.Second
	}
	if o.SaveCooldown <= 0 {
		o.SaveCooldown = time.Second
	}
}

// Editor reconciles one role-specific profile. T is the profile's wire type;
// copies are made by JSON round-trip so maps and slices never alias between
// original and working.
type Editor[T any] struct {
	fetch    func(ctx context.Context) (T, error)
	save     func(ctx context.Context, v T) (T, error)
	validate func(v T) error
	opts     Options

	// test seam
	now func() time.Time

	mu         sync.Mutex
	original   T
	working    T
	loaded     bool
	editing    bool
	dirty      bool
	dirtyTimer *time.Timer
	saving     bool
	lastSettle time.Time
	lastFetch  time.Time
	reqID      uint64
}

// NewEditor builds an editor over the given fetch/save/validate triple.
// validate may be nil when the profile has no locally checked fields.
func NewEditor[T any](
	fetch func(ctx context.Context) (T, error),
	save func(ctx context.Context, v T) (T, error),
	validate func(v T) error,
	opts Options,
) *Editor[T] {
	opts.applyDefaults()
	return &Editor[T]{
		fetch:    fetch,
		save:     save,
		validate: validate,
		opts:     opts,
		now:      time.Now,
	}
}

func clone[T any](v T) T {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}

// Fetch loads the profile from the server. Repeated calls within the
// throttle window of the previous fetch are suppressed; the first fetch is
// exempt. A response is applied only when it belongs to the most recently
// issued request, and never while the user is in edit mode.
func (e *Editor[T]) Fetch(ctx context.Context) error {
	e.mu.Lock()
	if e.loaded && e.now().Sub(e.lastFetch) < e.opts.FetchThrottle {
		e.mu.Unlock()
		return nil
	}
	e.lastFetch = e.now()
	e.reqID++
	id := e.reqID
	e.mu.Unlock()

	v, err := e.fetch(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if id != e.reqID {
		// superseded by a later fetch
		return nil
	}
	if e.editing {
		// never clobber in-flight edits
		return nil
	}
	e.original = clone(v)
	e.working = clone(v)
	e.loaded = true
	e.dirty = false
	return nil
}

// Original returns the last confirmed server state.
func (e *Editor[T]) Original() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clone(e.original)
}

// Working returns the current form contents.
func (e *Editor[T]) Working() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clone(e.working)
}

// Editing reports whether the form is in edit mode.
func (e *Editor[T]) Editing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.editing
}

// Edit enters edit mode, resetting the working copy to the original.
func (e *Editor[T]) Edit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.working = clone(e.original)
	e.editing = true
	e.dirty = false
}

// Cancel discards edits and leaves edit mode.
func (e *Editor[T]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.working = clone(e.original)
	e.editing = false
	e.dirty = false
	if e.dirtyTimer != nil {
		e.dirtyTimer.Stop()
		e.dirtyTimer = nil
	}
}

// SetWorking replaces the form contents and schedules the modified flag to
// be recomputed after the debounce interval. Every call restarts the timer,
// so a burst of keystrokes triggers a single recomputation.
func (e *Editor[T]) SetWorking(v T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.working = clone(v)
	if e.dirtyTimer != nil {
		e.dirtyTimer.Stop()
	}
	e.dirtyTimer = time.AfterFunc(e.opts.Debounce, e.recomputeDirty)
}

func (e *Editor[T]) recomputeDirty() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dirty = !reflect.DeepEqual(e.original, e.working)
}

// Dirty reports whether the form differs from the last server state, as of
// the last debounced recomputation.
func (e *Editor[T]) Dirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// Save validates the working copy locally, then pushes it to the server.
// Only a confirmed response advances the original and closes edit mode.
//
// Guards, in order:
//   - a save already in flight, or one settled within the cooldown,
//     returns ErrSaveInFlight
//   - an unmodified form is a silent no-op; no request is issued
//   - local validation failures surface before any network call
//
// On any error the in-flight flag is cleared so the user can retry.
func (e *Editor[T]) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.saving {
		e.mu.Unlock()
		return ErrSaveInFlight
	}
	if !e.lastSettle.IsZero() && e.now().Sub(e.lastSettle) < e.opts.SaveCooldown {
		e.mu.Unlock()
		return ErrSaveInFlight
	}
	if reflect.DeepEqual(e.original, e.working) {
		e.editing = false
		e.dirty = false
		e.mu.Unlock()
		return nil
	}
	candidate := clone(e.working)
	e.mu.Unlock()

	if e.validate != nil {
		if err := e.validate(candidate); err != nil {
			return err
		}
	}

	e.mu.Lock()
	if e.saving {
		e.mu.Unlock()
		return ErrSaveInFlight
	}
	e.saving = true
	e.mu.Unlock()

	saved, err := e.save(ctx, candidate)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.saving = false
	e.lastSettle = e.now()
	if err != nil {
		return err
	}

	e.original = clone(saved)
	e.working = clone(saved)
	e.loaded = true
	e.editing = false
	e.dirty = false
	return nil
}
