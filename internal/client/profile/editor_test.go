package profile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/common"
)

type form struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Tags  []string `json:"tags,omitempty"`
}

func fastOptions() Options {
	return Options{
		Debounce:      5 * time.Millisecond,
		FetchThrottle: time.Nanosecond,
		SaveCooldown:  time.Nanosecond,
	}
}

func fixedFetch(v *form) func(ctx context.Context) (*form, error) {
	return func(ctx context.Context) (*form, error) { return v, nil }
}

func echoSave(ctx context.Context, v *form) (*form, error) { return v, nil }

func TestFetchPopulatesBothCopies(t *testing.T) {
	e := NewEditor(fixedFetch(&form{Name: "X"}), echoSave, nil, fastOptions())

	require.NoError(t, e.Fetch(context.Background()))

	require.Equal(t, "X", e.Original().Name)
	require.Equal(t, "X", e.Working().Name)
	require.False(t, e.Dirty())
}

func TestFetchThrottleSuppressesRepeats(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context) (*form, error) {
		calls++
		return &form{Name: "X"}, nil
	}
	opts := fastOptions()
	opts.FetchThrottle = time.Hour
	e := NewEditor(fetch, echoSave, nil, opts)

	// initial fetch is exempt, the two repeats fall inside the window
	require.NoError(t, e.Fetch(context.Background()))
	require.NoError(t, e.Fetch(context.Background()))
	require.NoError(t, e.Fetch(context.Background()))

	require.Equal(t, 1, calls)
}

func TestFetchThrottleExpires(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context) (*form, error) {
		calls++
		return &form{Name: "X"}, nil
	}
	opts := fastOptions()
	opts.FetchThrottle = time.Hour
	e := NewEditor(fetch, echoSave, nil, opts)

	now := time.Now()
	e.now = func() time.Time { return now }

	require.NoError(t, e.Fetch(context.Background()))
	now = now.Add(2 * time.Hour)
	require.NoError(t, e.Fetch(context.Background()))

	require.Equal(t, 2, calls)
}

// A slow earlier fetch must not overwrite the result of a faster later one.
func TestStaleFetchResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	var mu sync.Mutex
	fetch := func(ctx context.Context) (*form, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-release
			return &form{Name: "old"}, nil
		}
		return &form{Name: "new"}, nil
	}
	e := NewEditor(fetch, echoSave, nil, fastOptions())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = e.Fetch(context.Background())
	}()

	// wait for the first request to be in flight
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, time.Second, time.Millisecond)

	require.NoError(t, e.Fetch(context.Background()))
	require.Equal(t, "new", e.Working().Name)

	close(release)
	wg.Wait()

	require.Equal(t, "new", e.Working().Name)
	require.Equal(t, "new", e.Original().Name)
}

// A background refetch never replaces the user's unsaved edits.
func TestFetchDoesNotClobberEditMode(t *testing.T) {
	serverValue := &form{Name: "X"}
	fetch := func(ctx context.Context) (*form, error) { return serverValue, nil }
	e := NewEditor(fetch, echoSave, nil, fastOptions())

	require.NoError(t, e.Fetch(context.Background()))
	e.Edit()
	w := e.Working()
	w.Name = "Y"
	e.SetWorking(w)

	serverValue = &form{Name: "X2"}
	require.NoError(t, e.Fetch(context.Background()))

	require.Equal(t, "Y", e.Working().Name)
	require.True(t, e.Editing())
}

func TestDirtyFlagDebounced(t *testing.T) {
	e := NewEditor(fixedFetch(&form{Name: "X"}), echoSave, nil, fastOptions())
	require.NoError(t, e.Fetch(context.Background()))

	e.Edit()
	w := e.Working()
	w.Name = "Y"
	e.SetWorking(w)

	require.Eventually(t, e.Dirty, time.Second, time.Millisecond)

	e.Cancel()
	require.False(t, e.Dirty())
	require.Equal(t, "X", e.Working().Name)
}

func TestCancelDiscardsEdits(t *testing.T) {
	e := NewEditor(fixedFetch(&form{Name: "X", Tags: []string{"a"}}), echoSave, nil, fastOptions())
	require.NoError(t, e.Fetch(context.Background()))

	e.Edit()
	w := e.Working()
	w.Name = "Y"
	w.Tags = append(w.Tags, "b")
	e.SetWorking(w)

	e.Cancel()

	require.Equal(t, "X", e.Working().Name)
	require.Equal(t, []string{"a"}, e.Working().Tags)
	require.False(t, e.Editing())
}

// A clean form never produces a network write.
func TestSaveCleanFormIsNoOp(t *testing.T) {
	saves := 0
	save := func(ctx context.Context, v *form) (*form, error) {
		saves++
		return v, nil
	}
	e := NewEditor(fixedFetch(&form{Name: "X"}), save, nil, fastOptions())
	require.NoError(t, e.Fetch(context.Background()))

	e.Edit()
	require.NoError(t, e.Save(context.Background()))

	require.Zero(t, saves)
	require.False(t, e.Editing())
}

func TestSaveAdvancesOriginalOnConfirmation(t *testing.T) {
	save := func(ctx context.Context, v *form) (*form, error) {
		saved := *v
		saved.Email = "normalized@example.edu"
		return &saved, nil
	}
	e := NewEditor(fixedFetch(&form{Name: "X"}), save, nil, fastOptions())
	require.NoError(t, e.Fetch(context.Background()))

	e.Edit()
	w := e.Working()
	w.Name = "Y"
	w.Email = "Normalized@Example.EDU"
	e.SetWorking(w)

	require.NoError(t, e.Save(context.Background()))

	require.Equal(t, "Y", e.Original().Name)
	require.Equal(t, "normalized@example.edu", e.Original().Email)
	require.False(t, e.Editing())
	require.False(t, e.Dirty())
}

// While a save is in flight, further triggers are no-ops until it settles.
func TestSaveSingleFlight(t *testing.T) {
	release := make(chan struct{})
	saves := 0
	var mu sync.Mutex
	save := func(ctx context.Context, v *form) (*form, error) {
		mu.Lock()
		saves++
		mu.Unlock()
		<-release
		return v, nil
	}
	e := NewEditor(fixedFetch(&form{Name: "X"}), save, nil, fastOptions())
	require.NoError(t, e.Fetch(context.Background()))

	e.Edit()
	w := e.Working()
	w.Name = "Y"
	e.SetWorking(w)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		firstErr = e.Save(context.Background())
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return saves == 1
	}, time.Second, time.Millisecond)

	require.ErrorIs(t, e.Save(context.Background()), ErrSaveInFlight)

	close(release)
	wg.Wait()

	require.NoError(t, firstErr)
	require.Equal(t, 1, saves)
}

func TestSaveCooldownAfterSettle(t *testing.T) {
	opts := fastOptions()
	opts.SaveCooldown = time.Hour
	e := NewEditor(fixedFetch(&form{Name: "X"}), echoSave, nil, opts)
	require.NoError(t, e.Fetch(context.Background()))

	e.Edit()
	w := e.Working()
	w.Name = "Y"
	e.SetWorking(w)
	require.NoError(t, e.Save(context.Background()))

	e.Edit()
	w = e.Working()
	w.Name = "Z"
	e.SetWorking(w)
	require.ErrorIs(t, e.Save(context.Background()), ErrSaveInFlight)
}

// Local validation failures surface before any network call.
func TestSaveValidatesBeforeNetwork(t *testing.T) {
	saves := 0
	save := func(ctx context.Context, v *form) (*form, error) {
		saves++
		return v, nil
	}
	validate := func(v *form) error {
		if v.Name == "" {
			return fmt.Errorf("%w: name is required", common.ErrValidation)
		}
		return nil
	}
	e := NewEditor(fixedFetch(&form{Name: "X"}), save, validate, fastOptions())
	require.NoError(t, e.Fetch(context.Background()))

	e.Edit()
	w := e.Working()
	w.Name = ""
	e.SetWorking(w)

	require.ErrorIs(t, e.Save(context.Background()), common.ErrValidation)
	require.Zero(t, saves)
}

// A timed-out save surfaces the timeout error and clears the in-flight flag
// so the user can retry.
func TestSaveTimeoutAllowsRetry(t *testing.T) {
	attempts := 0
	save := func(ctx context.Context, v *form) (*form, error) {
		attempts++
		if attempts == 1 {
			return nil, common.ErrTimeout
		}
		return v, nil
	}
	e := NewEditor(fixedFetch(&form{Name: "X"}), save, nil, fastOptions())
	require.NoError(t, e.Fetch(context.Background()))

	e.Edit()
	w := e.Working()
	w.Name = "Y"
	e.SetWorking(w)

	err := e.Save(context.Background())
	require.ErrorIs(t, err, common.ErrTimeout)
	require.False(t, errors.Is(err, common.ErrServer))

	// in-flight flag is clear; a retry after the cooldown succeeds
	e.now = func() time.Time { return time.Now().Add(time.Minute) }
	require.NoError(t, e.Save(context.Background()))
	require.Equal(t, "Y", e.Original().Name)
}

// Working edits stay local until a confirmed save response.
func TestFailedSaveDoesNotAdvanceOriginal(t *testing.T) {
	save := func(ctx context.Context, v *form) (*form, error) {
		return nil, fmt.Errorf("%w: boom", common.ErrServer)
	}
	e := NewEditor(fixedFetch(&form{Name: "X"}), save, nil, fastOptions())
	require.NoError(t, e.Fetch(context.Background()))

	e.Edit()
	w := e.Working()
	w.Name = "Y"
	e.SetWorking(w)

	require.ErrorIs(t, e.Save(context.Background()), common.ErrServer)
	require.Equal(t, "X", e.Original().Name)
	require.Equal(t, "Y", e.Working().Name)
	require.True(t, e.Editing())
}
