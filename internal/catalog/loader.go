package catalog

import (
	"context"
	"log"
	"sync"
	"time"
)

// Status is the variant of a catalog State
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusReady   Status = "ready"
)

// State is what a step renders for its catalog
type State[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Ready reports whether Data is usable
func (s State[T]) Ready() bool {
	return s.Status == StatusReady
}

// Fetch retrieves one catalog
type Fetch[T any] func(ctx context.Context) (T, error)

// Loader fetches a catalog in the background for the active request key.
// A result is applied only while its key is still the active one and the
// step has not been unmounted since; anything else is dropped. Failed keys
// stay failed until Load is called again.
type Loader[T any] struct {
	mu      sync.Mutex
	name    string
	timeout time.Duration
	key     string
	gen     uint64
	state   State[T]
	cache   map[string]T
	done    chan struct{}
}

// NewLoader creates a loader; timeout bounds each fetch, zero means no bound
func NewLoader[T any](name string, timeout time.Duration) *Loader[T] {
	return &Loader[T]{
		name:    name,
		timeout: timeout,
		state:   State[T]{Status: StatusIdle},
		cache:   make(map[string]T),
	}
}

// Load makes key active and returns its state. Cached data is returned ready
// without fetching; a load already running for key is reused.
func (l *Loader[T]) Load(ctx context.Context, key string, fetch Fetch[T]) State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	if data, ok := l.cache[key]; ok {
		l.key = key
		l.state = State[T]{Status: StatusReady, Data: data}
		return l.state
	}
	if l.key == key && l.state.Status == StatusLoading {
		return l.state
	}

	l.gen++
	gen := l.gen
	l.key = key
	l.state = State[T]{Status: StatusLoading}
	done := make(chan struct{})
	l.done = done

	fetchCtx := context.WithoutCancel(ctx)
	go l.run(fetchCtx, gen, key, fetch, done)

	return l.state
}

func (l *Loader[T]) run(ctx context.Context, gen uint64, key string, fetch Fetch[T], done chan struct{}) {
	defer close(done)

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	data, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		log.Printf("Dropping stale %s catalog response for %q", l.name, key)
		return
	}
	if err != nil {
		log.Printf("Failed to load %s catalog for %q: %v", l.name, key, err)
		l.state = State[T]{Status: StatusError, Err: err}
		return
	}

	l.cache[key] = data
	l.state = State[T]{Status: StatusReady, Data: data}
}

// State returns the state for key. Keys that are not active report cached
// data or idle.
func (l *Loader[T]) State(key string) State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	if key == l.key {
		return l.state
	}
	if data, ok := l.cache[key]; ok {
		return State[T]{Status: StatusReady, Data: data}
	}
	return State[T]{Status: StatusIdle}
}

// Unmount forgets loading and error state so the next Load starts fresh.
// In-flight results are dropped; cached data is kept.
func (l *Loader[T]) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.gen++
	l.key = ""
	l.state = State[T]{Status: StatusIdle}
}

// Wait blocks until the current load settles or ctx is done
func (l *Loader[T]) Wait(ctx context.Context) error {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
