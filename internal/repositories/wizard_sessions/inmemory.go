package wizard_sessions

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/wcg-tools/osf-chargen/internal/domain/wizard"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

// InMemoryRepository keeps sessions in process memory
type InMemoryRepository struct {
	mu           sync.RWMutex
	sessions     map[string]*wizard.Session
	byOwner      map[string]string
	timeProvider TimeProvider
}

// NewInMemoryRepository creates an empty in-memory repository
func NewInMemoryRepository(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = NewRealTimeProvider()
	}
	return &InMemoryRepository{
		sessions:     make(map[string]*wizard.Session),
		byOwner:      make(map[string]string),
		timeProvider: timeProvider,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, session *wizard.Session) error {
	if err := validate(session); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return dnderr.AlreadyExistsf("wizard session '%s' already exists", session.ID).
			WithMeta("session_id", session.ID)
	}

	now := r.timeProvider.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	stored, err := clone(session)
	if err != nil {
		return err
	}
	r.sessions[session.ID] = stored
	r.byOwner[session.OwnerID] = session.ID
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*wizard.Session, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, dnderr.NotFoundf("wizard session '%s' not found", id).
			WithMeta("session_id", id)
	}
	return clone(session)
}

func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) (*wizard.Session, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	id, exists := r.byOwner[ownerID]
	r.mu.RUnlock()

	if !exists {
		return nil, dnderr.NotFoundf("no wizard session for owner '%s'", ownerID).
			WithMeta("owner_id", ownerID)
	}
	return r.Get(ctx, id)
}

func (r *InMemoryRepository) Update(ctx context.Context, session *wizard.Session) error {
	if err := validate(session); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; !exists {
		return dnderr.NotFoundf("wizard session '%s' not found", session.ID).
			WithMeta("session_id", session.ID)
	}

	session.UpdatedAt = r.timeProvider.Now()
	stored, err := clone(session)
	if err != nil {
		return err
	}
	r.sessions[session.ID] = stored
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.sessions[id]
	if !exists {
		return dnderr.NotFoundf("wizard session '%s' not found", id).
			WithMeta("session_id", id)
	}

	delete(r.sessions, id)
	if r.byOwner[session.OwnerID] == id {
		delete(r.byOwner, session.OwnerID)
	}
	return nil
}

func validate(session *wizard.Session) error {
	if session == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return dnderr.InvalidArgument("session ID is required")
	}
	if session.OwnerID == "" {
		return dnderr.InvalidArgument("owner ID is required")
	}
	if session.Draft == nil {
		return dnderr.InvalidArgument("session draft is required")
	}
	return nil
}

// clone keeps stored sessions isolated from callers that keep mutating theirs
func clone(session *wizard.Session) (*wizard.Session, error) {
	data, err := json.Marshal(session)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to copy wizard session")
	}
	var out wizard.Session
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, dnderr.Wrap(err, "failed to copy wizard session")
	}
	return &out, nil
}
