package wizard_sessions

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interface.go

import (
	"context"

	"github.com/wcg-tools/osf-chargen/internal/domain/wizard"
)

// Repository stores in-progress wizard sessions, at most one per owner
type Repository interface {
	// Create stores a new session and makes it the owner's active session
	Create(ctx context.Context, session *wizard.Session) error

	// Get retrieves a session by ID
	Get(ctx context.Context, id string) (*wizard.Session, error)

	// GetByOwner retrieves the owner's active session
	GetByOwner(ctx context.Context, ownerID string) (*wizard.Session, error)

	// Update replaces an existing session
	Update(ctx context.Context, session *wizard.Session) error

	// Delete removes a session
	Delete(ctx context.Context, id string) error
}
