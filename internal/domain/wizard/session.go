package wizard

import (
	"time"

	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	"github.com/wcg-tools/osf-chargen/internal/domain/rulebook"
)

// Session is one in-progress character creation
type Session struct {
	ID          string           `json:"id"`
	OwnerID     string           `json:"owner_id"`
	Draft       *character.Draft `json:"draft"`
	Cursor      int              `json:"cursor"`
	NextEnabled bool             `json:"next_enabled"`

	// Professions is kept so the generated list survives navigation
	Professions *rulebook.ProfessionsCatalog `json:"professions,omitempty"`

	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Steps is the step list for the session's draft
func (s *Session) Steps() []StepID {
	return Steps(s.Draft.Mode, s.Draft.Level)
}

// CurrentStep is the step under the cursor
func (s *Session) CurrentStep() StepID {
	steps := s.Steps()
	if s.Cursor < 0 || s.Cursor >= len(steps) {
		return ""
	}
	return steps[s.Cursor]
}

// Controller rebuilds the state machine around the stored cursor
func (s *Session) Controller(evaluate Evaluator) (*Controller, error) {
	return Restore(s.Steps(), s.Cursor, s.NextEnabled, evaluate)
}

// Save copies controller state back into the session
func (s *Session) Save(c *Controller) {
	s.Cursor = c.Current()
	s.NextEnabled = c.NextEnabled()
}
