package attributes

import (
	"slices"

	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

// Engine assigns values from a pool of seven onto the seven attributes,
// one value per attribute. A filled attribute is never overwritten.
type Engine struct {
	original []int
	pool     []*int
	scores   character.AttributeScores
}

// NewEngine starts an engine over a freshly generated pool
func NewEngine(values []int) (*Engine, error) {
	if len(values) != character.NumAttributes {
		return nil, dnderr.InvalidArgumentf("attribute pool needs %d values, got %d",
			character.NumAttributes, len(values))
	}

	e := &Engine{original: slices.Clone(values)}
	e.Reset()
	return e, nil
}

// Load rebuilds the engine from a stored draft
func Load(d *character.Draft) (*Engine, error) {
	if len(d.AttributeBase) == 0 {
		return nil, dnderr.FailedPreconditionf("attribute values have not been generated")
	}

	e, err := NewEngine(d.AttributeBase)
	if err != nil {
		return nil, err
	}

	if len(d.AttributeValues) == character.NumAttributes {
		e.pool = clonePool(d.AttributeValues)
	}
	if d.AttributeScores != nil {
		e.scores = d.AttributeScores.Clone()
	}

	if !e.Consistent() {
		return nil, dnderr.New(dnderr.CodeInternal, "stored attribute pool does not match its scores")
	}
	return e, nil
}

// Store writes the engine state back into the draft
func (e *Engine) Store(d *character.Draft) {
	d.AttributeBase = slices.Clone(e.original)
	d.AttributeValues = clonePool(e.pool)
	d.AttributeScores = e.scores.Clone()
}

// Pick reads the value at a pool position without consuming it
func (e *Engine) Pick(poolIndex int) (int, bool) {
	if poolIndex < 0 || poolIndex >= len(e.pool) || e.pool[poolIndex] == nil {
		return 0, false
	}
	return *e.pool[poolIndex], true
}

// Place moves a pool value onto an empty attribute. Dropping onto a filled
// attribute, a consumed pool entry or an unknown target does nothing.
func (e *Engine) Place(poolIndex int, a character.Attribute) bool {
	value, ok := e.Pick(poolIndex)
	if !ok || !a.Valid() || e.scores[a] != nil {
		return false
	}

	e.scores[a] = &value
	e.pool[poolIndex] = nil
	return true
}

// Reset returns every value to the pool and empties every attribute
func (e *Engine) Reset() {
	e.pool = make([]*int, len(e.original))
	for i, v := range e.original {
		e.pool[i] = &v
	}
	e.scores = character.NewAttributeScores()
}

// AutoAssign places pool[i] onto the i-th attribute wherever both are free
func (e *Engine) AutoAssign() {
	for i, a := range character.Attributes {
		e.Place(i, a)
	}
}

// AllAssigned reports whether every attribute has a value
func (e *Engine) AllAssigned() bool {
	return e.scores.AllAssigned()
}

// Filled counts assigned attributes
func (e *Engine) Filled() int {
	return e.scores.Assigned()
}

// Remaining counts unconsumed pool values
func (e *Engine) Remaining() int {
	n := 0
	for _, v := range e.pool {
		if v != nil {
			n++
		}
	}
	return n
}

// Scores returns a copy of the current assignment
func (e *Engine) Scores() character.AttributeScores {
	return e.scores.Clone()
}

// Pool returns a copy of the pool; consumed entries are nil
func (e *Engine) Pool() []*int {
	return clonePool(e.pool)
}

// Base returns the pool as originally generated
func (e *Engine) Base() []int {
	return slices.Clone(e.original)
}

// Consistent checks that scores plus remaining pool values are exactly the
// original values and that each consumed pool slot matches one filled score
func (e *Engine) Consistent() bool {
	if len(e.pool) != len(e.original) || e.Filled()+e.Remaining() != len(e.original) {
		return false
	}

	combined := make([]int, 0, len(e.original))
	for _, v := range e.pool {
		if v != nil {
			combined = append(combined, *v)
		}
	}
	for _, a := range character.Attributes {
		if v := e.scores[a]; v != nil {
			combined = append(combined, *v)
		}
	}

	want := slices.Clone(e.original)
	slices.Sort(want)
	slices.Sort(combined)
	return slices.Equal(want, combined)
}

func clonePool(pool []*int) []*int {
	out := make([]*int, len(pool))
	for i, v := range pool {
		if v != nil {
			n := *v
			out[i] = &n
		}
	}
	return out
}
