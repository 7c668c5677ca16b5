package attributes

import (
	"github.com/wcg-tools/osf-chargen/internal/dice"
	"github.com/wcg-tools/osf-chargen/internal/domain/character"
	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

// Sampler rolls values for zero mode: d3 minus d3 per attribute, which
// peaks at 0 and spans -2..2
type Sampler struct {
	roller dice.Roller
}

// NewSampler creates a sampler that rolls through roller
func NewSampler(roller dice.Roller) *Sampler {
	return &Sampler{roller: roller}
}

// Sample rolls one full pool
func (s *Sampler) Sample() ([]int, error) {
	values := make([]int, character.NumAttributes)
	for i := range values {
		plus, err := s.roller.Roll(1, 3, 0)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to roll attribute")
		}
		minus, err := s.roller.Roll(1, 3, 0)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to roll attribute")
		}
		values[i] = plus.Total - minus.Total
	}
	return values, nil
}

// Generate fills the draft's pool. Zero mode rolls and assigns in canonical
// order; traditional mode loads the chosen array and leaves placement to the user.
func Generate(d *character.Draft, sampler *Sampler) (*Engine, error) {
	var values []int
	switch d.Mode {
	case character.ModeZero:
		rolled, err := sampler.Sample()
		if err != nil {
			return nil, err
		}
		values = rolled
	case character.ModeTraditional:
		if !d.ArrayType.Valid() {
			return nil, dnderr.FailedPreconditionf("choose an attribute array first")
		}
		values = d.ArrayType.Values()
	default:
		return nil, dnderr.InvalidArgumentf("unknown mode %q", d.Mode)
	}

	e, err := NewEngine(values)
	if err != nil {
		return nil, err
	}
	if d.Mode == character.ModeZero {
		e.AutoAssign()
	}

	e.Store(d)
	d.ClearSpeciesModifiers()
	return e, nil
}

// Reset empties the draft's attributes and drops strength and weakness
func Reset(d *character.Draft) error {
	e, err := Load(d)
	if err != nil {
		return err
	}
	e.Reset()
	if d.Mode == character.ModeZero {
		e.AutoAssign()
	}
	e.Store(d)
	d.ClearSpeciesModifiers()
	return nil
}

// SelectArrayType picks the traditional array and regenerates the pool.
// Picking the current array again keeps the assignment.
func SelectArrayType(d *character.Draft, t character.ArrayType) (*Engine, error) {
	if d.Mode != character.ModeTraditional {
		return nil, dnderr.FailedPreconditionf("attribute arrays only apply to traditional mode")
	}
	if !t.Valid() {
		return nil, dnderr.InvalidArgumentf("unknown attribute array %q", t)
	}
	if d.ArrayType == t && len(d.AttributeBase) > 0 {
		return Load(d)
	}

	d.ArrayType = t
	return Generate(d, nil)
}
