package mockdice

import (
	"fmt"
	"sync"

	"github.com/wcg-tools/osf-chargen/internal/dice"
)

// ManualMockRoller implements dice.Roller with predetermined single-die results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a roller that replays rolls in order
func NewManualMockRoller(rolls ...int) *ManualMockRoller {
	return &ManualMockRoller{
		rolls: rolls,
	}
}

// SetRolls replaces the scripted rolls and rewinds
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Used reports how many scripted rolls have been consumed
func (m *ManualMockRoller) Used() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rollIndex
}

// Roll consumes one scripted value per die
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex+count > len(m.rolls) {
		return nil, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	out := make([]int, count)
	total := 0
	for i := range out {
		roll := m.rolls[m.rollIndex]
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("scripted roll %d outside d%d", roll, sides)
		}
		out[i] = roll
		total += roll
		m.rollIndex++
	}

	return &dice.RollResult{
		Count: count,
		Sides: sides,
		Bonus: bonus,
		Rolls: out,
		Total: total + bonus,
	}, nil
}
