package wizard

import (
	"sync"

	dnderr "github.com/wcg-tools/osf-chargen/internal/errors"
)

// Evaluator computes whether the given step currently allows advancing
type Evaluator func(step StepID) bool

// Controller is the step cursor and forward gate of one wizard
type Controller struct {
	mu          sync.Mutex
	steps       []StepID
	current     int
	nextEnabled bool
	epoch       uint64
	evaluate    Evaluator
}

// NewController starts at the first step with forward navigation disabled,
// then mounts that step
func NewController(steps []StepID, evaluate Evaluator) (*Controller, error) {
	c, err := Restore(steps, 0, false, evaluate)
	if err != nil {
		return nil, err
	}
	c.mount()
	return c, nil
}

// Restore rebuilds a controller from stored state without remounting
func Restore(steps []StepID, current int, nextEnabled bool, evaluate Evaluator) (*Controller, error) {
	if len(steps) == 0 {
		return nil, dnderr.InvalidArgument("wizard needs at least one step")
	}
	if current < 0 || current >= len(steps) {
		return nil, dnderr.InvalidArgumentf("step cursor %d out of range", current)
	}

	return &Controller{
		steps:       steps,
		current:     current,
		nextEnabled: nextEnabled,
		evaluate:    evaluate,
	}, nil
}

// Steps returns the step list
func (c *Controller) Steps() []StepID {
	return c.steps
}

// Current returns the cursor
func (c *Controller) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// CurrentStep returns the active step
func (c *Controller) CurrentStep() StepID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps[c.current]
}

// NextEnabled reports the forward gate
func (c *Controller) NextEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextEnabled
}

// IsTerminal reports whether the cursor is on the last step
func (c *Controller) IsTerminal() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isTerminal()
}

func (c *Controller) isTerminal() bool {
	return c.current == len(c.steps)-1
}

// CanPrevious reports whether Previous would move
func (c *Controller) CanPrevious() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current > 0
}

// CanNext reports whether Next would move
func (c *Controller) CanNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextEnabled && !c.isTerminal()
}

// Previous moves back one step. The gate is left alone; the target step's
// mount recomputes it.
func (c *Controller) Previous() bool {
	c.mu.Lock()
	if c.current == 0 {
		c.mu.Unlock()
		return false
	}
	c.current--
	c.epoch++
	c.mu.Unlock()

	c.mount()
	return true
}

// Next moves forward one step if the gate is open, closing it before the
// target step mounts
func (c *Controller) Next() bool {
	c.mu.Lock()
	if !c.nextEnabled || c.isTerminal() {
		c.mu.Unlock()
		return false
	}
	c.current++
	c.epoch++
	c.nextEnabled = false
	c.mu.Unlock()

	c.mount()
	return true
}

// Active hands out the gate setter for the step that is mounted right now
func (c *Controller) Active() *StepHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &StepHandle{
		controller: c,
		step:       c.steps[c.current],
		epoch:      c.epoch,
	}
}

// Refresh re-evaluates the active step
func (c *Controller) Refresh() {
	c.mount()
}

func (c *Controller) mount() {
	h := c.Active()
	if c.evaluate == nil {
		h.SetNextEnabled(false)
		return
	}
	h.SetNextEnabled(c.evaluate(h.step))
}

// StepHandle lets exactly one mounted step drive the forward gate
type StepHandle struct {
	controller *Controller
	step       StepID
	epoch      uint64
}

// Step is the step this handle belongs to
func (h *StepHandle) Step() StepID {
	return h.step
}

// SetNextEnabled opens or closes the gate. Ignored once the step is no longer active.
func (h *StepHandle) SetNextEnabled(enabled bool) bool {
	c := h.controller
	c.mu.Lock()
	defer c.mu.Unlock()

	if h.epoch != c.epoch {
		return false
	}
	c.nextEnabled = enabled
	return true
}
