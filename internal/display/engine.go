package display

import (
	"github.com/alexisbeaulieu97/twinkle/internal/logger"
)

// Engine owns the element state and the tick counter.
type Engine struct {
	state   *State
	counter int
	log     *logger.Logger
}

// NewEngine starts an engine at counter zero.
func NewEngine(state *State, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{state: state, log: log.Component("display")}
}

// State returns the fixed color assignment.
func (e *Engine) State() *State {
	return e.state
}

// Counter returns the number of ticks so far.
func (e *Engine) Counter() int {
	return e.counter
}

// Frame renders the current counter.
func (e *Engine) Frame() Frame {
	return Render(e.state, e.counter)
}

// Tick advances the counter and renders it.
func (e *Engine) Tick() Frame {
	e.counter++
	e.log.WithFields(map[string]any{"counter": e.counter}).Debug("tick")
	return e.Frame()
}
