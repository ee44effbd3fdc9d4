package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/twinkle/internal/display"
	"github.com/alexisbeaulieu97/twinkle/internal/logger"
	"github.com/alexisbeaulieu97/twinkle/internal/scene"
)

// Options configures the display host.
type Options struct {
	Interval   time.Duration
	UseUnicode bool
	Logger     *logger.Logger
}

// Model is the Bubbletea host that applies engine frames to the terminal.
type Model struct {
	engine *display.Engine
	frame  display.Frame
	timer  timer

	// The timer runs only while neither flag is set.
	paused bool
	hidden bool

	keys     keyMap
	help     help.Model
	showHelp bool

	width      int
	height     int
	useUnicode bool
	quitting   bool

	log *logger.Logger
}

// NewModel renders the engine's current frame and arms the timer.
func NewModel(engine *display.Engine, opts Options) Model {
	interval := opts.Interval
	if interval <= 0 {
		interval = scene.DefaultInterval
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return Model{
		engine:     engine,
		frame:      engine.Frame(),
		timer:      newTimer(interval),
		keys:       defaultKeyMap(),
		help:       help.New(),
		useUnicode: opts.UseUnicode,
		log:        log.Component("tui"),
	}
}

// Init schedules the first tick.
func (m Model) Init() tea.Cmd {
	return m.timer.schedule()
}

// Frame returns the frame currently on screen.
func (m Model) Frame() display.Frame {
	return m.frame
}

// Visible reports whether the display is being animated.
func (m Model) Visible() bool {
	return !m.paused && !m.hidden
}

// Running reports whether a timer subscription is live.
func (m Model) Running() bool {
	return m.timer.running
}

// Paused reports whether the user paused the display.
func (m Model) Paused() bool {
	return m.paused
}

// syncTimer starts or stops the subscription to match visibility.
func (m *Model) syncTimer() tea.Cmd {
	if m.Visible() {
		if m.timer.running {
			return nil
		}
		m.log.Debug("display visible, resubscribing timer")
		return m.timer.start()
	}
	if m.timer.running {
		m.log.Debug("display hidden, timer suspended")
	}
	m.timer.stop()
	return nil
}
