package tui

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"artichat/internal/domain"
)

const (
	refreshInterval = 50 * time.Millisecond
	eventBuffer     = 256
)

// ErrClosed is returned by Poll once the terminal program has exited.
var ErrClosed = errors.New("terminal closed")

// Terminal is a Bubble Tea backed KeySource and RenderSink.
type Terminal struct {
	program *tea.Program
	events  chan domain.KeyEvent
	view    atomic.Pointer[domain.View]

	started bool
	done    chan struct{}
	err     error
}

var (
	_ domain.KeySource  = (*Terminal)(nil)
	_ domain.RenderSink = (*Terminal)(nil)
)

// New prepares a terminal. opts are passed to the Bubble Tea program; the
// CLI uses tea.WithAltScreen, tests swap input and output.
func New(opts ...tea.ProgramOption) *Terminal {
	t := &Terminal{
		events: make(chan domain.KeyEvent, eventBuffer),
		done:   make(chan struct{}),
	}
	m := model{
		events: t.events,
		source: &t.view,
		keys:   defaultKeyMap(),
		styles: DefaultStyles(),
	}
	t.program = tea.NewProgram(m, opts...)
	return t
}

// Start runs the program on its own goroutine.
func (t *Terminal) Start() {
	if t.started {
		return
	}
	t.started = true
	go func() {
		_, err := t.program.Run()
		t.err = err
		close(t.done)
	}()
}

// Poll waits up to timeout for one keystroke.
func (t *Terminal) Poll(ctx context.Context, timeout time.Duration) (domain.KeyEvent, bool, error) {
	select {
	case ev := <-t.events:
		return ev, true, nil
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.events:
		return ev, true, nil
	case <-timer.C:
		return domain.KeyEvent{}, false, nil
	case <-ctx.Done():
		return domain.KeyEvent{}, false, ctx.Err()
	case <-t.done:
		if t.err != nil {
			return domain.KeyEvent{}, false, t.err
		}
		return domain.KeyEvent{}, false, ErrClosed
	}
}

// Render publishes v for the next refresh. It never blocks.
func (t *Terminal) Render(v domain.View) {
	t.view.Store(&v)
}

// Stop quits the program, restores the terminal and returns the program's
// exit error, if any.
func (t *Terminal) Stop() error {
	if !t.started {
		return nil
	}
	t.program.Quit()
	<-t.done
	if errors.Is(t.err, tea.ErrProgramKilled) {
		return nil
	}
	return t.err
}

type refreshMsg struct{}

func refresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}

// model is the Bubble Tea side of a Terminal. It only reads snapshots and
// forwards keystrokes.
type model struct {
	events chan<- domain.KeyEvent
	source *atomic.Pointer[domain.View]
	keys   keyMap
	styles Styles

	view          domain.View
	width, height int
}

func (m model) Init() tea.Cmd { return refresh() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		for _, ev := range m.keys.translate(msg) {
			select {
			case m.events <- ev:
			default:
				// Loop is behind; drop rather than stall the program.
			}
		}
	case refreshMsg:
		if v := m.source.Load(); v != nil {
			m.view = *v
		}
		return m, refresh()
	}
	return m, nil
}

func (m model) View() string {
	return render(m.view, m.width, m.height, m.styles)
}
