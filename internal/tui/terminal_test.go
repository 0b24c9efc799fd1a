package tui

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"artichat/internal/domain"
)

func TestModel_ForwardsKeysAndRefreshes(t *testing.T) {
	events := make(chan domain.KeyEvent, 4)
	var src atomic.Pointer[domain.View]
	m := model{events: events, source: &src, keys: defaultKeyMap(), styles: DefaultStyles()}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.Nil(t, cmd)
	assert.Equal(t, domain.KeyEvent{Kind: domain.KeyRune, Rune: 'a'}, <-events)

	src.Store(&domain.View{Input: "draft"})
	next, cmd = next.Update(refreshMsg{})
	assert.NotNil(t, cmd, "refresh must re-arm the tick")
	assert.Equal(t, "draft", next.(model).view.Input)

	next, _ = next.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, next.(model).width)
	assert.Contains(t, next.View(), "draft")
}

func TestModel_DropsWhenLoopIsBehind(t *testing.T) {
	events := make(chan domain.KeyEvent, 1)
	var src atomic.Pointer[domain.View]
	m := model{events: events, source: &src, keys: defaultKeyMap(), styles: DefaultStyles()}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	assert.Len(t, events, 1)
}

func TestTerminal_PollTimesOut(t *testing.T) {
	term := New()
	start := time.Now()
	_, ok, err := term.Poll(context.Background(), 10*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err = term.Poll(ctx, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)

	assert.NoError(t, term.Stop(), "stopping an unstarted terminal is a no-op")
}

func TestTerminal_EndToEnd(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	term := New(
		tea.WithInput(strings.NewReader("hi\r")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	term.Start()

	var got []domain.KeyEvent
	deadline := time.Now().Add(3 * time.Second)
	for len(got) < 3 && time.Now().Before(deadline) {
		ev, ok, err := term.Poll(context.Background(), 20*time.Millisecond)
		require.NoError(t, err)
		if ok {
			got = append(got, ev)
		}
	}
	assert.Equal(t, []domain.KeyEvent{
		{Kind: domain.KeyRune, Rune: 'h'},
		{Kind: domain.KeyRune, Rune: 'i'},
		{Kind: domain.KeyEnter},
	}, got)

	term.Render(domain.View{Input: "hi"})
	require.NoError(t, term.Stop())

	_, ok, err := term.Poll(context.Background(), 10*time.Millisecond)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrClosed)
}
