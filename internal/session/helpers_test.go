package session_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"artichat/internal/crypto"
	"artichat/internal/domain"
	"artichat/internal/protocol/frame"
	"artichat/internal/session"
)

const (
	roomKey  = "0123456789abcdef0123456789abcdef"
	deadline = 3 * time.Second
)

// fakeRelay is the connected peer of a session under test.
type fakeRelay struct {
	t    *testing.T
	conn net.PacketConn
}

func newFakeRelay(t *testing.T) *fakeRelay {
	t.Helper()
	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return &fakeRelay{t: t, conn: conn}
}

func (r *fakeRelay) addr() string { return r.conn.LocalAddr().String() }

// next returns the next datagram the relay receives.
func (r *fakeRelay) next() ([]byte, net.Addr) {
	r.t.Helper()
	require.NoError(r.t, r.conn.SetReadDeadline(time.Now().Add(deadline)))
	buf := make([]byte, 2048)
	n, from, err := r.conn.ReadFrom(buf)
	require.NoError(r.t, err)
	return buf[:n], from
}

func (r *fakeRelay) sendTo(to net.Addr, payload []byte) {
	r.t.Helper()
	_, err := r.conn.WriteTo(payload, to)
	require.NoError(r.t, err)
}

// recordingSink keeps the latest rendered view.
type recordingSink struct {
	last    domain.View
	renders int
}

func (s *recordingSink) Render(v domain.View) {
	s.last = v
	s.renders++
}

// scriptedKeys replays events, then waits for done to report true before
// interrupting. It gives up after the test deadline.
type scriptedKeys struct {
	events []domain.KeyEvent
	done   func() bool
	until  time.Time
}

func newScriptedKeys(done func() bool, events ...domain.KeyEvent) *scriptedKeys {
	if done == nil {
		done = func() bool { return true }
	}
	return &scriptedKeys{events: events, done: done, until: time.Now().Add(deadline)}
}

func (k *scriptedKeys) Poll(ctx context.Context, timeout time.Duration) (domain.KeyEvent, bool, error) {
	if len(k.events) > 0 {
		ev := k.events[0]
		k.events = k.events[1:]
		return ev, true, nil
	}
	if k.done() || time.Now().After(k.until) {
		return domain.KeyEvent{Kind: domain.KeyInterrupt}, true, nil
	}
	select {
	case <-ctx.Done():
		return domain.KeyEvent{}, false, ctx.Err()
	case <-time.After(timeout):
		return domain.KeyEvent{}, false, nil
	}
}

func runes(s string) []domain.KeyEvent {
	var out []domain.KeyEvent
	for _, r := range s {
		out = append(out, domain.KeyEvent{Kind: domain.KeyRune, Rune: r})
	}
	return out
}

func enter() domain.KeyEvent { return domain.KeyEvent{Kind: domain.KeyEnter} }

func testEngine(t *testing.T) *crypto.Engine {
	t.Helper()
	key, _, err := crypto.Derive(roomKey)
	require.NoError(t, err)
	e, err := crypto.NewEngine(crypto.SuiteAESGCM, key)
	require.NoError(t, err)
	return e
}

func testTag(t *testing.T) domain.RoutingTag {
	t.Helper()
	_, tag, err := crypto.Derive(roomKey)
	require.NoError(t, err)
	return tag
}

// openSession opens a session for username against relay on an ephemeral port.
func openSession(t *testing.T, relay *fakeRelay, username string) *session.Session {
	t.Helper()
	s := session.New(session.Config{
		Username:     username,
		RoomKey:      roomKey,
		LocalAddr:    "127.0.0.1:0",
		RelayAddr:    relay.addr(),
		PollInterval: 5 * time.Millisecond,
	}, testTag(t), frame.SizeCodec{}, testEngine(t), nil)
	require.NoError(t, s.Open(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}
