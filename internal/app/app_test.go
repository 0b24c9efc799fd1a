package app

import (
	"context"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"artichat/internal/crypto"
	"artichat/internal/protocol/frame"
	"artichat/internal/relay"
	"artichat/internal/tui"
)

func TestApp_RunSendsThroughRelay(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := relay.NewServer(nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = srv.Serve(ctx, pc) }()

	key, tag, err := crypto.Derive(joinKey)
	require.NoError(t, err)
	codec := frame.SizeCodec{}

	alice, err := net.Dial("udp", pc.LocalAddr().String())
	require.NoError(t, err)
	t.Cleanup(func() { _ = alice.Close() })
	_, err = alice.Write(codec.EncodePresence(tag, "alice"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return srv.Members(tag) == 1 }, 2*time.Second, 10*time.Millisecond)

	cfg := DefaultConfig()
	cfg.Username = "bob"
	cfg.RoomKey = joinKey
	cfg.Port = 0
	cfg.RelayAddr = pc.LocalAddr().String()
	cfg.PollInterval = 10 * time.Millisecond

	w, err := NewWire(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	term := tui.New(
		tea.WithInput(strings.NewReader("hi\r\x03")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	require.NoError(t, New(w, term).Run(ctx))

	engine, err := crypto.NewEngine(crypto.SuiteAESGCM, key)
	require.NoError(t, err)

	buf := make([]byte, 2048)
	require.NoError(t, alice.SetReadDeadline(time.Now().Add(2*time.Second)))

	n, err := alice.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "bob", string(buf[:n]))

	n, err = alice.Read(buf)
	require.NoError(t, err)
	plaintext, err := engine.Decrypt(buf[:n])
	require.NoError(t, err)
	assert.Equal(t, "bob|hi", plaintext)
}
