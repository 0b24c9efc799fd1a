package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"artichat/internal/crypto"
	"artichat/internal/domain"
	"artichat/internal/protocol/message"
)

const (
	// DefaultPollInterval bounds the keystroke wait in each tick.
	DefaultPollInterval = 100 * time.Millisecond

	recvBufferSize = 2048
	recvWindow     = time.Millisecond
)

// ErrNotActive is returned by Run, and by Enter in HandleKey, when the session
// has no open socket.
var ErrNotActive = errors.New("session is not active")

// State is a lifecycle stage of a Session.
type State uint8

const (
	StateInitializing State = iota
	StateActive
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateActive:
		return "active"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Config carries the per-session settings resolved by the caller.
type Config struct {
	Username     string
	RoomKey      string // shown in the room key panel only
	LocalAddr    string
	RelayAddr    string
	PollInterval time.Duration
	HistoryLimit int
}

// Session is one user's view of a room plus the socket that feeds it.
type Session struct {
	cfg         Config
	tag         domain.RoutingTag
	fingerprint string
	codec       domain.FrameCodec
	cipher      domain.Cipher
	log         *logrus.Entry

	conn  net.Conn
	buf   []byte
	state State
	exit  bool

	participants []domain.Participant
	history      *History
	input        []rune
	showUsers    bool
	showRoomKey  bool
}

// New builds a session in the Initializing state. A nil log discards output.
func New(cfg Config, tag domain.RoutingTag, codec domain.FrameCodec, cipher domain.Cipher, log *logrus.Entry) *Session {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Session{
		cfg:         cfg,
		tag:         tag,
		fingerprint: crypto.Fingerprint(tag),
		codec:       codec,
		cipher:      cipher,
		log:         log,
		buf:         make([]byte, recvBufferSize),
		history:     NewHistory(cfg.HistoryLimit),
	}
}

// Open binds the local socket, connects it to the relay and announces the
// user. Bind and connect failures wrap domain.ErrSocketUnavailable and leave
// the session Initializing.
func (s *Session) Open(ctx context.Context) error {
	if s.state != StateInitializing {
		return fmt.Errorf("open: session is %s", s.state)
	}
	laddr, err := net.ResolveUDPAddr("udp", s.cfg.LocalAddr)
	if err != nil {
		return fmt.Errorf("%w: resolve %s: %w", domain.ErrSocketUnavailable, s.cfg.LocalAddr, err)
	}
	d := net.Dialer{LocalAddr: laddr}
	conn, err := d.DialContext(ctx, "udp", s.cfg.RelayAddr)
	if err != nil {
		return fmt.Errorf("%w: bind %s, connect %s: %w", domain.ErrSocketUnavailable, s.cfg.LocalAddr, s.cfg.RelayAddr, err)
	}
	s.conn = conn
	s.state = StateActive

	s.log.WithFields(logrus.Fields{
		"local":       conn.LocalAddr().String(),
		"relay":       s.cfg.RelayAddr,
		"fingerprint": s.fingerprint,
	}).Info("session open")

	if _, err := conn.Write(s.codec.EncodePresence(s.tag, s.cfg.Username)); err != nil {
		s.log.WithError(err).Warn("presence announcement not sent")
	}
	return nil
}

// Run drives the Active loop until an interrupt key, context cancellation
// or a fatal socket error. The socket is closed on return.
func (s *Session) Run(ctx context.Context, keys domain.KeySource, sink domain.RenderSink) error {
	if s.state != StateActive {
		return ErrNotActive
	}
	defer s.Close()

	for !s.exit {
		if ctx.Err() != nil {
			break
		}
		if err := s.receive(); err != nil {
			s.log.WithError(err).Error("receive failed")
			return err
		}

		sink.Render(s.Snapshot())

		ev, ok, err := keys.Poll(ctx, s.cfg.PollInterval)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			return fmt.Errorf("poll keys: %w", err)
		}
		if !ok {
			continue
		}
		if err := s.HandleKey(ev); err != nil {
			s.log.WithError(err).Error("send failed")
			return err
		}
	}
	s.log.Info("session terminated")
	return nil
}

// HandleKey applies one keystroke. Only a failed send returns an error;
// Enter on a session without a socket returns ErrNotActive.
func (s *Session) HandleKey(ev domain.KeyEvent) error {
	switch ev.Kind {
	case domain.KeyInterrupt:
		s.exit = true
	case domain.KeyRune:
		s.input = append(s.input, ev.Rune)
	case domain.KeyBackspace:
		if n := len(s.input); n > 0 {
			s.input = s.input[:n-1]
		}
	case domain.KeyEnter:
		return s.send()
	case domain.KeyToggleUsers:
		s.showUsers = !s.showUsers
	case domain.KeyToggleRoomKey:
		s.showRoomKey = !s.showRoomKey
	}
	return nil
}

// Snapshot copies the observable state for a render sink.
func (s *Session) Snapshot() domain.View {
	return domain.View{
		Username:     s.cfg.Username,
		RoomKey:      s.cfg.RoomKey,
		Fingerprint:  s.fingerprint,
		Participants: append([]domain.Participant(nil), s.participants...),
		History:      s.history.Entries(),
		Input:        string(s.input),
		ShowUsers:    s.showUsers,
		ShowRoomKey:  s.showRoomKey,
	}
}

// State reports the lifecycle stage.
func (s *Session) State() State { return s.state }

// LocalAddr returns the bound socket address, or nil before Open.
func (s *Session) LocalAddr() net.Addr {
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// Close releases the socket and moves the session to Terminated. It is safe
// to call more than once.
func (s *Session) Close() error {
	s.exit = true
	s.state = StateTerminated
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func (s *Session) send() error {
	if s.conn == nil {
		return ErrNotActive
	}
	sealed, err := s.cipher.Encrypt(message.Compose(s.cfg.Username, string(s.input)))
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	if _, err := s.conn.Write(s.codec.EncodeMessage(s.tag, sealed)); err != nil {
		return fmt.Errorf("%w: send: %w", domain.ErrSocketUnavailable, err)
	}
	s.input = s.input[:0]
	return nil
}

// receive reads at most one datagram without blocking the tick.
func (s *Session) receive() error {
	if err := s.conn.SetReadDeadline(time.Now().Add(recvWindow)); err != nil {
		return fmt.Errorf("%w: set deadline: %w", domain.ErrSocketUnavailable, err)
	}
	n, err := s.conn.Read(s.buf)
	if err != nil {
		if wouldBlock(err) {
			return nil
		}
		return fmt.Errorf("%w: receive: %w", domain.ErrSocketUnavailable, err)
	}
	s.ingest(s.buf[:n])
	return nil
}

func (s *Session) ingest(datagram []byte) {
	f, err := s.codec.Classify(datagram)
	if err != nil {
		s.log.WithError(err).WithField("bytes", len(datagram)).Warn("dropping datagram")
		return
	}

	switch f.Kind {
	case domain.FramePresence:
		name := string(f.Payload)
		s.participants = append(s.participants, domain.Participant{Name: name})
		s.history.Append(domain.JoinEntry(name))
		s.log.WithField("name", name).Debug("participant joined")

	case domain.FrameMessage:
		plaintext, err := s.cipher.Decrypt(f.Payload)
		if err != nil {
			s.log.WithError(err).WithField("bytes", len(f.Payload)).Debug("dropping undecryptable message")
			return
		}
		sender, text, err := message.Parse(plaintext)
		if err != nil {
			s.log.WithError(err).Debug("dropping malformed plaintext")
			return
		}
		s.history.Append(domain.ChatEntry(sender, text))
	}
}

func wouldBlock(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
