package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/sirupsen/logrus"

	"artichat/internal/domain"
)

// DefaultAddr is the well-known relay address clients connect to.
const DefaultAddr = "127.0.0.1:9595"

const maxDatagram = 64 * 1024

// Server fans datagrams out to the other members of their room.
type Server struct {
	log *logrus.Entry

	mu    sync.RWMutex
	rooms map[domain.RoutingTag]map[string]net.Addr
}

// NewServer returns a relay with no rooms. A nil log discards output.
func NewServer(log *logrus.Entry) *Server {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Server{
		log:   log,
		rooms: make(map[domain.RoutingTag]map[string]net.Addr),
	}
}

// ListenAndServe binds addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.log.WithField("addr", conn.LocalAddr().String()).Info("relay listening")
	return s.Serve(ctx, conn)
}

// Serve reads from conn until ctx is done, then closes it. It returns nil on
// cancellation and the read error otherwise.
func (s *Server) Serve(ctx context.Context, conn net.PacketConn) error {
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	buf := make([]byte, maxDatagram)
	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			return fmt.Errorf("relay read: %w", err)
		}
		s.forward(conn, buf[:n], from)
	}
}

// Members reports how many senders the relay has seen for tag.
func (s *Server) Members(tag domain.RoutingTag) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms[tag])
}

func (s *Server) forward(conn net.PacketConn, datagram []byte, from net.Addr) {
	if len(datagram) < domain.RoutingTagSize {
		s.log.WithFields(logrus.Fields{"from": from.String(), "bytes": len(datagram)}).Debug("dropping short datagram")
		return
	}
	var tag domain.RoutingTag
	copy(tag[:], datagram[:domain.RoutingTagSize])
	payload := datagram[domain.RoutingTagSize:]

	peers := s.join(tag, from)
	for _, peer := range peers {
		if _, err := conn.WriteTo(payload, peer); err != nil {
			s.log.WithError(err).WithField("to", peer.String()).Warn("forward failed")
		}
	}
}

// join records from as a member of tag and returns the other members.
func (s *Server) join(tag domain.RoutingTag, from net.Addr) []net.Addr {
	key := from.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[tag]
	if !ok {
		room = make(map[string]net.Addr)
		s.rooms[tag] = room
	}
	if _, known := room[key]; !known {
		room[key] = from
		s.log.WithFields(logrus.Fields{"member": key, "members": len(room)}).Info("member joined room")
	}

	peers := make([]net.Addr, 0, len(room)-1)
	for k, addr := range room {
		if k != key {
			peers = append(peers, addr)
		}
	}
	return peers
}
