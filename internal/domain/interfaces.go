package domain

import (
	"context"
	"time"
)

// FrameCodec encodes outbound datagrams and classifies inbound ones.
type FrameCodec interface {
	EncodePresence(tag RoutingTag, name string) []byte
	EncodeMessage(tag RoutingTag, sealed []byte) []byte
	Classify(datagram []byte) (Frame, error)
}

// Cipher seals and opens chat payloads under a single room key.
type Cipher interface {
	Encrypt(plaintext string) ([]byte, error)
	Decrypt(frame []byte) (string, error)
}

// KeySource delivers keyboard events. Poll blocks for at most timeout and
// reports ok=false when nothing arrived.
type KeySource interface {
	Poll(ctx context.Context, timeout time.Duration) (ev KeyEvent, ok bool, err error)
}

// RenderSink consumes session snapshots. Render must not block.
type RenderSink interface {
	Render(view View)
}
