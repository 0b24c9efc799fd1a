package frame

import (
	"fmt"
	"unicode/utf8"

	"artichat/internal/domain"
)

// MessageThreshold is the smallest datagram SizeCodec treats as a message:
// the nonce length of the AEAD suites.
const MessageThreshold = 12

const (
	typePresence byte = 0x01
	typeMessage  byte = 0x02
)

// SizeCodec multiplexes presence and message frames by datagram length.
type SizeCodec struct{}

// TypedCodec multiplexes presence and message frames with a leading type byte.
type TypedCodec struct{}

var (
	_ domain.FrameCodec = SizeCodec{}
	_ domain.FrameCodec = TypedCodec{}
)

// ForWire returns the codec for a configured wire mode.
func ForWire(mode string) (domain.FrameCodec, error) {
	switch mode {
	case "legacy", "":
		return SizeCodec{}, nil
	case "typed":
		return TypedCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown wire mode %q", mode)
	}
}

// EncodePresence returns tag || name.
func (SizeCodec) EncodePresence(tag domain.RoutingTag, name string) []byte {
	return join(tag, nil, []byte(name))
}

// EncodeMessage returns tag || sealed.
func (SizeCodec) EncodeMessage(tag domain.RoutingTag, sealed []byte) []byte {
	return join(tag, nil, sealed)
}

// Classify decides the frame kind from the datagram length alone.
func (SizeCodec) Classify(datagram []byte) (domain.Frame, error) {
	if len(datagram) < MessageThreshold {
		return presence(datagram)
	}
	return domain.Frame{Kind: domain.FrameMessage, Payload: datagram}, nil
}

// EncodePresence returns tag || 0x01 || name.
func (TypedCodec) EncodePresence(tag domain.RoutingTag, name string) []byte {
	return join(tag, []byte{typePresence}, []byte(name))
}

// EncodeMessage returns tag || 0x02 || sealed.
func (TypedCodec) EncodeMessage(tag domain.RoutingTag, sealed []byte) []byte {
	return join(tag, []byte{typeMessage}, sealed)
}

// Classify reads the leading type byte.
func (TypedCodec) Classify(datagram []byte) (domain.Frame, error) {
	if len(datagram) == 0 {
		return domain.Frame{}, fmt.Errorf("empty datagram: %w", domain.ErrMalformedFrame)
	}
	switch datagram[0] {
	case typePresence:
		return presence(datagram[1:])
	case typeMessage:
		return domain.Frame{Kind: domain.FrameMessage, Payload: datagram[1:]}, nil
	default:
		return domain.Frame{}, fmt.Errorf("frame type 0x%02x: %w", datagram[0], domain.ErrMalformedFrame)
	}
}

func presence(name []byte) (domain.Frame, error) {
	if !utf8.Valid(name) {
		return domain.Frame{}, fmt.Errorf("presence name not utf-8: %w", domain.ErrMalformedFrame)
	}
	return domain.Frame{Kind: domain.FramePresence, Payload: name}, nil
}

func join(tag domain.RoutingTag, header, body []byte) []byte {
	out := make([]byte, 0, domain.RoutingTagSize+len(header)+len(body))
	out = append(out, tag[:]...)
	out = append(out, header...)
	return append(out, body...)
}
