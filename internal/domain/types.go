package domain

const (
	// KeySize is the number of room key bytes used as key material.
	KeySize = 32
	// RoutingTagSize is the length of the cleartext tag prefixed to every datagram.
	RoutingTagSize = 32
)

// RoutingTag groups datagrams by room on the relay without revealing plaintext.
type RoutingTag [RoutingTagSize]byte

// Slice returns the tag as a []byte.
func (t RoutingTag) Slice() []byte { return t[:] }

// CipherKey is the 256-bit AEAD key shared by everyone holding the room key.
type CipherKey [KeySize]byte

// Slice returns the key as a []byte.
func (k CipherKey) Slice() []byte { return k[:] }

// Participant is a room member announced by a presence frame.
type Participant struct {
	Name string
}

// EntryKind distinguishes the history entry variants.
type EntryKind uint8

const (
	// EntryJoin records a presence announcement.
	EntryJoin EntryKind = iota
	// EntryChat records a decrypted chat message.
	EntryChat
)

// HistoryEntry is one line of room history. Join entries only carry Name.
type HistoryEntry struct {
	Kind EntryKind
	Name string
	Text string
}

// JoinEntry returns the history entry for a participant joining.
func JoinEntry(name string) HistoryEntry {
	return HistoryEntry{Kind: EntryJoin, Name: name}
}

// ChatEntry returns the history entry for a chat message.
func ChatEntry(sender, text string) HistoryEntry {
	return HistoryEntry{Kind: EntryChat, Name: sender, Text: text}
}

// FrameKind identifies how a received datagram must be interpreted.
type FrameKind uint8

const (
	FramePresence FrameKind = iota + 1
	FrameMessage
)

func (k FrameKind) String() string {
	switch k {
	case FramePresence:
		return "presence"
	case FrameMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Frame is a classified datagram. For presence frames Payload is the UTF-8
// display name; for message frames it is nonce || ciphertext || tag.
type Frame struct {
	Kind    FrameKind
	Payload []byte
}

// KeyKind enumerates the keystrokes the session reacts to.
type KeyKind uint8

const (
	KeyRune KeyKind = iota + 1
	KeyEnter
	KeyBackspace
	KeyInterrupt
	KeyToggleUsers
	KeyToggleRoomKey
)

// KeyEvent is one keyboard event delivered by a KeySource. Rune is set only
// for KeyRune.
type KeyEvent struct {
	Kind KeyKind
	Rune rune
}

// View is the read-only snapshot handed to a RenderSink each tick.
type View struct {
	Username     string
	RoomKey      string
	Fingerprint  string
	Participants []Participant
	History      []HistoryEntry
	Input        string
	ShowUsers    bool
	ShowRoomKey  bool
}
