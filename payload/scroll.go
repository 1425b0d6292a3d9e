package payload

import (
	"encoding/binary"
	"fmt"
	"ipc-toolkit/wire"
)

// ScrollKind says why scroll state is being reported. It is a field
// value, not a message type bit.
type ScrollKind uint32

const (
	// Document size changed
	ScrollDocResize ScrollKind = iota
	// Window size changed
	ScrollWinResize
	// The viewport moved
	ScrollMove
)

func (k ScrollKind) Valid() bool {
	return k <= ScrollMove
}

func (k ScrollKind) String() string {
	switch k {
	case ScrollDocResize:
		return "docresize"
	case ScrollWinResize:
		return "winresize"
	case ScrollMove:
		return "scroll"
	}
	return fmt.Sprintf("unknown(%d)", uint32(k))
}

// i32 H + i32 V + u64 PageID + u32 Kind
const ScrollSize = 20

// Scroll reports the scroll state of one page.
type Scroll struct {
	H, V   int32
	PageID uint64
	Kind   ScrollKind
}

func (s Scroll) Type() wire.Type { return wire.TypeScroll }

func (s Scroll) Encode() []byte {
	b := make([]byte, ScrollSize)
	binary.BigEndian.PutUint32(b[:], uint32(s.H))
	binary.BigEndian.PutUint32(b[4:], uint32(s.V))
	binary.BigEndian.PutUint64(b[8:], s.PageID)
	binary.BigEndian.PutUint32(b[16:], uint32(s.Kind))
	return b
}

func DecodeScroll(b []byte) (Scroll, error) {
	if len(b) != ScrollSize {
		return Scroll{}, fmt.Errorf("%w: scroll needs %d bytes, got %d", ErrBadPayload, ScrollSize, len(b))
	}
	s := Scroll{
		H:      int32(binary.BigEndian.Uint32(b[:])),
		V:      int32(binary.BigEndian.Uint32(b[4:])),
		PageID: binary.BigEndian.Uint64(b[8:]),
		Kind:   ScrollKind(binary.BigEndian.Uint32(b[16:])),
	}
	if !s.Kind.Valid() {
		return Scroll{}, fmt.Errorf("%w: unknown scroll kind %d", ErrBadPayload, uint32(s.Kind))
	}
	return s, nil
}
