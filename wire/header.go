package wire

import (
	"encoding/binary"
	"fmt"
)

// u32 Length + u32 Type, big-endian
const HeaderSize = 8

// Header is the fixed record prepended to every frame. Length counts the
// payload bytes that follow the header, never the header itself.
type Header struct {
	Length uint32
	Type   Type
}

func EncodeHeader(h Header) [HeaderSize]byte {
	var b [HeaderSize]byte
	binary.BigEndian.PutUint32(b[:4], h.Length)
	binary.BigEndian.PutUint32(b[4:], uint32(h.Type))
	return b
}

// DecodeHeader rejects any type field that is not exactly one catalog bit.
// Frame boundaries are lost once a header is bad, so callers must treat
// every error here as fatal to the channel.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrTruncated
	}
	h := Header{
		Length: binary.BigEndian.Uint32(b[:4]),
		Type:   Type(binary.BigEndian.Uint32(b[4:HeaderSize])),
	}
	if !h.Type.Valid() {
		return Header{}, fmt.Errorf("%w: %#x", ErrInvalidType, uint32(h.Type))
	}
	return h, nil
}
