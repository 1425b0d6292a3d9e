package wire

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// DefaultMaxPayload bounds declared payload lengths unless the caller
// picks its own limit. A header declaring more than the bound is treated
// as corruption rather than trusted with an allocation.
const DefaultMaxPayload = 16 << 20

// Frame is one complete header+payload unit.
type Frame struct {
	Header  Header
	Payload []byte
}

// WriteFrame writes header then payload with no padding in between. This
// is the entire sender side of the protocol; it must stay byte-compatible
// with DecodeHeader and ReadFrame.
func WriteFrame(w io.Writer, t Type, payload []byte) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %#x", ErrInvalidType, uint32(t))
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return ErrPayloadTooLarge
	}
	hdr := EncodeHeader(Header{Length: uint32(len(payload)), Type: t})
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if len(payload) > 0 {
		if _, err := w.Write(payload); err != nil {
			return err
		}
	}
	return nil
}

// ReadFrame reads one complete frame, blocking until it arrives. It suits
// consumers that drive a channel synchronously; event-driven consumers
// use the ipc package instead. io.EOF is returned only on a clean close
// at a frame boundary; a close mid-frame is reported as ErrTruncated.
func ReadFrame(r io.Reader, maxPayload int) (Frame, error) {
	var hb [HeaderSize]byte
	if _, err := io.ReadFull(r, hb[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Frame{}, ErrTruncated
		}
		return Frame{}, err
	}
	hdr, err := DecodeHeader(hb[:])
	if err != nil {
		return Frame{}, err
	}
	if maxPayload <= 0 {
		maxPayload = DefaultMaxPayload
	}
	if uint64(hdr.Length) > uint64(maxPayload) {
		return Frame{}, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, hdr.Length)
	}
	payload := make([]byte, hdr.Length)
	if hdr.Length > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
				return Frame{}, ErrTruncated
			}
			return Frame{}, err
		}
	}
	return Frame{Header: hdr, Payload: payload}, nil
}
