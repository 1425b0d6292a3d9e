package ipc

import (
	"bytes"
	"fmt"
	"ipc-toolkit/wire"
)

// frameReader reassembles frames from arbitrarily chunked input. Chunk
// boundaries carry no meaning: a frame may arrive in one Read or byte by
// byte, and one chunk may span several frames. Partial bytes persist
// across feeds; nothing is re-read or dropped.
type frameReader struct {
	buf        bytes.Buffer
	hdr        wire.Header
	hasHdr     bool
	maxPayload int

	// First parse error. The stream has no resynchronization point, so
	// the reader stays failed once a header is rejected.
	err error
}

func newFrameReader(maxPayload int) *frameReader {
	if maxPayload <= 0 {
		maxPayload = wire.DefaultMaxPayload
	}
	return &frameReader{maxPayload: maxPayload}
}

func (fr *frameReader) feed(p []byte) {
	fr.buf.Write(p)
}

// next returns the next complete frame, parsing at most one per call.
// A nil frame with nil error means more bytes are needed. The header is
// decoded as soon as its bytes are in, so corruption is detected before
// the payload arrives.
func (fr *frameReader) next() (*wire.Frame, error) {
	if fr.err != nil {
		return nil, fr.err
	}
	if !fr.hasHdr {
		if fr.buf.Len() < wire.HeaderSize {
			return nil, nil
		}
		hdr, err := wire.DecodeHeader(fr.buf.Next(wire.HeaderSize))
		if err != nil {
			fr.err = err
			return nil, err
		}
		if uint64(hdr.Length) > uint64(fr.maxPayload) {
			fr.err = fmt.Errorf("%w: %d bytes", wire.ErrPayloadTooLarge, hdr.Length)
			return nil, fr.err
		}
		fr.hdr = hdr
		fr.hasHdr = true
	}
	if fr.buf.Len() < int(fr.hdr.Length) {
		return nil, nil
	}
	payload := make([]byte, fr.hdr.Length)
	copy(payload, fr.buf.Next(int(fr.hdr.Length)))
	fr.hasHdr = false
	return &wire.Frame{Header: fr.hdr, Payload: payload}, nil
}

// midFrame reports whether part of a frame has been received. It decides
// whether the end of the stream is a clean close or a truncation.
func (fr *frameReader) midFrame() bool {
	return fr.hasHdr || fr.buf.Len() > 0
}
