package wire

import "errors"

var (
	// ErrInvalidType reports a header whose type field is not exactly one
	// known catalog bit. There is no resynchronization point after this;
	// callers must treat the channel as corrupt.
	ErrInvalidType = errors.New("invalid message type")
	// ErrPayloadTooLarge reports a declared payload length above the
	// configured bound.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrTruncated reports a channel that closed between a frame header
	// and the end of its payload, or inside the header itself.
	ErrTruncated = errors.New("channel closed mid-frame")
)
