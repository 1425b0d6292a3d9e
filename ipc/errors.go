package ipc

import "errors"

var (
	// ErrAlreadySetup reports a second Setup call on the same endpoint. The
	// watch is installed exactly once for the lifetime of the channel.
	ErrAlreadySetup = errors.New("endpoint already set up")
	// ErrNotSetup reports a dispatch attempt before Setup. Nothing can have
	// been received yet, so the call is a bug rather than an empty poll.
	ErrNotSetup = errors.New("endpoint not set up")
	// ErrNoHandler reports a frame selected for dispatch whose type has no
	// registered handler. The frame stays deferred; no payload is dropped.
	ErrNoHandler = errors.New("no handler for message type")
)
