package ipc

import (
	"errors"
	"fmt"
	"io"
	"ipc-toolkit/wire"
)

// Handler consumes the payload of one dispatched frame. Handlers run
// synchronously on the dispatching goroutine and must not call back into
// Dispatch or DispatchWait on the same endpoint.
type Handler func(payload []byte)

// Handle registers the handler for one exact type, replacing any previous
// one. A nil handler removes the registration. The catalog is fixed at
// build time, so an invalid type can only be a programming error and
// panics.
func (e *Endpoint) Handle(t wire.Type, h Handler) {
	if !t.Valid() {
		panic("Handler registered for invalid message type")
	}
	e.handlersLock.Lock()
	defer e.handlersLock.Unlock()
	if h == nil {
		delete(e.handlers, t)
		return
	}
	e.handlers[t] = h
}

func (e *Endpoint) handler(t wire.Type) Handler {
	e.handlersLock.RLock()
	defer e.handlersLock.RUnlock()
	return e.handlers[t]
}

// Dispatch makes one non-blocking dispatch attempt for the types in mask.
// Deferred frames are considered before new input, oldest first. If no
// deferred frame matches, at most one new frame is taken from the
// channel: a match is handed to its handler, a miss is deferred for a
// later call. The bool reports whether a matching frame was consumed.
//
// Frames received before the peer closed the channel keep flowing
// afterward; io.EOF surfaces only once everything received has been
// consumed or deferred. A channel that closed inside a frame reports
// wire.ErrTruncated instead, a corrupt header wire.ErrInvalidType, and a
// corrupt channel keeps reporting the same error on every later call.
func (e *Endpoint) Dispatch(mask wire.Mask) (bool, error) {
	if mask == 0 {
		panic("Dispatch mask must not be empty")
	}
	if err := e.errIfClosed(); err != nil {
		return false, err
	}
	if !e.watched.Load() {
		return false, ErrNotSetup
	}
	e.dispatchLock.Lock()
	defer e.dispatchLock.Unlock()
	consumed, _, err := e.dispatchLocked(mask)
	return consumed, err
}

// DispatchWait blocks until one frame matching mask has been dispatched,
// the channel fails, or the endpoint closes. Waiting holds the dispatch
// state, so concurrent dispatch calls on the same endpoint block for the
// duration. Calling it with MaskAny in a loop makes a plain
// deliver-everything message pump.
func (e *Endpoint) DispatchWait(mask wire.Mask) error {
	if mask == 0 {
		panic("Dispatch mask must not be empty")
	}
	if err := e.errIfClosed(); err != nil {
		return err
	}
	if !e.watched.Load() {
		return ErrNotSetup
	}
	e.dispatchLock.Lock()
	defer e.dispatchLock.Unlock()
	for {
		consumed, deferred, err := e.dispatchLocked(mask)
		if err != nil {
			return err
		}
		if consumed {
			return nil
		}
		if deferred {
			// The chunk that carried the deferred frame may hold more
			// complete frames; parse them out before blocking.
			continue
		}
		select {
		case p := <-e.recvCh:
			e.reader.feed(p)
		case <-e.recvErrCh:
			// Already latched by the pump; the next pass surfaces it
			// once the buffered data runs out.
		case <-e.die:
			return io.EOF
		}
	}
}

// Pending reports how many frames sit deferred for later dispatch. The
// queue is unbounded, so this is the number to watch when one side
// selects narrowly for long stretches.
func (e *Endpoint) Pending() int {
	e.dispatchLock.Lock()
	defer e.dispatchLock.Unlock()
	return e.queue.size()
}

// dispatchLocked runs a single dispatch pass. consumed reports that a
// handler ran. deferred reports that a frame was parsed but kept on the
// queue, meaning more complete frames may still sit in the read buffer.
func (e *Endpoint) dispatchLocked(mask wire.Mask) (consumed, deferred bool, err error) {
	// A poisoned reader means the channel is corrupt; even deferred
	// frames are no longer trustworthy.
	if err := e.reader.err; err != nil {
		return false, false, err
	}
	if i := e.queue.indexMatching(mask); i >= 0 {
		f := e.queue.frames[i]
		h := e.handler(f.Header.Type)
		if h == nil {
			return false, false, fmt.Errorf("%w: %s", ErrNoHandler, f.Header.Type)
		}
		e.queue.removeAt(i)
		e.log("Dispatching deferred frame: %s, Body(Length: %d)", f.Header.Type, len(f.Payload))
		h(f.Payload)
		return true, false, nil
	}
	f, err := e.pollFrame()
	if err != nil || f == nil {
		return false, false, err
	}
	if !mask.Has(f.Header.Type) {
		e.log("Deferring frame: %s, Body(Length: %d)", f.Header.Type, len(f.Payload))
		e.queue.push(f)
		return false, true, nil
	}
	h := e.handler(f.Header.Type)
	if h == nil {
		e.queue.push(f)
		return false, true, fmt.Errorf("%w: %s", ErrNoHandler, f.Header.Type)
	}
	e.log("Dispatching frame: %s, Body(Length: %d)", f.Header.Type, len(f.Payload))
	h(f.Payload)
	return true, false, nil
}

// pollFrame moves buffered chunks into the reader until one frame
// completes, without blocking. A nil frame with nil error means no
// complete frame is available yet.
func (e *Endpoint) pollFrame() (*wire.Frame, error) {
	for {
		f, err := e.reader.next()
		if f != nil || err != nil {
			return f, err
		}
		select {
		case p := <-e.recvCh:
			e.reader.feed(p)
		default:
			return nil, e.drainedError()
		}
	}
}

// drainedError classifies the latched channel error once all buffered
// data has been consumed. EOF inside a frame is truncation, not a clean
// close.
func (e *Endpoint) drainedError() error {
	err := e.getReadError()
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		if e.reader.midFrame() {
			return wire.ErrTruncated
		}
		return io.EOF
	}
	return err
}
