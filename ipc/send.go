package ipc

import (
	"fmt"
	"ipc-toolkit/wire"
)

// Send writes one frame to the channel. Writes are serialized, so frames
// from concurrent senders interleave whole, never byte-wise. Sending
// does not require Setup; the outbound path is independent of the watch.
func (e *Endpoint) Send(t wire.Type, payload []byte) error {
	if err := e.errIfClosed(); err != nil {
		return err
	}
	if len(payload) > e.cfg.MaxPayloadSize {
		return fmt.Errorf("%w: %d bytes", wire.ErrPayloadTooLarge, len(payload))
	}
	e.writeLock.Lock()
	defer e.writeLock.Unlock()
	return wire.WriteFrame(e.rwc, t, payload)
}
