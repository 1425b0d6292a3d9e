package ipc

import (
	"io"
	"ipc-toolkit/wire"
	"sync"
	"sync/atomic"
)

// Endpoint is one end of a framed message channel between two cooperating
// processes. It owns no transport: any io.ReadWriteCloser delivering
// ordered reliable bytes with EOF on close works (a net.Conn, one end of
// a socketpair, a net.Pipe).
//
// Inbound frames flow through a single watch goroutine installed by
// Setup; outbound frames are written directly by Send. The two paths
// share nothing but the channel handle, so sending never requires Setup.
type Endpoint struct {
	rwc io.ReadWriteCloser
	cfg Config

	reader *frameReader
	queue  pendingQueue

	handlers     map[wire.Type]Handler
	handlersLock sync.RWMutex

	// Guards reader and queue. Dispatch and DispatchWait callers
	// serialize here.
	dispatchLock sync.Mutex

	recvCh    chan []byte
	recvErr   atomic.Value
	recvErrCh chan error

	writeLock sync.Mutex

	watched atomic.Bool
	closed  atomic.Bool

	wg sync.WaitGroup

	die       chan struct{}
	closeOnce sync.Once
}

// New wraps an established channel. No I/O happens until Setup or Send.
func New(rwc io.ReadWriteCloser, cfg Config) *Endpoint {
	cfg = sanitizeConfig(cfg)
	return &Endpoint{
		rwc:       rwc,
		cfg:       cfg,
		reader:    newFrameReader(cfg.MaxPayloadSize),
		handlers:  make(map[wire.Type]Handler),
		recvCh:    make(chan []byte, cfg.ReadBacklog),
		recvErrCh: make(chan error, 1),
		die:       make(chan struct{}),
	}
}

// Setup installs the read watch on the channel. It succeeds exactly once
// per endpoint; every later call reports ErrAlreadySetup.
func (e *Endpoint) Setup() error {
	if err := e.errIfClosed(); err != nil {
		return err
	}
	if !e.watched.CompareAndSwap(false, true) {
		return ErrAlreadySetup
	}
	e.wg.Add(1)
	go e.readRoutine()
	return nil
}

// Close closes the underlying channel and stops the watch. Frames still
// deferred in the pending queue are discarded.
func (e *Endpoint) Close() error {
	if err := e.errIfClosed(); err != nil {
		return err
	}
	e.closed.Store(true)
	e.closeOnce.Do(func() {
		close(e.die)
	})
	if err := e.rwc.Close(); err != nil {
		return err
	}
	e.wg.Wait()
	return nil
}

func (e *Endpoint) readRoutine() {
	defer func() {
		e.wg.Done()
		e.log("Read routine done")
	}()
	buf := make([]byte, e.cfg.ReadBufferSize)
	for {
		n, err := e.rwc.Read(buf)
		if n > 0 {
			p := make([]byte, n)
			copy(p, buf)
			select {
			case e.recvCh <- p:
			case <-e.die:
				return
			}
		}
		if err != nil {
			e.handleReadError(err)
			return
		}
	}
}

// handleReadError latches the terminal channel error. Every chunk read
// before the error is already in recvCh, so dispatchers drain all data
// before they can observe the error.
func (e *Endpoint) handleReadError(err error) {
	e.recvErr.Store(err)
	e.recvErrCh <- err
}

func (e *Endpoint) getReadError() error {
	if err, ok := e.recvErr.Load().(error); ok {
		return err
	}
	return nil
}

func (e *Endpoint) errIfClosed() error {
	if e.closed.Load() {
		return io.ErrClosedPipe
	}
	return nil
}
