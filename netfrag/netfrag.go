package netfrag

import (
	"net"
	"os"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Per-fragment traffic is only visible at debug level; raise it when a
// chunk-boundary bug needs the exact read/write sizes.
var log = &logrus.Logger{
	Out:   os.Stderr,
	Level: logrus.WarnLevel,
	Formatter: &logrus.TextFormatter{
		FullTimestamp: true,
	},
}

type Config struct {
	// The largest number of bytes a single Read may return.
	// Zero value means reads pass through unchanged.
	ReadFragmentSize int
	// The largest number of bytes handed to the underlying conn per write.
	// Zero value means writes pass through unchanged.
	WriteFragmentSize int
}

// Conn wraps a stream-oriented net.Conn and chops its reads and writes
// into small fragments. Consumers that must survive arbitrary chunk
// boundaries are tested against it; a correct consumer cannot tell a
// fragmented conn from a plain one.
type Conn struct {
	net.Conn

	readFragmentSize  uint32
	writeFragmentSize uint32

	readLock  sync.Mutex
	writeLock sync.Mutex
}

func New(conn net.Conn, cfg Config) *Conn {
	nf := &Conn{Conn: conn}
	nf.Update(cfg)
	return nf
}

func (nf *Conn) Read(b []byte) (int, error) {
	nf.readLock.Lock()
	defer nf.readLock.Unlock()
	fs := int(atomic.LoadUint32(&nf.readFragmentSize))
	if fs > 0 && fs < len(b) {
		b = b[:fs]
	}
	n, err := nf.Conn.Read(b)
	if n > 0 {
		log.WithField("op", "read").Debugf("Read %d bytes", n)
	}
	return n, err
}

func (nf *Conn) Write(b []byte) (int, error) {
	nf.writeLock.Lock()
	defer nf.writeLock.Unlock()
	n := len(b)
	fs := int(atomic.LoadUint32(&nf.writeFragmentSize))
	if fs <= 0 || fs > n {
		fs = n
	}
	w := 0
	for w < n {
		if m := len(b); fs > m {
			fs = m
		}
		nn, err := nf.Conn.Write(b[:fs])
		w += nn
		if err != nil {
			return w, err
		}
		log.WithField("op", "write").Debugf("Wrote %d bytes", nn)
		b = b[nn:]
	}
	return w, nil
}

// Update changes the fragment sizes for the emulation.
// Takes effect on the next read/write operations.
func (nf *Conn) Update(cfg Config) {
	atomic.StoreUint32(&nf.readFragmentSize, uint32(cfg.ReadFragmentSize))
	atomic.StoreUint32(&nf.writeFragmentSize, uint32(cfg.WriteFragmentSize))
}

// Reset removes all fragmentation.
func (nf *Conn) Reset() {
	nf.Update(Config{})
}
