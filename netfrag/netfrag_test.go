package netfrag

import (
	"io"
	"math/rand"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConn(t *testing.T) {
	rand := rand.New(rand.NewSource(0))
	expectedLen := 64
	expected := make([]byte, expectedLen)
	buf := make([]byte, 256)

	var ns, nc *Conn
	{ // Setup
		require := require.New(t)
		_, err := io.ReadFull(rand, expected)
		require.Nil(err)

		s, c := net.Pipe()
		ns = New(s, Config{})
		nc = New(c, Config{})
	}

	// Pipe writes rendezvous with reads, so the writer runs aside and
	// reports back once the reader has drained everything.
	clientWrite := func() <-chan error {
		errCh := make(chan error, 1)
		go func() {
			w, err := nc.Write(expected)
			if err == nil && w != expectedLen {
				err = io.ErrShortWrite
			}
			errCh <- err
		}()
		return errCh
	}

	serverRead := func(require *require.Assertions, fragmentSize int) int {
		r := 0
		for r < expectedLen {
			n, err := ns.Read(buf[r:])
			require.Nil(err)
			if fragmentSize > 0 {
				require.Equal(fragmentSize, n)
			}
			r += n
		}
		return r
	}

	t.Run("normal", func(t *testing.T) {
		require := require.New(t)
		errCh := clientWrite()
		r := serverRead(require, 0)
		require.Nil(<-errCh)
		require.Equal(expectedLen, r)
		require.Equal(expected, buf[:r])
	})

	t.Run("fragmentation:read", func(t *testing.T) {
		require := require.New(t)
		cfg := Config{
			ReadFragmentSize: 16,
		}
		ns.Update(cfg)
		nc.Reset()
		errCh := clientWrite()
		r := serverRead(require, cfg.ReadFragmentSize)
		require.Nil(<-errCh)
		require.Equal(expected, buf[:r])
	})

	t.Run("fragmentation:write", func(t *testing.T) {
		require := require.New(t)
		cfg := Config{
			WriteFragmentSize: 16,
		}
		nc.Update(cfg)
		ns.Reset()
		errCh := clientWrite()
		r := serverRead(require, cfg.WriteFragmentSize)
		require.Nil(<-errCh)
		require.Equal(expected, buf[:r])
	})

	t.Run("fragmentation:both", func(t *testing.T) {
		require := require.New(t)
		ns.Update(Config{ReadFragmentSize: 8})
		nc.Update(Config{WriteFragmentSize: 8})
		errCh := clientWrite()
		r := serverRead(require, 8)
		require.Nil(<-errCh)
		require.Equal(expected, buf[:r])
	})

	{ // Teardown
		require := require.New(t)
		require.Nil(nc.Close())
		require.Nil(ns.Close())
	}
}
