package ipc

import (
	"ipc-toolkit/wire"
	"testing"

	"github.com/stretchr/testify/require"
)

func queuedFrame(mt wire.Type, payload string) *wire.Frame {
	return &wire.Frame{
		Header:  wire.Header{Length: uint32(len(payload)), Type: mt},
		Payload: []byte(payload),
	}
}

func TestPendingQueue(t *testing.T) {
	t.Run("fifo", func(t *testing.T) {
		require := require.New(t)
		q := &pendingQueue{}
		q.push(queuedFrame(wire.TypeScroll, "a"))
		q.push(queuedFrame(wire.TypeScroll, "b"))
		q.push(queuedFrame(wire.TypeScroll, "c"))

		mask := wire.MaskOf(wire.TypeScroll)
		for _, want := range []string{"a", "b", "c"} {
			i := q.indexMatching(mask)
			require.Equal(0, i)
			require.Equal(want, string(q.removeAt(i).Payload))
		}
		require.Equal(0, q.size())
	})

	t.Run("skipScan", func(t *testing.T) {
		require := require.New(t)
		q := &pendingQueue{}
		q.push(queuedFrame(wire.TypeScroll, "s1"))
		q.push(queuedFrame(wire.TypeModuleMsg, "m1"))
		q.push(queuedFrame(wire.TypeScroll, "s2"))
		q.push(queuedFrame(wire.TypeModuleMsg, "m2"))

		i := q.indexMatching(wire.MaskOf(wire.TypeModuleMsg))
		require.Equal(1, i)
		require.Equal("m1", string(q.removeAt(i).Payload))

		// skipped frames keep their order
		require.Equal(3, q.size())
		require.Equal("s1", string(q.frames[0].Payload))
		require.Equal("s2", string(q.frames[1].Payload))
		require.Equal("m2", string(q.frames[2].Payload))

		i = q.indexMatching(wire.MaskOf(wire.TypeModuleMsg))
		require.Equal(2, i)
		require.Equal("m2", string(q.removeAt(i).Payload))

		mask := wire.MaskOf(wire.TypeScroll)
		require.Equal("s1", string(q.removeAt(q.indexMatching(mask)).Payload))
		require.Equal("s2", string(q.removeAt(q.indexMatching(mask)).Payload))
	})

	t.Run("noMatch", func(t *testing.T) {
		require := require.New(t)
		q := &pendingQueue{}
		require.Equal(-1, q.indexMatching(wire.MaskAny))

		q.push(queuedFrame(wire.TypeScroll, "s"))
		require.Equal(-1, q.indexMatching(wire.MaskOf(wire.TypeConfigLoaded)))
		require.Equal(1, q.size())
	})

	t.Run("release", func(t *testing.T) {
		require := require.New(t)
		q := &pendingQueue{}
		q.push(queuedFrame(wire.TypeScroll, "a"))
		q.push(queuedFrame(wire.TypeScroll, "b"))

		require.Equal("a", string(q.removeAt(0).Payload))
		require.Equal(1, q.size())
		require.Equal("b", string(q.frames[0].Payload))

		// The vacated tail slot no longer pins its frame.
		require.Nil(q.frames[:2][1])
	})
}
