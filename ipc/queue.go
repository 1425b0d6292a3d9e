package ipc

import "ipc-toolkit/wire"

// pendingQueue holds frames that arrived while the dispatcher was
// selecting for other types. Arrival order is kept for every frame that
// is not taken, so delivery within one type is always FIFO; selective
// consumption reorders across types only.
type pendingQueue struct {
	frames []*wire.Frame
}

func (q *pendingQueue) push(f *wire.Frame) {
	q.frames = append(q.frames, f)
}

func (q *pendingQueue) size() int {
	return len(q.frames)
}

// indexMatching returns the position of the oldest frame whose type is in
// the mask, or -1.
func (q *pendingQueue) indexMatching(mask wire.Mask) int {
	for i, f := range q.frames {
		if mask.Has(f.Header.Type) {
			return i
		}
	}
	return -1
}

// removeAt takes the frame at i out of the queue without disturbing the
// order of the others. The vacated tail slot is cleared so the backing
// array does not pin the frame's payload.
func (q *pendingQueue) removeAt(i int) *wire.Frame {
	f := q.frames[i]
	last := len(q.frames) - 1
	copy(q.frames[i:], q.frames[i+1:])
	q.frames[last] = nil
	q.frames = q.frames[:last]
	return f
}
