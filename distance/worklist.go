package distance

import "github.com/katalvlaran/stationreach/core"

// worklist holds dirty nodes. A node is queued at most once at a time
// (queued[h]), which bounds the worklist to O(V) regardless of how many
// times a node is improved.
type worklist struct {
	order  QueueOrder
	items  []core.Handle
	head   int // FIFO read position
	queued []bool
}

func newWorklist(order QueueOrder, n int) *worklist {
	return &worklist{order: order, queued: make([]bool, n)}
}

// push enqueues h unless it is already waiting.
func (w *worklist) push(h core.Handle) bool {
	if w.queued[h] {
		return false
	}
	w.queued[h] = true
	w.items = append(w.items, h)

	return true
}

// pop removes the next handle; ok is false when empty.
func (w *worklist) pop() (h core.Handle, ok bool) {
	if w.len() == 0 {
		return core.NoHandle, false
	}
	if w.order == LIFO {
		last := len(w.items) - 1
		h = w.items[last]
		w.items = w.items[:last]
	} else {
		h = w.items[w.head]
		w.head++
		// Compact once the consumed prefix dominates.
		if w.head > 1024 && w.head*2 > len(w.items) {
			n := copy(w.items, w.items[w.head:])
			w.items = w.items[:n]
			w.head = 0
		}
	}
	w.queued[h] = false

	return h, true
}

func (w *worklist) len() int { return len(w.items) - w.head }
