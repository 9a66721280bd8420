package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stationreach/core"
)

func drain(w *worklist) []core.Handle {
	var out []core.Handle
	for {
		h, ok := w.pop()
		if !ok {
			return out
		}
		out = append(out, h)
	}
}

func TestWorklist_Order(t *testing.T) {
	fifo := newWorklist(FIFO, 4)
	lifo := newWorklist(LIFO, 4)
	for _, h := range []core.Handle{2, 0, 3} {
		fifo.push(h)
		lifo.push(h)
	}
	assert.Equal(t, []core.Handle{2, 0, 3}, drain(fifo))
	assert.Equal(t, []core.Handle{3, 0, 2}, drain(lifo))
}

func TestWorklist_NoDuplicates(t *testing.T) {
	w := newWorklist(FIFO, 3)
	assert.True(t, w.push(1))
	assert.False(t, w.push(1), "already queued")
	assert.Equal(t, 1, w.len())

	h, ok := w.pop()
	assert.True(t, ok)
	assert.Equal(t, core.Handle(1), h)
	assert.True(t, w.push(1), "re-queue after pop")
}

func TestWorklist_Compaction(t *testing.T) {
	const n = 5000
	w := newWorklist(FIFO, n)
	for i := 0; i < n; i++ {
		w.push(core.Handle(i))
	}
	for i := 0; i < n; i++ {
		h, ok := w.pop()
		assert.True(t, ok)
		assert.Equal(t, core.Handle(i), h)
		if i%2 == 0 {
			w.push(core.Handle(i))
		}
	}
	assert.Equal(t, n/2, w.len())
	assert.LessOrEqual(t, len(w.items), n)
}
