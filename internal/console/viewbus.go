package console

import (
	"context"
	"sync"
)

const defaultViewBuffer = 16

// viewBus fans views out to subscribers. A subscriber whose buffer is full
// misses the view; the next one carries the full state anyway.
type viewBus struct {
	mu   sync.RWMutex
	subs map[chan View]struct{}
	buf  int
}

func newViewBus(buf int) *viewBus {
	if buf <= 0 {
		buf = defaultViewBuffer
	}
	return &viewBus{
		subs: make(map[chan View]struct{}),
		buf:  buf,
	}
}

func (b *viewBus) subscribe(ctx context.Context) <-chan View {
	ch := make(chan View, b.buf)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (b *viewBus) publish(v View) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs {
		select {
		case ch <- v:
		default:
		}
	}
}
