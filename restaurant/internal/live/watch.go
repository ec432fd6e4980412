package live

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Watch delivers a fresh snapshot to cb right away and again after every
// change matching topic, until the returned Unsubscribe is called.
// Unsubscribe waits for a running cb to return, so it must not be called
// from cb itself. A nil cb is logged and yields a no-op Unsubscribe.
func Watch[T any](h *Hub, topic string, fetch Fetcher[T], cb func(T)) Unsubscribe {
	if cb == nil {
		h.log.Error("Error: The callback parameter is not a function", zap.String("topic", topic))
		return func() {}
	}

	sub, leave := h.subscribe(topic)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer leave()
		deliver := func() {
			v, err := fetch(ctx)
			if err != nil {
				if ctx.Err() == nil {
					h.log.Error("snapshot fetch", zap.String("topic", topic), zap.Error(err))
				}
				return
			}
			if ctx.Err() == nil {
				cb(v)
			}
		}

		deliver()
		for {
			select {
			case <-ctx.Done():
				return
			case <-sub.signal:
				deliver()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(cancel)
		<-done
	}
}

// Stream is Watch as a channel. The channel is closed once ctx is done; a
// slow reader only ever sees the latest snapshot.
func Stream[T any](ctx context.Context, h *Hub, topic string, fetch Fetcher[T]) <-chan T {
	out := make(chan T)
	sub, leave := h.subscribe(topic)

	go func() {
		defer close(out)
		defer leave()
		for {
			v, err := fetch(ctx)
			switch {
			case err == nil:
				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			case ctx.Err() == nil:
				h.log.Error("snapshot fetch", zap.String("topic", topic), zap.Error(err))
			}

			select {
			case <-ctx.Done():
				return
			case <-sub.signal:
			}
		}
	}()
	return out
}
