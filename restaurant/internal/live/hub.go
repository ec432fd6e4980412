package live

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	Channel = "restaurant_changes"

	// RestaurantsTopic matches a change to any restaurant or rating.
	RestaurantsTopic = "*"
)

// RestaurantTopic matches changes to one restaurant and its ratings.
func RestaurantTopic(id string) string {
	return id
}

// Unsubscribe stops a subscription. It is safe to call more than once.
type Unsubscribe func()

type Fetcher[T any] func(ctx context.Context) (T, error)

type subscription struct {
	topic  string
	signal chan struct{}
}

// notify wakes the subscriber; pending wakeups are coalesced.
func (s *subscription) notify() {
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

// Hub fans postgres notifications out to in-process subscribers.
type Hub struct {
	pool *pgxpool.Pool
	log  *zap.Logger

	mu   sync.Mutex
	subs map[uint64]*subscription
	next uint64

	minBackoff time.Duration
	maxBackoff time.Duration
}

func NewHub(pool *pgxpool.Pool, log *zap.Logger) *Hub {
	return &Hub{
		pool:       pool,
		log:        log.Named("live"),
		subs:       make(map[uint64]*subscription),
		minBackoff: 250 * time.Millisecond,
		maxBackoff: 10 * time.Second,
	}
}

func (h *Hub) subscribe(topic string) (*subscription, func()) {
	sub := &subscription{topic: topic, signal: make(chan struct{}, 1)}

	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = sub
	h.mu.Unlock()

	return sub, func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// dispatch wakes every subscriber interested in the changed restaurant.
func (h *Hub) dispatch(restaurantID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs {
		if sub.topic == RestaurantsTopic || sub.topic == restaurantID {
			sub.notify()
		}
	}
}

// broadcast wakes everyone, used after a reconnect when changes may have been missed.
func (h *Hub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, sub := range h.subs {
		sub.notify()
	}
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Run listens for notifications until ctx is done, reconnecting with backoff.
func (h *Hub) Run(ctx context.Context) {
	backoff := h.minBackoff
	connected := false
	for {
		err := h.listen(ctx, func() {
			if connected {
				h.broadcast()
			}
			connected = true
			backoff = h.minBackoff
		})
		if ctx.Err() != nil {
			return
		}
		h.log.Warn("listen interrupted", zap.Error(err), zap.Duration("retry_in", backoff))
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > h.maxBackoff {
			backoff = h.maxBackoff
		}
	}
}

func (h *Hub) listen(ctx context.Context, onReady func()) error {
	pc, err := h.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	// LISTEN state must not leak back into the pool
	conn := pc.Hijack()
	defer conn.Close(context.Background())

	if _, err = conn.Exec(ctx, "listen "+pgx.Identifier{Channel}.Sanitize()); err != nil {
		return err
	}
	onReady()
	h.log.Info("listening", zap.String("channel", Channel))

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		h.dispatch(n.Payload)
	}
}
