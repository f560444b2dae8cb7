// Package database owns the process-wide store connection.
//
// The connection is dialled lazily by the first request that needs it.
// Concurrent callers share one dial; a failed dial is not cached, so the next
// caller tries again. A connection that fails its periodic ping is dropped
// and dialled afresh.
package database

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/farellandr/resultboard/internal/metrics"
	"github.com/farellandr/resultboard/internal/store"
)

const (
	StateConnected    = "connected"
	StateConnecting   = "connecting"
	StateDisconnected = "disconnected"
)

const (
	defaultDialTimeout = 10 * time.Second
	defaultPingEvery   = 30 * time.Second
	pingTimeout        = 2 * time.Second
)

// Dialer opens a new connection to the backing store.
type Dialer func(ctx context.Context) (store.Store, error)

type Option func(*Handle)

func WithDialTimeout(d time.Duration) Option {
	return func(h *Handle) { h.dialTimeout = d }
}

// WithPingInterval sets how old the last successful ping may be before the
// connection is checked again. Zero checks on every call.
func WithPingInterval(d time.Duration) Option {
	return func(h *Handle) { h.pingEvery = d }
}

func WithLogger(log *zap.Logger) Option {
	return func(h *Handle) { h.log = log }
}

type Handle struct {
	dial        Dialer
	dialTimeout time.Duration
	pingEvery   time.Duration
	log         *zap.Logger

	group   singleflight.Group
	dialing atomic.Bool

	mu       sync.RWMutex
	current  store.Store
	lastPing time.Time
}

func NewHandle(dial Dialer, opts ...Option) *Handle {
	h := &Handle{
		dial:        dial,
		dialTimeout: defaultDialTimeout,
		pingEvery:   defaultPingEvery,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Store returns the live connection, dialling one if needed. The dial itself
// is not tied to ctx, so a caller that gives up does not abort the dial for
// the others waiting on it.
func (h *Handle) Store(ctx context.Context) (store.Store, error) {
	if s := h.healthy(ctx); s != nil {
		return s, nil
	}

	ch := h.group.DoChan("dial", func() (any, error) {
		h.mu.RLock()
		s := h.current
		h.mu.RUnlock()
		if s != nil {
			return s, nil
		}
		return h.connect(ctx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(store.Store), nil
	}
}

func (h *Handle) healthy(ctx context.Context) store.Store {
	h.mu.RLock()
	s, lastPing := h.current, h.lastPing
	h.mu.RUnlock()

	if s == nil {
		return nil
	}
	if time.Since(lastPing) < h.pingEvery {
		return s
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.Ping(pingCtx); err != nil {
		if ctx.Err() != nil {
			return s
		}
		h.log.Warn("store ping failed, reconnecting", zap.Error(err))
		h.drop(s)
		return nil
	}

	h.mu.Lock()
	if h.current == s {
		h.lastPing = time.Now()
	}
	h.mu.Unlock()
	return s
}

func (h *Handle) connect(ctx context.Context) (store.Store, error) {
	h.dialing.Store(true)
	defer h.dialing.Store(false)

	dialCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.dialTimeout)
	defer cancel()

	start := time.Now()
	s, err := h.dial(dialCtx)
	if err != nil {
		metrics.StoreDialTotal.WithLabelValues("failure").Inc()
		h.log.Error("store connection failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, err
	}
	metrics.StoreDialTotal.WithLabelValues("success").Inc()
	h.log.Info("store connected", zap.Duration("elapsed", time.Since(start)))

	h.mu.Lock()
	h.current = s
	h.lastPing = time.Now()
	h.mu.Unlock()
	return s, nil
}

func (h *Handle) drop(s store.Store) {
	h.mu.Lock()
	if h.current != s {
		h.mu.Unlock()
		return
	}
	h.current = nil
	h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := s.Close(ctx); err != nil {
		h.log.Debug("closing dropped store", zap.Error(err))
	}
}

// State reports the connection state without dialling.
func (h *Handle) State() string {
	h.mu.RLock()
	connected := h.current != nil
	h.mu.RUnlock()

	switch {
	case connected:
		return StateConnected
	case h.dialing.Load():
		return StateConnecting
	default:
		return StateDisconnected
	}
}

func (h *Handle) Close(ctx context.Context) error {
	h.mu.Lock()
	s := h.current
	h.current = nil
	h.mu.Unlock()

	if s == nil {
		return nil
	}
	return s.Close(ctx)
}
