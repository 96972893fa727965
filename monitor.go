package veloce

import (
	"context"
	"sync"
	"time"
)

// Subscription represents an active subscription that can be unsubscribed.
type Subscription interface {
	// Unsubscribe stops the subscription and releases resources.
	Unsubscribe()
}

// StatsCallback is called with each system stats sample.
type StatsCallback func(stats Record)

// ErrorCallback is called when a stats poll fails.
type ErrorCallback func(err error)

// StatsMonitor periodically polls the panel's system statistics and
// fans each sample out to registered callbacks. It provides an
// event-emitter like pattern on top of System.Stats.
type StatsMonitor struct {
	client   *Client
	interval time.Duration

	mu           sync.RWMutex
	callbacks    []StatsCallback
	errCallbacks []ErrorCallback
	started      bool
	cancel       context.CancelFunc
}

// internalSubscription implements the Subscription interface.
type internalSubscription struct {
	cancel func()
}

func (s *internalSubscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

// MonitorStats creates a monitor that samples system statistics every
// interval. Polling starts when the first callback is registered and
// stops on Unsubscribe.
func (c *Client) MonitorStats(interval time.Duration) *StatsMonitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &StatsMonitor{
		client:   c,
		interval: interval,
	}
}

// OnStats registers a callback for each stats sample. Returns a
// Subscription that removes this specific callback.
func (m *StatsMonitor) OnStats(callback StatsCallback) Subscription {
	m.mu.Lock()
	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1
	m.mu.Unlock()

	m.startPolling()

	return &internalSubscription{
		cancel: func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			// Mark as nil rather than removing, to preserve indices.
			if index < len(m.callbacks) {
				m.callbacks[index] = nil
			}
		},
	}
}

// OnError registers a callback for failed polls. Without one, poll
// failures are only logged.
func (m *StatsMonitor) OnError(callback ErrorCallback) Subscription {
	m.mu.Lock()
	m.errCallbacks = append(m.errCallbacks, callback)
	index := len(m.errCallbacks) - 1
	m.mu.Unlock()

	return &internalSubscription{
		cancel: func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if index < len(m.errCallbacks) {
				m.errCallbacks[index] = nil
			}
		},
	}
}

// Unsubscribe stops polling and clears all callbacks.
func (m *StatsMonitor) Unsubscribe() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.callbacks = nil
	m.errCallbacks = nil
	m.started = false
}

// startPolling begins the poll loop if not already started.
func (m *StatsMonitor) startPolling() {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.mu.Unlock()

	go m.poll(ctx)
}

func (m *StatsMonitor) poll(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats, err := m.client.System().Stats(ctx)
			if err != nil {
				m.emitError(err)
				continue
			}
			m.emitStats(stats)
		}
	}
}

func (m *StatsMonitor) emitStats(stats Record) {
	m.mu.RLock()
	callbacks := make([]StatsCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.RUnlock()

	for _, callback := range callbacks {
		if callback != nil {
			go callback(stats)
		}
	}
}

func (m *StatsMonitor) emitError(err error) {
	m.mu.RLock()
	callbacks := make([]ErrorCallback, len(m.errCallbacks))
	copy(callbacks, m.errCallbacks)
	m.mu.RUnlock()

	if len(callbacks) == 0 {
		m.client.logger.Warn("stats poll failed", "error", err)
		return
	}
	for _, callback := range callbacks {
		if callback != nil {
			go callback(err)
		}
	}
}
