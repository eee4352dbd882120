package timer

import (
	"sync"
	"time"
)

// Handle is a cancellable repeating timer.
type Handle interface {
	// Stop cancels all future invocations. It is safe to call more than once.
	Stop()
}

// Scheduler arranges for fn to be called every period until the returned
// handle is stopped.
type Scheduler interface {
	Every(period time.Duration, fn func()) Handle
}

// TickerScheduler runs callbacks from a time.Ticker on its own goroutine.
type TickerScheduler struct{}

type tickerHandle struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (h *tickerHandle) Stop() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}

func (TickerScheduler) Every(period time.Duration, fn func()) Handle {
	h := &tickerHandle{
		ticker: time.NewTicker(period),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-h.done:
				return
			case <-h.ticker.C:
				fn()
			}
		}
	}()

	return h
}
