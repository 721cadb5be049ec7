package giveaway

import (
	"container/heap"
	"sync"
	"time"
)

// Clock abstracts wall time so tests can drive expiries deterministically.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// systemClock is the production clock.
type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// SystemClock returns the real-time clock.
func SystemClock() Clock { return systemClock{} }

type expiry struct {
	messageID string
	at        time.Time
}

// expiryHeap is a min-heap ordered by expiry time.
type expiryHeap []expiry

func (h expiryHeap) Len() int            { return len(h) }
func (h expiryHeap) Less(i, j int) bool  { return h[i].at.Before(h[j].at) }
func (h expiryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *expiryHeap) Push(x interface{}) { *h = append(*h, x.(expiry)) }
func (h *expiryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Scheduler mantiene un heap de vencimientos y dispara un callback cuando
// cada sorteo llega a su hora. Un solo goroutine consume el heap, así que
// los disparos salen en orden de vencimiento.
type Scheduler struct {
	clock Clock
	fire  func(messageID string)

	mu      sync.Mutex
	pending expiryHeap
	wake    chan struct{}
	stop    chan struct{}
	done    chan struct{}
	started bool
}

// NewScheduler creates a scheduler that calls fire with the message ID of
// each giveaway whose deadline passes. Nothing runs until Start.
func NewScheduler(clock Clock, fire func(messageID string)) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{
		clock: clock,
		fire:  fire,
		wake:  make(chan struct{}, 1),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Schedule registers a deadline for messageID. Deadlines already in the
// past fire on the next loop iteration.
func (s *Scheduler) Schedule(messageID string, at time.Time) {
	s.mu.Lock()
	heap.Push(&s.pending, expiry{messageID: messageID, at: at})
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Start launches the scheduling loop.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()
	go s.loop()
}

// Stop ends the loop and waits for it to exit. Pending deadlines are
// dropped; recovery re-schedules them on the next boot.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	s.mu.Unlock()
	close(s.stop)
	<-s.done
}

func (s *Scheduler) loop() {
	defer close(s.done)
	for {
		s.mu.Lock()
		var wait <-chan time.Time
		now := s.clock.Now()
		fired := make([]string, 0, 2)
		for s.pending.Len() > 0 {
			next := s.pending[0]
			if next.at.After(now) {
				wait = s.clock.After(next.at.Sub(now))
				break
			}
			heap.Pop(&s.pending)
			fired = append(fired, next.messageID)
		}
		s.mu.Unlock()

		// Fire outside the lock, Schedule may be called re-entrantly.
		for _, id := range fired {
			s.fire(id)
		}

		if wait == nil {
			select {
			case <-s.wake:
			case <-s.stop:
				return
			}
			continue
		}
		select {
		case <-wait:
		case <-s.wake:
		case <-s.stop:
			return
		}
	}
}
