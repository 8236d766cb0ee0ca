package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/dungeon-crawler/core"
	"github.com/lixenwraith/dungeon-crawler/event"
)

// EventHandler receives gameplay events after the tick or intent that raised them
type EventHandler interface {
	HandleEvent(ev event.GameEvent)
}

// EventHandlerFunc adapts a function to EventHandler
type EventHandlerFunc func(ev event.GameEvent)

func (f EventHandlerFunc) HandleEvent(ev event.GameEvent) { f(ev) }

// ClockScheduler drives Session.Tick on a fixed interval from its own goroutine
// Every access to the session, ticks, intents and snapshots alike, goes through one mutex so a
// tick is never interleaved with an intent
type ClockScheduler struct {
	mu       sync.Mutex
	session  *Session
	interval time.Duration

	handlers []EventHandler

	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	stopped  atomic.Bool

	// updateDone signals the render loop that fresh state is available (non-blocking, coalesced)
	updateDone chan struct{}
}

// NewClockScheduler creates a scheduler for session ticking every interval
func NewClockScheduler(session *Session, interval time.Duration) *ClockScheduler {
	return &ClockScheduler{
		session:    session,
		interval:   interval,
		stopChan:   make(chan struct{}),
		updateDone: make(chan struct{}, 1),
	}
}

// RegisterEventHandler adds an event handler, must be called before Start()
func (cs *ClockScheduler) RegisterEventHandler(h EventHandler) {
	cs.handlers = append(cs.handlers, h)
}

// Updates delivers a coalesced signal after each tick
func (cs *ClockScheduler) Updates() <-chan struct{} {
	return cs.updateDone
}

// TickCount returns the number of ticks executed by this scheduler
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Do runs fn with exclusive access to the session, then dispatches any events it raised
func (cs *ClockScheduler) Do(fn func(s *Session)) {
	cs.mu.Lock()
	fn(cs.session)
	events := cs.session.ConsumeEvents()
	cs.mu.Unlock()

	cs.dispatch(events)
}

// View returns a snapshot taken under the session lock
func (cs *ClockScheduler) View() Snapshot {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.session.Snapshot()
}

// Step executes exactly one tick
func (cs *ClockScheduler) Step() {
	cs.Do(func(s *Session) { s.Tick() })
	cs.tickCount.Add(1)

	select {
	case cs.updateDone <- struct{}{}:
	default:
	}
}

// Start begins the scheduler loop, a stopped scheduler stays stopped
func (cs *ClockScheduler) Start() {
	if cs.stopped.Load() {
		return
	}
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		cs.stopped.Store(true)
		close(cs.stopChan)
	})
	cs.wg.Wait()
	cs.running.Store(false)
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.interval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-ticker.C:
			cs.Step()
		}
	}
}

func (cs *ClockScheduler) dispatch(events []event.GameEvent) {
	for _, ev := range events {
		for _, h := range cs.handlers {
			h.HandleEvent(ev)
		}
	}
}
