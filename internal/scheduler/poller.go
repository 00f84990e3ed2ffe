package scheduler

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var ErrInvalidInterval = errors.New("scheduler: invalid poll interval")

// DefaultInterval is how often the day rollover is checked.
const DefaultInterval = 30 * time.Second

type PollEvent struct {
	Seq uint64
	At  time.Time
}

// Poller fires PollEvents on a single repeating timer. Sends never block: a
// tick that finds the buffer full is dropped and counted, so a slow consumer
// never sees overlapping polls.
type Poller struct {
	mu       sync.Mutex
	interval time.Duration
	out      chan PollEvent
	wakeup   chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
	seq      uint64
	dropped  uint64
}

func NewPoller(interval time.Duration, bufferSize int) (*Poller, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Poller{
		interval: interval,
		out:      make(chan PollEvent, bufferSize),
		wakeup:   make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

func (p *Poller) C() <-chan PollEvent {
	return p.out
}

func (p *Poller) Interval() time.Duration {
	return p.interval
}

func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.stopped {
		return
	}
	p.started = true
	go p.loop()
}

// Stop halts the timer and waits for the loop to exit. C is closed afterwards.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.started || p.stopped {
		p.stopped = true
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.stopCh)
	p.mu.Unlock()
	<-p.doneCh
}

// Poke requests an immediate poll, e.g. after the host resumes from sleep.
func (p *Poller) Poke() {
	select {
	case p.wakeup <- struct{}{}:
	default:
	}
}

func (p *Poller) Dropped() uint64 {
	return atomic.LoadUint64(&p.dropped)
}

func (p *Poller) loop() {
	defer close(p.doneCh)
	defer close(p.out)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case at := <-ticker.C:
			p.emit(at)
		case <-p.wakeup:
			p.emit(time.Now())
		case <-p.stopCh:
			return
		}
	}
}

func (p *Poller) emit(at time.Time) {
	ev := PollEvent{Seq: atomic.AddUint64(&p.seq, 1), At: at}
	select {
	case p.out <- ev:
	default:
		atomic.AddUint64(&p.dropped, 1)
	}
}
