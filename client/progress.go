package client

import (
	"sync"
	"time"
)

type ProgressPhase string

const (
	PhaseIdle      ProgressPhase = "idle"
	PhaseUploading ProgressPhase = "uploading"
	PhaseComplete  ProgressPhase = "complete"
)

// ProgressUpdate is one observable step of an upload run. Navigate marks the
// signal to move from the upload view to the chat view.
type ProgressUpdate struct {
	Percent  int
	Phase    ProgressPhase
	Navigate bool
}

type ProgressConfig struct {
	TickInterval       time.Duration
	Step               int
	Clamp              int
	InitialPercent     int
	ForceCompleteAfter time.Duration
	NavigateDelay      time.Duration
}

func DefaultProgressConfig() ProgressConfig {
	return ProgressConfig{
		TickInterval:       400 * time.Millisecond,
		Step:               12,
		Clamp:              95,
		InitialPercent:     10,
		ForceCompleteAfter: 3 * time.Second,
		NavigateDelay:      time.Second,
	}
}

// ProgressCoordinator drives a simulated upload progress indicator. It is a
// state machine, not a transport-level progress report: ticks advance the
// percentage up to a clamp, and a wall-clock timer forces completion so the
// indicator never stalls even when the real upload response is slow or lost.
//
// Within one run the percentage is non-decreasing and terminates at exactly
// 100. Starting a new run cancels the previous run's timers, so two runs
// never interleave their completion signals.
type ProgressCoordinator struct {
	cfg     ProgressConfig
	updates chan ProgressUpdate

	mu      sync.Mutex
	percent int
	phase   ProgressPhase
	stop    chan struct{}
}

func NewProgressCoordinator(cfg ProgressConfig) *ProgressCoordinator {
	if cfg.TickInterval <= 0 {
		cfg = DefaultProgressConfig()
	}
	return &ProgressCoordinator{
		cfg:     cfg,
		updates: make(chan ProgressUpdate, 64),
		phase:   PhaseIdle,
	}
}

// Updates delivers the progress events of the current run. Events are dropped
// when nobody is consuming them.
func (p *ProgressCoordinator) Updates() <-chan ProgressUpdate {
	return p.updates
}

// Start resets the state machine and begins a new run, canceling any pending
// timers from a previous one.
func (p *ProgressCoordinator) Start() {
	p.mu.Lock()
	p.cancelLocked()
	p.percent = 0
	p.phase = PhaseIdle
	p.emitLocked(false)

	p.phase = PhaseUploading
	p.percent = p.cfg.InitialPercent
	p.emitLocked(false)

	stop := make(chan struct{})
	p.stop = stop
	p.mu.Unlock()

	go p.run(stop)
}

// Reset returns to idle(0) and cancels the current run.
func (p *ProgressCoordinator) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelLocked()
	p.percent = 0
	p.phase = PhaseIdle
	p.emitLocked(false)
}

// State reports the current percentage and phase.
func (p *ProgressCoordinator) State() (int, ProgressPhase) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.percent, p.phase
}

func (p *ProgressCoordinator) run(stop chan struct{}) {
	ticker := time.NewTicker(p.cfg.TickInterval)
	defer ticker.Stop()
	force := time.NewTimer(p.cfg.ForceCompleteAfter)
	defer force.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.advance(stop)
		case <-force.C:
			if !p.complete(stop) {
				return
			}
			nav := time.NewTimer(p.cfg.NavigateDelay)
			defer nav.Stop()
			select {
			case <-stop:
			case <-nav.C:
				p.navigate(stop)
			}
			return
		}
	}
}

func (p *ProgressCoordinator) advance(stop chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	// A stale timer from a canceled run must not drive the current state.
	if p.stop != stop || p.phase != PhaseUploading {
		return
	}
	next := p.percent + p.cfg.Step
	if next > p.cfg.Clamp {
		next = p.cfg.Clamp
	}
	if next > p.percent {
		p.percent = next
		p.emitLocked(false)
	}
}

func (p *ProgressCoordinator) complete(stop chan struct{}) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != stop {
		return false
	}
	p.phase = PhaseComplete
	p.percent = 100
	p.emitLocked(false)
	return true
}

func (p *ProgressCoordinator) navigate(stop chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != stop {
		return
	}
	p.emitLocked(true)
}

func (p *ProgressCoordinator) cancelLocked() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

func (p *ProgressCoordinator) emitLocked(navigate bool) {
	update := ProgressUpdate{
		Percent:  p.percent,
		Phase:    p.phase,
		Navigate: navigate,
	}
	select {
	case p.updates <- update:
	default:
	}
}
