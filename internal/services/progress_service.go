package services

import (
	"sync"
	"time"
)

type ProgressState string

const (
	ProgressIdle       ProgressState = "idle"
	ProgressRunning    ProgressState = "running"
	ProgressCompleting ProgressState = "completing"
	ProgressDone       ProgressState = "done"
)

type progressPhase struct {
	label   string
	ceiling int
}

// The timeline is scripted: it does not reflect real backend progress, only
// a plausible pace for the user to watch while the request is in flight.
var progressPhases = []progressPhase{
	{label: "Fetching source", ceiling: 25},
	{label: "Transcribing content", ceiling: 65},
	{label: "Generating questions", ceiling: 85},
	{label: "Reviewing quiz", ceiling: 95},
}

const (
	labelAlmostDone = "Almost done..."
	labelComplete   = "Quiz ready!"
)

type ProgressSnapshot struct {
	State ProgressState `json:"state"`
	Value int           `json:"value"`
	Label string        `json:"label"`
}

type ProgressTrackerInterface interface {
	// Start resets the timeline and begins ticking. A timeline already
	// running is torn down first, so only one ticker ever exists.
	Start()
	// Complete forces the value to 100, holds it briefly for the user to
	// see, then settles in the done state.
	Complete()
	// Abort stops the ticker without touching the value.
	Abort()
	Snapshot() ProgressSnapshot
}

type ProgressTracker struct {
	mu    sync.Mutex
	state ProgressState
	value int
	phase int

	tick time.Duration
	hold time.Duration
	stop chan struct{}
}

func NewProgressTracker(tick time.Duration) ProgressTrackerInterface {
	if tick <= 0 {
		tick = 200 * time.Millisecond
	}
	return &ProgressTracker{
		state: ProgressIdle,
		tick:  tick,
		hold:  3 * tick,
	}
}

func (p *ProgressTracker) Start() {
	p.mu.Lock()
	p.stopLocked()
	p.state = ProgressRunning
	p.value = 0
	p.phase = 0
	stop := make(chan struct{})
	p.stop = stop
	p.mu.Unlock()

	go p.run(stop)
}

func (p *ProgressTracker) run(stop chan struct{}) {
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.advance()
		}
	}
}

func (p *ProgressTracker) advance() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != ProgressRunning || p.phase >= len(progressPhases) {
		return
	}

	p.value++
	if p.value >= progressPhases[p.phase].ceiling {
		p.value = progressPhases[p.phase].ceiling
		p.phase++
	}
}

func (p *ProgressTracker) Complete() {
	p.mu.Lock()
	p.stopLocked()
	p.state = ProgressCompleting
	p.value = 100
	p.mu.Unlock()

	time.AfterFunc(p.hold, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.state == ProgressCompleting {
			p.state = ProgressDone
		}
	})
}

func (p *ProgressTracker) Abort() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	p.state = ProgressIdle
}

func (p *ProgressTracker) Snapshot() ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return ProgressSnapshot{
		State: p.state,
		Value: p.value,
		Label: p.labelLocked(),
	}
}

func (p *ProgressTracker) labelLocked() string {
	switch p.state {
	case ProgressCompleting, ProgressDone:
		return labelComplete
	case ProgressRunning:
		if p.phase >= len(progressPhases) {
			return labelAlmostDone
		}
		return progressPhases[p.phase].label
	default:
		return ""
	}
}

func (p *ProgressTracker) stopLocked() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}
