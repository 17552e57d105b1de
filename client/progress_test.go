package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastProgressConfig() ProgressConfig {
	return ProgressConfig{
		TickInterval:       5 * time.Millisecond,
		Step:               12,
		Clamp:              95,
		InitialPercent:     10,
		ForceCompleteAfter: 60 * time.Millisecond,
		NavigateDelay:      10 * time.Millisecond,
	}
}

// drainUntilNavigate collects updates until the navigate signal arrives.
func drainUntilNavigate(t *testing.T, p *ProgressCoordinator) []ProgressUpdate {
	t.Helper()
	var updates []ProgressUpdate
	deadline := time.After(2 * time.Second)
	for {
		select {
		case u := <-p.Updates():
			updates = append(updates, u)
			if u.Navigate {
				return updates
			}
		case <-deadline:
			t.Fatalf("no navigate signal after %d updates", len(updates))
		}
	}
}

func TestProgressRunReachesExactlyHundred(t *testing.T) {
	p := NewProgressCoordinator(fastProgressConfig())
	p.Start()

	updates := drainUntilNavigate(t, p)
	require.NotEmpty(t, updates)

	last := updates[len(updates)-1]
	assert.Equal(t, 100, last.Percent)
	assert.Equal(t, PhaseComplete, last.Phase)
	assert.True(t, last.Navigate)
}

func TestProgressNonDecreasingWithinRun(t *testing.T) {
	p := NewProgressCoordinator(fastProgressConfig())
	p.Start()

	updates := drainUntilNavigate(t, p)

	// Skip the idle(0) reset emitted at the start of the run.
	prev := -1
	for i, u := range updates {
		if i == 0 && u.Phase == PhaseIdle {
			continue
		}
		assert.GreaterOrEqual(t, u.Percent, prev, "update %d went backwards", i)
		prev = u.Percent
	}
}

func TestProgressClampHoldsUntilForcedCompletion(t *testing.T) {
	cfg := fastProgressConfig()
	cfg.ForceCompleteAfter = 150 * time.Millisecond
	p := NewProgressCoordinator(cfg)
	p.Start()

	updates := drainUntilNavigate(t, p)

	for _, u := range updates {
		if u.Phase == PhaseUploading {
			assert.LessOrEqual(t, u.Percent, cfg.Clamp)
		}
	}
}

func TestProgressRestartYieldsSingleCompletion(t *testing.T) {
	p := NewProgressCoordinator(fastProgressConfig())

	p.Start()
	time.Sleep(15 * time.Millisecond)
	p.Start()

	updates := drainUntilNavigate(t, p)

	completions := 0
	navigations := 0
	for _, u := range updates {
		if u.Percent == 100 && !u.Navigate {
			completions++
		}
		if u.Navigate {
			navigations++
		}
	}
	assert.Equal(t, 1, completions, "canceled run must not emit its completion")
	assert.Equal(t, 1, navigations)

	// The stale run's timers must stay silent after the live run finishes.
	select {
	case u := <-p.Updates():
		t.Fatalf("unexpected trailing update: %+v", u)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestProgressResetReturnsToIdle(t *testing.T) {
	p := NewProgressCoordinator(fastProgressConfig())
	p.Start()
	time.Sleep(15 * time.Millisecond)
	p.Reset()

	percent, phase := p.State()
	assert.Zero(t, percent)
	assert.Equal(t, PhaseIdle, phase)
}

func TestProgressDefaultConfigOnZeroValue(t *testing.T) {
	p := NewProgressCoordinator(ProgressConfig{})
	assert.Equal(t, DefaultProgressConfig(), p.cfg)
}
