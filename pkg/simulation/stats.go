package simulation

import (
	"time"

	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// Snapshot summarizes the flock at the end of a tick.
type Snapshot struct {
	Tick      uint64
	Count     int
	MeanSpeed float64
	MaxSpeed  float64
	Leader    geometry.Vector2D
}

// Snapshot computes a summary of the current flock.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  s.ticks,
		Count: len(s.flock),
	}
	if len(s.flock) == 0 {
		return snap
	}

	total := 0.0
	for _, b := range s.flock {
		speed := b.Vel.Len()
		total += speed
		if speed > snap.MaxSpeed {
			snap.MaxSpeed = speed
		}
		if b.Leader {
			snap.Leader = b.Pos
		}
	}
	snap.MeanSpeed = total / float64(len(s.flock))
	return snap
}

// tickStats logs the tick rate about once per second.
type tickStats struct {
	logger      golog.Logger
	count       int
	lastLogTime time.Time
}

func newTickStats(logger golog.Logger) *tickStats {
	return &tickStats{
		logger:      logger,
		lastLogTime: time.Now(),
	}
}

func (t *tickStats) record(s *Simulation) {
	t.count++
	if time.Since(t.lastLogTime) < time.Second {
		return
	}
	snap := s.Snapshot()
	t.logger.Debugf("📊 TICK RATE: %d/sec | Tick: %d | Boids: %d | Mean speed: %.2f | Leader at %s",
		t.count, snap.Tick, snap.Count, snap.MeanSpeed, snap.Leader)
	t.count = 0
	t.lastLogTime = time.Now()
}
