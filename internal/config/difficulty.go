package config

import (
	"math"
	"time"
)

// SpeedSchedule predicts the tick interval for a score under a speed config.
// The game loop applies speed-ups incrementally; the schedule answers the
// same question in closed form for HUDs and the config command.
type SpeedSchedule struct {
	cfg SpeedConfig
}

// NewSpeedSchedule creates a schedule for cfg.
func NewSpeedSchedule(cfg SpeedConfig) *SpeedSchedule {
	return &SpeedSchedule{cfg: cfg}
}

// IsEnabled returns whether the interval changes with score.
func (s *SpeedSchedule) IsEnabled() bool {
	return s.cfg.SpeedUpEvery > 0 && s.cfg.SpeedUpFactor < 1
}

// Level returns how many speed-ups have happened at score.
func (s *SpeedSchedule) Level(score int) int {
	if s.cfg.SpeedUpEvery <= 0 || score <= 0 {
		return 0
	}
	return score / s.cfg.SpeedUpEvery
}

// NextAt returns the score of the next speed-up, or 0 if there is none.
func (s *SpeedSchedule) NextAt(score int) int {
	if !s.IsEnabled() {
		return 0
	}
	return (s.Level(score) + 1) * s.cfg.SpeedUpEvery
}

// Interval returns the interval in effect at score.
func (s *SpeedSchedule) Interval(score int) time.Duration {
	interval := s.cfg.InitialInterval
	for range s.Level(score) {
		next := time.Duration(math.Round(float64(interval) * s.cfg.SpeedUpFactor))
		next = max(next, s.cfg.MinInterval, time.Millisecond)
		if next == interval {
			break
		}
		interval = next
	}
	return interval
}

// TicksPerSecond returns the movement rate at score.
func (s *SpeedSchedule) TicksPerSecond(score int) float64 {
	return float64(time.Second) / float64(s.Interval(score))
}
