package monty

import (
	"fmt"
	"time"

	"github.com/AustinJGreen/montyhall/internal/logger"
)

// Run plays trials rounds with the given strategy and returns their tally.
// A non-positive trial count is a configuration error.
func (s *Simulator) Run(strategy Strategy, trials int) (Tally, error) {
	if trials <= 0 {
		return Tally{}, fmt.Errorf("%s: %w (got %d)", strategy, ErrNoTrials, trials)
	}

	start := time.Now()
	var t Tally
	for i := 0; i < trials; i++ {
		t.Score(s.Play(strategy).Outcome)
	}

	logger.L().Debug("trials.done",
		"strategy", strategy.String(),
		"rule", s.Rule().String(),
		"won", t.Won,
		"lost", t.Lost,
		"took", time.Since(start),
	)
	return t, nil
}
