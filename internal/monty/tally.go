package monty

import (
	"errors"
	"fmt"
)

// ErrNoTrials is returned when a percentage is requested over zero rounds.
var ErrNoTrials = errors.New("no trials")

type Tally struct {
	Won  uint64
	Lost uint64
}

func (t *Tally) Score(o Outcome) {
	switch o {
	case Win:
		t.Won++
	case Lose:
		t.Lost++
	default:
		panic("unimplemented")
	}
}

func (t Tally) Total() uint64 { return t.Won + t.Lost }

// Merge adds the counts of other, for combining partial tallies from
// independent streams.
func (t Tally) Merge(other Tally) Tally {
	return Tally{
		Won:  t.Won + other.Won,
		Lost: t.Lost + other.Lost,
	}
}

// Percentage returns the share of rounds won, in [0, 100].
func (t Tally) Percentage() (float64, error) {
	total := t.Total()
	if total == 0 {
		return 0, ErrNoTrials
	}
	return 100 * float64(t.Won) / float64(total), nil
}

func (t Tally) String() string {
	return fmt.Sprintf("won=%d lost=%d", t.Won, t.Lost)
}
