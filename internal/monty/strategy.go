package monty

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownStrategy   = errors.New("unknown strategy")
	ErrNoStrategies      = errors.New("no strategies")
	ErrDuplicateStrategy = errors.New("duplicate strategy")
)

type Strategy byte

const (
	Switch Strategy = iota
	Stay
)

func (s Strategy) String() string {
	return [...]string{
		"Switch",
		"Stay",
	}[s]
}

// ParseStrategy accepts "switch" or "stay", ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "switch":
		return Switch, nil
	case "stay":
		return Stay, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ParseStrategies parses an ordered strategy set. The set must be non-empty
// and name each strategy at most once.
func ParseStrategies(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return nil, ErrNoStrategies
	}
	seen := make(map[Strategy]bool, len(names))
	strategies := make([]Strategy, 0, len(names))
	for _, name := range names {
		s, err := ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if seen[s] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStrategy, s)
		}
		seen[s] = true
		strategies = append(strategies, s)
	}
	return strategies, nil
}

// Choose returns the player's final door given the initial guess and the
// doors still closed after the host opened one.
func (s Strategy) Choose(guess Door, remaining Doors) Door {
	switch s {
	case Stay:
		return guess
	case Switch:
		// With exactly one other closed door this is that door. If the host
		// opened the guess itself, two doors are left and the lower one wins.
		return remaining.Without(guess).Index(0)
	default:
		panic("unimplemented")
	}
}
