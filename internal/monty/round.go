package monty

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var ErrUnknownHostRule = errors.New("unknown host rule")

type Outcome byte

const (
	Lose Outcome = iota
	Win
)

func (o Outcome) String() string {
	return [...]string{
		"lose",
		"win",
	}[o]
}

// HostRule decides which doors the host may open.
type HostRule byte

const (
	// HostAvoidsGuess never opens the car or the player's guess.
	HostAvoidsGuess HostRule = iota
	// HostIgnoresGuess only avoids the car, so the host may open the door
	// the player picked. Switch then wins half the time instead of two
	// thirds.
	HostIgnoresGuess
)

func (r HostRule) String() string {
	return [...]string{
		"avoid-guess",
		"ignore-guess",
	}[r]
}

func ParseHostRule(name string) (HostRule, error) {
	switch name {
	case "avoid-guess":
		return HostAvoidsGuess, nil
	case "ignore-guess":
		return HostIgnoresGuess, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHostRule, name)
}

// openable returns the doors the host may open for this round.
func (r HostRule) openable(car, guess Door) Doors {
	switch r {
	case HostAvoidsGuess:
		return AllDoors().Without(car).Without(guess)
	case HostIgnoresGuess:
		return AllDoors().Without(car)
	default:
		panic("unimplemented")
	}
}

// Round records a single play-through of the game.
type Round struct {
	Car      Door
	Guess    Door
	Opened   Door
	Final    Door
	Strategy Strategy
	Outcome  Outcome
}

func (r Round) String() string {
	return fmt.Sprintf("car=%s guess=%s opened=%s %s->%s %s",
		r.Car, r.Guess, r.Opened, r.Strategy, r.Final, r.Outcome)
}

// Resolve finishes a round whose random draws are already known.
func Resolve(car, guess, opened Door, s Strategy) Round {
	remaining := AllDoors().Without(opened)
	final := s.Choose(guess, remaining)
	outcome := Lose
	if final == car {
		outcome = Win
	}
	return Round{
		Car:      car,
		Guess:    guess,
		Opened:   opened,
		Final:    final,
		Strategy: s,
		Outcome:  outcome,
	}
}

// Simulator plays rounds from a single random stream. It is not safe for
// concurrent use; give each goroutine its own Simulator and merge tallies.
type Simulator struct {
	rng  *rand.Rand
	rule HostRule
}

func NewSimulator(rng *rand.Rand, rule HostRule) *Simulator {
	return &Simulator{
		rng:  rng,
		rule: rule,
	}
}

func (s *Simulator) Rule() HostRule { return s.rule }

// Play runs one round: place the car, take a guess, let the host open a
// door and apply the strategy.
func (s *Simulator) Play(strategy Strategy) Round {
	car := AllDoors().Random(s.rng)
	guess := AllDoors().Random(s.rng)
	opened := s.rule.openable(car, guess).Random(s.rng)
	return Resolve(car, guess, opened, strategy)
}
