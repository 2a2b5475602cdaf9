// Package monty simulates the three-door game show puzzle and scores the
// switch and stay strategies over repeated trials.
package monty

import (
	"math/rand/v2"
	"strings"
)

type Door byte

const (
	DoorUnset Door = iota
	DoorOne
	DoorTwo
	DoorThree
)

func (d Door) String() string {
	return [...]string{
		"unset",
		"1",
		"2",
		"3",
	}[d]
}

const numDoors = 3

// Doors is an ordered set of at most three doors. It is a value type, so
// every operation returns a new set and never touches the receiver.
type Doors struct {
	doors [numDoors]Door
	n     int
}

var allDoors = Doors{
	doors: [numDoors]Door{DoorOne, DoorTwo, DoorThree},
	n:     numDoors,
}

// AllDoors returns the full universe in order 1, 2, 3.
func AllDoors() Doors {
	return allDoors
}

func (ds Doors) Len() int { return ds.n }

func (ds Doors) Index(i int) Door {
	if i < 0 || i >= ds.n {
		panic("door index out of range")
	}
	return ds.doors[i]
}

func (ds Doors) Contains(d Door) bool {
	for i := 0; i < ds.n; i++ {
		if ds.doors[i] == d {
			return true
		}
	}
	return false
}

// Without returns a copy of ds with the first occurrence of d removed.
// Removing a door that is not in the set is a no-op.
func (ds Doors) Without(d Door) Doors {
	var next Doors
	removed := false
	for i := 0; i < ds.n; i++ {
		if !removed && ds.doors[i] == d {
			removed = true
			continue
		}
		next.doors[next.n] = ds.doors[i]
		next.n++
	}
	return next
}

// Random picks one door uniformly. Drawing from an empty set is a bug in
// the caller.
func (ds Doors) Random(rng *rand.Rand) Door {
	if ds.n == 0 {
		panic("random door from empty set")
	}
	return ds.doors[rng.IntN(ds.n)]
}

func (ds Doors) String() string {
	parts := make([]string, ds.n)
	for i := 0; i < ds.n; i++ {
		parts[i] = ds.doors[i].String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
