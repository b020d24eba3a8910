// Package dice parses XdY dice notation and rolls it against a pluggable
// randomness Source.
package dice

import (
	"strconv"
	"strings"
)

// Request asks for Count dice of Faces sides each.
type Request struct {
	Count int
	Faces int
}

// Notation returns r in XdY form.
func (r Request) Notation() string {
	return strconv.Itoa(r.Count) + "d" + strconv.Itoa(r.Faces)
}

// Result holds the outcome of rolling a Request.
//
// Invariant: len(Rolls) == Request.Count; every roll is in [1, Faces], or 0 when Faces == 0.
type Result struct {
	Request Request
	Rolls   []int // individual die results, in roll order
}

// Total returns the sum of all rolls.
func (r Result) Total() int {
	total := 0
	for _, d := range r.Rolls {
		total += d
	}
	return total
}

// String renders the result: "0" for no dice, the bare value for one die,
// and "a+b+c=total" for two or more.
func (r Result) String() string {
	switch len(r.Rolls) {
	case 0:
		return "0"
	case 1:
		return strconv.Itoa(r.Rolls[0])
	}
	parts := make([]string, len(r.Rolls))
	for i, d := range r.Rolls {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, "+") + "=" + strconv.Itoa(r.Total())
}

//go:generate mockgen -source=dice.go -destination=mocks/mock_source.go -package=mocks

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
