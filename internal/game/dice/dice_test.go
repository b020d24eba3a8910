package dice_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/cory-johannsen/swampqueen/internal/game/dice"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestResult_StringNoDice(t *testing.T) {
	r := dice.Result{Request: dice.Request{Count: 0, Faces: 6}, Rolls: []int{}}
	assert.Equal(t, "0", r.String())
	assert.Equal(t, "0", dice.Result{}.String())
}

func TestResult_StringSingleDie(t *testing.T) {
	r := dice.Result{Request: dice.Request{Count: 1, Faces: 6}, Rolls: []int{4}}
	assert.Equal(t, "4", r.String())
}

func TestResult_StringManyDice(t *testing.T) {
	r := dice.Result{Request: dice.Request{Count: 3, Faces: 6}, Rolls: []int{2, 5, 6}}
	assert.Equal(t, "2+5+6=13", r.String())
	assert.Equal(t, 13, r.Total())
}

func TestRequest_Notation(t *testing.T) {
	assert.Equal(t, "8d6", dice.Request{Count: 8, Faces: 6}.Notation())
	assert.Equal(t, "0d0", dice.Request{}.Notation())
}

// Property: for two or more dice, String() lists every roll in order and ends with the total.
func TestResult_String_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rolls := rapid.SliceOfN(rapid.IntRange(1, 100), 2, 20).Draw(rt, "rolls")
		r := dice.Result{Request: dice.Request{Count: len(rolls), Faces: 100}, Rolls: rolls}

		lhs, rhs, ok := strings.Cut(r.String(), "=")
		if !ok {
			rt.Fatalf("missing '=' in %q", r.String())
		}
		assert.Equal(rt, strconv.Itoa(r.Total()), rhs)

		parts := strings.Split(lhs, "+")
		if len(parts) != len(rolls) {
			rt.Fatalf("got %d terms, want %d", len(parts), len(rolls))
		}
		for i, p := range parts {
			assert.Equal(rt, strconv.Itoa(rolls[i]), p)
		}
	})
}
