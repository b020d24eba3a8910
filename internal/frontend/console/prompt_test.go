package console_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/cory-johannsen/swampqueen/internal/frontend/console"
	"github.com/cory-johannsen/swampqueen/internal/game/dice/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPrompter(input string) (*console.Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return console.NewPrompter(strings.NewReader(input), &out), &out
}

func fruitMenu() console.Menu[string] {
	return console.Menu[string]{
		Title:   "Pick a fruit:",
		Options: []string{"apple", "pear", "plum"},
		Label:   func(s string) string { return s },
		Display: strings.ToUpper,
	}
}

func TestPrompter_ReadLine(t *testing.T) {
	p, _ := newPrompter("first\r\nsecond\nlast")

	for _, want := range []string{"first", "second", "last"} {
		line, err := p.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
	_, err := p.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestInput_RepromptsUntilValid(t *testing.T) {
	p, out := newPrompter("abc\n-3\n12\n")

	n, err := console.Input(context.Background(), p, "Number: ", func(s string) (int, error) {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return 0, errors.New("need a non-negative number")
		}
		return v, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	plain := console.StripANSI(out.String())
	assert.Equal(t, 3, strings.Count(plain, "Number: "))
	assert.Equal(t, 2, strings.Count(plain, "need a non-negative number"))
}

func TestInput_EOFAborts(t *testing.T) {
	p, _ := newPrompter("")
	_, err := console.Input(context.Background(), p, "Name: ", func(s string) (string, error) { return s, nil })
	assert.ErrorIs(t, err, console.ErrAborted)
}

func TestInput_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, out := newPrompter("ignored\n")

	_, err := console.Input(ctx, p, "Name: ", func(s string) (string, error) { return s, nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestSelect_ByNumberAndLabel(t *testing.T) {
	p, out := newPrompter("2\nPLUM\n")

	got, err := console.Select(context.Background(), p, fruitMenu())
	require.NoError(t, err)
	assert.Equal(t, "pear", got)
	plain := console.StripANSI(out.String())
	assert.Contains(t, plain, "1. APPLE (apple)")
	assert.Contains(t, plain, "Select [1-3]: ")
	assert.NotContains(t, plain, "Random")

	got, err = console.Select(context.Background(), p, fruitMenu())
	require.NoError(t, err)
	assert.Equal(t, "plum", got)
}

func TestSelect_InvalidThenValid(t *testing.T) {
	p, out := newPrompter("0\n4\n\nkiwi\n1\n")

	got, err := console.Select(context.Background(), p, fruitMenu())
	require.NoError(t, err)
	assert.Equal(t, "apple", got)
	assert.Equal(t, 4, strings.Count(out.String(), "invalid selection"))
}

func TestSelect_RandomRequiresSource(t *testing.T) {
	p, _ := newPrompter("random\n")
	_, err := console.Select(context.Background(), p, fruitMenu())
	assert.ErrorIs(t, err, console.ErrAborted, "random is not a label, so input runs out")
}

func TestSelect_RandomUsesSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Intn(3).Return(2)

	m := fruitMenu()
	m.Random = src
	p, out := newPrompter("R\n")

	got, err := console.Select(context.Background(), p, m)
	require.NoError(t, err)
	assert.Equal(t, "plum", got)
	assert.Contains(t, console.StripANSI(out.String()), "Random selection: PLUM")
}

func TestSelect_EmptyMenuPanics(t *testing.T) {
	p, _ := newPrompter("")
	assert.Panics(t, func() {
		_, _ = console.Select(context.Background(), p, console.Menu[string]{})
	})
}

func TestIsRandomInput(t *testing.T) {
	for _, s := range []string{"r", "R", "random", " Random "} {
		assert.True(t, console.IsRandomInput(s), "%q", s)
	}
	for _, s := range []string{"", "rand", "1", "bulk"} {
		assert.False(t, console.IsRandomInput(s), "%q", s)
	}
}
