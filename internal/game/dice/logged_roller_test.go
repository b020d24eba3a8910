package dice_test

import (
	"testing"

	"github.com/cory-johannsen/swampqueen/internal/game/dice"
	"github.com/cory-johannsen/swampqueen/internal/game/dice/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRoller_LogsEachRoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Intn(8).Return(2).Times(2)

	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(src, zap.New(core))

	res, err := r.RollNotation("2d8")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, res.Rolls)

	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "2d8", fields["notation"])
	assert.Equal(t, int64(6), fields["total"])
	assert.Equal(t, int64(2), fields["count"])
}

func TestRoller_RejectedNotationNotRolled(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(src, zap.New(core))

	_, err := r.RollNotation("2 d8")
	require.Error(t, err)
	assert.Equal(t, 0, logs.FilterMessage("dice roll").Len())
	assert.Equal(t, 1, logs.FilterMessage("dice notation rejected").Len())
}

func TestNewLoggedRoller_NilPreconditions(t *testing.T) {
	assert.Panics(t, func() { dice.NewLoggedRoller(nil, zap.NewNop()) })
	assert.Panics(t, func() { dice.NewLoggedRoller(dice.NewCryptoSource(), nil) })
}

func TestRoller_Source(t *testing.T) {
	src := dice.NewCryptoSource()
	r := dice.NewLoggedRoller(src, zap.NewNop())
	assert.Equal(t, src, r.Source())
}

func TestRoller_RollNotationWithin(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().Intn(6).Return(5).Times(3)

	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(src, zap.New(core))

	res, err := r.RollNotationWithin("3d6", 3)
	require.NoError(t, err)
	assert.Equal(t, 18, res.Total())

	_, err = r.RollNotationWithin("4d6", 3)
	var lerr *dice.CountLimitError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, dice.CountLimitError{Count: 4, Limit: 3}, *lerr)
	refused := logs.FilterMessage("dice request refused").All()
	require.Len(t, refused, 1)
	assert.Equal(t, int64(3), refused[0].ContextMap()["limit"])

	_, err = r.RollNotationWithin("3 d6", 3)
	var perr *dice.ParseError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, logs.FilterMessage("dice roll").Len())
}

func TestRoller_RollNotationWithin_MaxIntCountRefusedWhenUnlimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	r := dice.NewLoggedRoller(src, zap.NewNop())

	_, err := r.RollNotationWithin("9223372036854775807d6", 0)
	var lerr *dice.CountLimitError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, dice.CountCeiling, lerr.Limit)
}
