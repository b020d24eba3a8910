package console

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/swampqueen/internal/game/character"
	"github.com/cory-johannsen/swampqueen/internal/game/dice"
)

// RandomNames is the pool used when the player asks for a random name.
var RandomNames = []string{
	"Mire", "Bram", "Sedge", "Mudlark", "Pike",
	"Reedwhistle", "Hollow", "Tarn", "Fen", "Grackle",
	"Murk", "Silt", "Cress", "Bogbean", "Wick",
}

// CreationFlow walks the player through building a character.
type CreationFlow struct {
	prompter *Prompter
	src      dice.Source
	logger   *zap.Logger
}

// NewCreationFlow returns a CreationFlow prompting on p and using src for
// random picks.
//
// Precondition: p, src, and logger must be non-nil.
func NewCreationFlow(p *Prompter, src dice.Source, logger *zap.Logger) *CreationFlow {
	return &CreationFlow{prompter: p, src: src, logger: logger}
}

// Run prompts for name, class, race, and two bonus stats, then builds the character.
//
// Postcondition: Returns a complete Character, ErrAborted on end of input, or ctx.Err().
func (f *CreationFlow) Run(ctx context.Context) (character.Character, error) {
	p := f.prompter
	_ = p.WriteLine(Colorize(BrightCyan, "\n=== Character Creation ==="))

	name, err := Input(ctx, p, "Name (or 'random'): ", f.parseName)
	if err != nil {
		return character.Character{}, err
	}

	class, err := Select(ctx, p, Menu[character.Class]{
		Title:   "\nChoose your class:",
		Options: character.Classes(),
		Label:   character.Class.Label,
		Display: character.Class.String,
		Random:  f.src,
	})
	if err != nil {
		return character.Character{}, err
	}

	race, err := Select(ctx, p, Menu[character.Race]{
		Title:   "\nChoose your race:",
		Options: character.Races(),
		Label:   character.Race.Label,
		Display: character.Race.String,
		Random:  f.src,
	})
	if err != nil {
		return character.Character{}, err
	}

	bonus := make([]character.Stat, 2)
	for i, title := range []string{"\nFirst stat bonus (+1):", "\nSecond stat bonus (+1):"} {
		bonus[i], err = Select(ctx, p, Menu[character.Stat]{
			Title:   title,
			Options: character.Stats(),
			Label:   character.Stat.Label,
			Display: character.Stat.String,
			Random:  f.src,
		})
		if err != nil {
			return character.Character{}, err
		}
	}

	c, err := character.Build(name, class, race, bonus[0], bonus[1])
	if err != nil {
		return character.Character{}, err
	}
	f.logger.Info("character created",
		zap.String("name", c.Name),
		zap.String("class", c.Class.Label()),
		zap.String("race", c.Race.Label()),
		zap.String("bonus1", bonus[0].Label()),
		zap.String("bonus2", bonus[1].Label()),
	)
	return c, nil
}

func (f *CreationFlow) parseName(line string) (string, error) {
	name := strings.TrimSpace(line)
	if strings.ToLower(name) == "random" {
		name = RandomNames[dice.RollOne(len(RandomNames), f.src)-1]
		_ = f.prompter.WriteLine(Colorf(Cyan, "Random name selected: %s", name))
	}
	if err := character.ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}
