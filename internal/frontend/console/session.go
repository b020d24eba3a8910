package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/swampqueen/internal/config"
	"github.com/cory-johannsen/swampqueen/internal/game/character"
	"github.com/cory-johannsen/swampqueen/internal/game/command"
	"github.com/cory-johannsen/swampqueen/internal/game/dice"
	"github.com/cory-johannsen/swampqueen/internal/game/location"
)

// IntroKey is the location passage shown when a session starts.
const IntroKey = "intro"

// LookKey is the passage the look command shows when given no argument.
// Locations without it fall back to IntroKey.
const LookKey = "look"

// Session runs one interactive play-through: the start location's intro,
// character creation, and a command prompt.
type Session struct {
	prompter  *Prompter
	roller    *dice.Roller
	locations *location.Loader
	commands  *command.Registry
	cfg       config.Config
	logger    *zap.Logger

	loc       *location.Location
	character character.Character
}

// NewSession wires a Session with the built-in command registry.
//
// Precondition: all arguments must be non-nil; cfg must be valid.
func NewSession(p *Prompter, roller *dice.Roller, locations *location.Loader, cfg config.Config, logger *zap.Logger) *Session {
	return &Session{
		prompter:  p,
		roller:    roller,
		locations: locations,
		commands:  command.DefaultRegistry(),
		cfg:       cfg,
		logger:    logger,
	}
}

// Run plays the session until the player quits or input ends.
//
// Postcondition: Returns nil when the player leaves normally, ctx.Err() on
// cancellation, or a non-nil error on a fatal failure.
func (s *Session) Run(ctx context.Context) error {
	loc, err := s.locations.Load(s.cfg.Content.StartLocation)
	if err != nil {
		return fmt.Errorf("loading start location: %w", err)
	}
	s.loc = loc
	s.logger.Debug("start location loaded", zap.String("id", loc.ID))
	_ = s.prompter.WriteLine(FormatLocation(loc, IntroKey))

	c, err := NewCreationFlow(s.prompter, s.roller.Source(), s.logger).Run(ctx)
	if errors.Is(err, ErrAborted) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating character: %w", err)
	}
	s.character = c
	_ = s.prompter.WriteLine(Colorize(BrightYellow, "\nYOUR CHARACTER:"))
	_ = s.prompter.WriteLine(FormatCharacterSheet(c))
	_ = s.prompter.WriteLine(Colorize(Cyan, "Type help for commands."))

	return s.commandLoop(ctx)
}

func (s *Session) commandLoop(ctx context.Context) error {
	p := s.prompter
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		_ = p.WritePrompt(Colorize(BrightWhite, "> "))
		line, err := p.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}

		parsed := command.Parse(line)
		if parsed.Command == "" {
			_ = p.WriteLine(Colorize(Cyan, "Farewell."))
			return nil
		}
		cmd, ok := s.commands.Resolve(parsed.Command)
		if !ok {
			// Bare notation is shorthand for roll.
			s.roll(parsed.Raw)
			continue
		}
		s.logger.Debug("command", zap.String("name", cmd.Name), zap.Strings("args", parsed.Args))

		switch cmd.Handler {
		case command.HandlerRoll:
			if len(parsed.Args) == 0 {
				_ = p.WriteLine(Colorize(Red, "Usage: roll XdY [XdY...]"))
			}
			for _, n := range parsed.Args {
				s.roll(n)
			}
		case command.HandlerSheet:
			_ = p.WriteLine(FormatCharacterSheet(s.character))
		case command.HandlerLook:
			s.look(parsed.Args)
		case command.HandlerHelp:
			_ = p.WriteLine(FormatHelp(s.commands.Commands()))
		case command.HandlerQuit:
			_ = p.WriteLine(Colorize(Cyan, "Farewell."))
			return nil
		default:
			panic(fmt.Sprintf("console: command %q has unhandled handler %q", cmd.Name, cmd.Handler))
		}
	}
}

func (s *Session) roll(notation string) {
	p := s.prompter
	res, err := s.roller.RollNotationWithin(notation, s.cfg.Dice.MaxCount)
	var lerr *dice.CountLimitError
	switch {
	case errors.As(err, &lerr):
		_ = p.WriteLine(Colorf(Red, "Too many dice: %d (limit %d).", lerr.Count, lerr.Limit))
	case err != nil:
		_ = p.WriteLine(Colorize(Red, err.Error()))
	default:
		_ = p.WriteLine(Colorize(BrightGreen, FormatRoll(notation, res)))
	}
}

func (s *Session) look(args []string) {
	key := LookKey
	if len(args) > 0 {
		key = strings.ToLower(args[0])
	} else if len(s.loc.Paragraphs(key)) == 0 {
		key = IntroKey
	}
	if len(s.loc.Paragraphs(key)) == 0 {
		_ = s.prompter.WriteLine(Colorf(Red, "Nothing to read under %q here.", key))
		return
	}
	_ = s.prompter.WriteLine(FormatLocation(s.loc, key))
}
