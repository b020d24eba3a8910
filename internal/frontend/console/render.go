package console

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/swampqueen/internal/game/character"
	"github.com/cory-johannsen/swampqueen/internal/game/command"
	"github.com/cory-johannsen/swampqueen/internal/game/dice"
	"github.com/cory-johannsen/swampqueen/internal/game/location"
)

// FormatCharacterSheet returns a name header, a race and class line, and one
// row per stat in declaration order.
//
// Postcondition: Returns a multi-line string ending in a newline.
func FormatCharacterSheet(c character.Character) string {
	var sb strings.Builder
	sb.WriteString(Colorf(BrightCyan, "=== %s ===", c.Name))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", c.Race, c.Class))
	for _, s := range character.Stats() {
		sb.WriteString(fmt.Sprintf("  %s%-13s%s %2d\n", BrightWhite, s, Reset, c.Stats.Get(s)))
	}
	return sb.String()
}

// FormatRoll returns "<notation>: <rendered result>", e.g. "3d6: 2+5+6=13".
func FormatRoll(notation string, r dice.Result) string {
	return notation + ": " + r.String()
}

// FormatLocation returns the location title followed by every paragraph
// under key, separated by blank lines.
//
// Precondition: loc must be non-nil.
func FormatLocation(loc *location.Location, key string) string {
	var sb strings.Builder
	sb.WriteString(Colorize(BrightYellow, loc.Name))
	sb.WriteString("\n")
	for _, p := range loc.Paragraphs(key) {
		sb.WriteString("\n")
		sb.WriteString(Colorize(White, p))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatHelp lists cmds one per line with their aliases and usage.
func FormatHelp(cmds []*command.Command) string {
	var sb strings.Builder
	sb.WriteString(Colorize(BrightYellow, "Commands:"))
	sb.WriteString("\n")
	for _, cmd := range cmds {
		name := cmd.Name
		if cmd.Usage != "" {
			name += " " + cmd.Usage
		}
		line := fmt.Sprintf("  %s%-16s%s %s", BrightWhite, name, Reset, cmd.Help)
		if len(cmd.Aliases) > 0 {
			line += fmt.Sprintf(" (%s)", strings.Join(cmd.Aliases, ", "))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("  Any other XdY is rolled directly; a blank line quits.\n")
	return sb.String()
}
