// Package command provides the in-session command registry, parser, and
// built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryDice   = "dice"
	CategoryWorld  = "world"
	CategorySystem = "system"
)

// Handler identifiers mapping commands to session actions.
const (
	HandlerRoll  = "roll"
	HandlerSheet = "sheet"
	HandlerLook  = "look"
	HandlerHelp  = "help"
	HandlerQuit  = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage is the argument synopsis shown by help, e.g. "XdY".
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (dice, world, system).
	Category string
	// Handler maps to the session action that runs the command.
	Handler string
}

// BuiltinCommands returns all built-in session commands.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "roll", Aliases: []string{"r"}, Usage: "XdY", Help: "Roll X dice with Y faces", Category: CategoryDice, Handler: HandlerRoll},
		{Name: "sheet", Aliases: []string{"stats", "me"}, Help: "Show your character sheet", Category: CategorySystem, Handler: HandlerSheet},
		{Name: "look", Aliases: []string{"l"}, Usage: "[passage]", Help: "Read a passage of the current location", Category: CategoryWorld, Handler: HandlerLook},
		{Name: "help", Aliases: []string{"?"}, Help: "List commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Help: "Leave the swamp", Category: CategorySystem, Handler: HandlerQuit},
	}
}
