// Package character defines the character domain model and the pure stat
// derivation used at character creation.
package character

// Character is a player character as produced by Build.
//
// Invariant: Stats == DeriveBaseStats(Class, Race) plus the two creation bonuses.
type Character struct {
	Name  string
	Class Class
	Race  Race
	Stats StatVector
}
