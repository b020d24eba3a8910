package character

import (
	"fmt"
	"strings"
)

// BonusAmount is the value added to each player-chosen bonus stat.
const BonusAmount = 1

// Build constructs a new Character from a name, class, race, and two bonus
// stat picks. Stats start from the class and race tables, then each bonus pick
// receives +1. Both picks may name the same stat, which then receives +2.
//
// Precondition: name must contain a non-whitespace character.
// Postcondition: Returns a complete Character, or a non-nil error and no Character.
func Build(name string, class Class, race Race, bonus1, bonus2 Stat) (Character, error) {
	if err := ValidateName(name); err != nil {
		return Character{}, err
	}
	if !class.Valid() {
		return Character{}, &UnrecognizedValueError{Kind: "class", Value: fmt.Sprint(int(class))}
	}
	if !race.Valid() {
		return Character{}, &UnrecognizedValueError{Kind: "race", Value: fmt.Sprint(int(race))}
	}
	for _, s := range []Stat{bonus1, bonus2} {
		if !s.Valid() {
			return Character{}, &UnrecognizedValueError{Kind: "stat", Value: fmt.Sprint(int(s))}
		}
	}

	stats := DeriveBaseStats(class, race).
		WithBonus(bonus1, BonusAmount).
		WithBonus(bonus2, BonusAmount)

	return Character{
		Name:  name,
		Class: class,
		Race:  race,
		Stats: stats,
	}, nil
}

// ValidateName rejects names that are empty or only whitespace.
//
// Postcondition: Returns nil or a *ValidationError.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return nil
}
