package character

import "fmt"

// ClassBonus returns the fixed stat bonuses granted by class.
//
// Precondition: class.Valid(). Panics otherwise.
func ClassBonus(class Class) StatVector {
	switch class {
	case Soothsayer:
		return StatVector{Cunning: 3, Slipperiness: 3, Bulk: 0, Backbone: 1, TheSight: 5}
	case Hunter:
		return StatVector{Cunning: 3, Slipperiness: 1, Bulk: 3, Backbone: 5, TheSight: 0}
	case Trespasser:
		return StatVector{Cunning: 3, Slipperiness: 5, Bulk: 0, Backbone: 3, TheSight: 1}
	case Warden:
		return StatVector{Cunning: 5, Slipperiness: 1, Bulk: 0, Backbone: 3, TheSight: 3}
	case Bastion:
		return StatVector{Cunning: 3, Slipperiness: 1, Bulk: 5, Backbone: 3, TheSight: 0}
	}
	panic(fmt.Sprintf("character: ClassBonus precondition violated: no bonus table for class %d", int(class)))
}

// RaceBonus returns the fixed stat bonuses granted by race.
//
// Precondition: race.Valid(). Panics otherwise.
func RaceBonus(race Race) StatVector {
	switch race {
	case AlligatorFolk:
		return StatVector{Bulk: 1, Backbone: 1}
	case InsectoidFae:
		return StatVector{Cunning: 1, TheSight: 1}
	case GoblinoidFae:
		return StatVector{Cunning: 1, Slipperiness: 1}
	}
	panic(fmt.Sprintf("character: RaceBonus precondition violated: no bonus table for race %d", int(race)))
}

// DeriveBaseStats returns the class bonus plus the race bonus.
//
// Precondition: class.Valid() and race.Valid().
func DeriveBaseStats(class Class, race Race) StatVector {
	return StatVector{}.Add(ClassBonus(class)).Add(RaceBonus(race))
}
