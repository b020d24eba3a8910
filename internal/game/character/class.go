package character

import "fmt"

// Class is a playable character class. The zero value is not a valid Class.
type Class int

const (
	Soothsayer Class = iota + 1
	Hunter
	Trespasser
	Warden
	Bastion
)

// Classes returns every Class in declaration order.
func Classes() []Class {
	return []Class{Soothsayer, Hunter, Trespasser, Warden, Bastion}
}

// Valid reports whether c is one of the declared classes.
func (c Class) Valid() bool {
	return c >= Soothsayer && c <= Bastion
}

// Label returns the lowercase token accepted by ParseClass.
func (c Class) Label() string {
	switch c {
	case Soothsayer:
		return "soothsayer"
	case Hunter:
		return "hunter"
	case Trespasser:
		return "trespasser"
	case Warden:
		return "warden"
	case Bastion:
		return "bastion"
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// String returns the display name of c.
func (c Class) String() string {
	switch c {
	case Soothsayer:
		return "Soothsayer"
	case Hunter:
		return "Hunter"
	case Trespasser:
		return "Trespasser"
	case Warden:
		return "Warden"
	case Bastion:
		return "Bastion"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ParseClass converts a label such as "soothsayer" into a Class.
//
// Postcondition: Returns a valid Class or an *UnrecognizedValueError.
func ParseClass(label string) (Class, error) {
	switch label {
	case "soothsayer":
		return Soothsayer, nil
	case "hunter":
		return Hunter, nil
	case "trespasser":
		return Trespasser, nil
	case "warden":
		return Warden, nil
	case "bastion":
		return Bastion, nil
	}
	return 0, &UnrecognizedValueError{Kind: "class", Value: label}
}

// Race is a playable character race. The zero value is not a valid Race.
type Race int

const (
	AlligatorFolk Race = iota + 1
	InsectoidFae
	GoblinoidFae
)

// Races returns every Race in declaration order.
func Races() []Race {
	return []Race{AlligatorFolk, InsectoidFae, GoblinoidFae}
}

// Valid reports whether r is one of the declared races.
func (r Race) Valid() bool {
	return r >= AlligatorFolk && r <= GoblinoidFae
}

// Label returns the lowercase token accepted by ParseRace.
func (r Race) Label() string {
	switch r {
	case AlligatorFolk:
		return "alligator_folk"
	case InsectoidFae:
		return "insectoid_fae"
	case GoblinoidFae:
		return "goblinoid_fae"
	}
	return fmt.Sprintf("race(%d)", int(r))
}

// String returns the display name of r.
func (r Race) String() string {
	switch r {
	case AlligatorFolk:
		return "Alligator Folk"
	case InsectoidFae:
		return "Insectoid Fae"
	case GoblinoidFae:
		return "Goblinoid Fae"
	}
	return fmt.Sprintf("Race(%d)", int(r))
}

// ParseRace converts a label such as "alligator_folk" into a Race.
//
// Postcondition: Returns a valid Race or an *UnrecognizedValueError.
func ParseRace(label string) (Race, error) {
	switch label {
	case "alligator_folk":
		return AlligatorFolk, nil
	case "insectoid_fae":
		return InsectoidFae, nil
	case "goblinoid_fae":
		return GoblinoidFae, nil
	}
	return 0, &UnrecognizedValueError{Kind: "race", Value: label}
}
