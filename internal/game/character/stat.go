package character

import "fmt"

// Stat identifies one of the five character attributes.
//
// The zero value is not a valid Stat.
type Stat int

const (
	Cunning Stat = iota + 1
	Slipperiness
	Bulk
	Backbone
	TheSight
)

// Stats returns every Stat in declaration order.
func Stats() []Stat {
	return []Stat{Cunning, Slipperiness, Bulk, Backbone, TheSight}
}

// Valid reports whether s is one of the declared stats.
func (s Stat) Valid() bool {
	return s >= Cunning && s <= TheSight
}

// Label returns the lowercase token accepted by ParseStat.
func (s Stat) Label() string {
	switch s {
	case Cunning:
		return "cunning"
	case Slipperiness:
		return "slipperiness"
	case Bulk:
		return "bulk"
	case Backbone:
		return "backbone"
	case TheSight:
		return "the_sight"
	}
	return fmt.Sprintf("stat(%d)", int(s))
}

// String returns the display name of s.
func (s Stat) String() string {
	switch s {
	case Cunning:
		return "Cunning"
	case Slipperiness:
		return "Slipperiness"
	case Bulk:
		return "Bulk"
	case Backbone:
		return "Backbone"
	case TheSight:
		return "The Sight"
	}
	return fmt.Sprintf("Stat(%d)", int(s))
}

// ParseStat converts a label such as "the_sight" into a Stat.
//
// Postcondition: Returns a valid Stat or an *UnrecognizedValueError.
func ParseStat(label string) (Stat, error) {
	switch label {
	case "cunning":
		return Cunning, nil
	case "slipperiness":
		return Slipperiness, nil
	case "bulk":
		return Bulk, nil
	case "backbone":
		return Backbone, nil
	case "the_sight":
		return TheSight, nil
	}
	return 0, &UnrecognizedValueError{Kind: "stat", Value: label}
}

// StatVector holds one signed magnitude per Stat. The zero value is the
// all-zero vector.
type StatVector struct {
	Cunning      int
	Slipperiness int
	Bulk         int
	Backbone     int
	TheSight     int
}

// Add returns the pointwise sum of v and o.
func (v StatVector) Add(o StatVector) StatVector {
	return StatVector{
		Cunning:      v.Cunning + o.Cunning,
		Slipperiness: v.Slipperiness + o.Slipperiness,
		Bulk:         v.Bulk + o.Bulk,
		Backbone:     v.Backbone + o.Backbone,
		TheSight:     v.TheSight + o.TheSight,
	}
}

// Get returns the magnitude stored for stat.
//
// Precondition: stat.Valid().
func (v StatVector) Get(stat Stat) int {
	switch stat {
	case Cunning:
		return v.Cunning
	case Slipperiness:
		return v.Slipperiness
	case Bulk:
		return v.Bulk
	case Backbone:
		return v.Backbone
	case TheSight:
		return v.TheSight
	}
	panic(fmt.Sprintf("character: StatVector.Get precondition violated: invalid stat %d", int(stat)))
}

// WithBonus returns a copy of v with amount added to the field named by stat.
// All other fields are unchanged.
//
// Precondition: stat.Valid().
func (v StatVector) WithBonus(stat Stat, amount int) StatVector {
	switch stat {
	case Cunning:
		v.Cunning += amount
	case Slipperiness:
		v.Slipperiness += amount
	case Bulk:
		v.Bulk += amount
	case Backbone:
		v.Backbone += amount
	case TheSight:
		v.TheSight += amount
	default:
		panic(fmt.Sprintf("character: StatVector.WithBonus precondition violated: invalid stat %d", int(stat)))
	}
	return v
}
