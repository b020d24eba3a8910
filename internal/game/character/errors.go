package character

import "fmt"

// UnrecognizedValueError is returned when a label or enum value does not name
// any Class, Race, or Stat.
type UnrecognizedValueError struct {
	// Kind is the enum being looked up: "class", "race", or "stat".
	Kind string
	// Value is the rejected input.
	Value string
}

func (e *UnrecognizedValueError) Error() string {
	return fmt.Sprintf("character: unrecognized %s %q", e.Kind, e.Value)
}

// ValidationError is returned when character creation input is rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("character: invalid %s: %s", e.Field, e.Reason)
}
