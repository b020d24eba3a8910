package dice

import (
	"fmt"
	"regexp"
	"strconv"
)

// notationPattern is the complete grammar: ASCII digits, a lowercase 'd', ASCII digits.
var notationPattern = regexp.MustCompile(`^([0-9]+)d([0-9]+)$`)

// ParseError reports dice notation that does not match XdY.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dice: cannot parse %q: %s", e.Input, e.Reason)
}

// Parse parses notation of the exact form XdY, e.g. "3d6" or "0d0".
// No whitespace, sign, modifier, or uppercase 'D' is accepted.
//
// Postcondition: Returns a Request with Count >= 0 and Faces >= 0, or a *ParseError.
func Parse(notation string) (Request, error) {
	m := notationPattern.FindStringSubmatch(notation)
	if m == nil {
		return Request{}, &ParseError{Input: notation, Reason: "expected XdY"}
	}
	count, err := strconv.Atoi(m[1])
	if err != nil {
		return Request{}, &ParseError{Input: notation, Reason: "die count out of range"}
	}
	faces, err := strconv.Atoi(m[2])
	if err != nil {
		return Request{}, &ParseError{Input: notation, Reason: "face count out of range"}
	}
	return Request{Count: count, Faces: faces}, nil
}

// MustParse parses notation and panics on error. Useful for package-level values.
//
// Precondition: notation must be valid XdY notation.
func MustParse(notation string) Request {
	r, err := Parse(notation)
	if err != nil {
		panic("dice: MustParse failed: " + err.Error())
	}
	return r
}
