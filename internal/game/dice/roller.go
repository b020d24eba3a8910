package dice

// RollOne rolls a single die with the given number of faces.
// A zero-faced die has no valid outcome and yields 0 without consulting src.
//
// Precondition: faces >= 0; src must be non-nil when faces > 0.
// Postcondition: Returns a value in [1, faces], or 0 when faces == 0.
func RollOne(faces int, src Source) int {
	if faces < 0 {
		panic("dice: RollOne called with negative faces")
	}
	if faces == 0 {
		return 0
	}
	return src.Intn(faces) + 1
}

// RollMany rolls req.Count independent dice of req.Faces sides. It allocates
// req.Count ints up front; callers rolling player input bound the count with
// CheckCount first.
//
// Precondition: req.Count >= 0 and req.Faces >= 0.
// Postcondition: len(result.Rolls) == req.Count, in roll order.
func RollMany(req Request, src Source) Result {
	if req.Count < 0 {
		panic("dice: RollMany called with negative count")
	}
	rolls := make([]int, req.Count)
	for i := range rolls {
		rolls[i] = RollOne(req.Faces, src)
	}
	return Result{Request: req, Rolls: rolls}
}

// RollFromNotation parses notation and rolls it using src in a single call.
// No die is rolled when parsing fails.
//
// Postcondition: Returns a Result or the *ParseError from Parse.
func RollFromNotation(notation string, src Source) (Result, error) {
	req, err := Parse(notation)
	if err != nil {
		return Result{}, err
	}
	return RollMany(req, src), nil
}
