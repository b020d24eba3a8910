package dice

import "fmt"

// CountCeiling is the largest die count any caller rolling untrusted
// notation accepts, whatever its configured limit. It keeps a single
// request's Rolls slice to a few megabytes.
const CountCeiling = 1_000_000

// CountLimitError reports a request with more dice than the limit allows.
type CountLimitError struct {
	Count int
	Limit int
}

func (e *CountLimitError) Error() string {
	return fmt.Sprintf("dice: %d dice exceeds the limit of %d", e.Count, e.Limit)
}

// EffectiveLimit resolves a configured maximum count. Zero means unlimited,
// which is still bounded by CountCeiling, as is any larger value.
//
// Precondition: maxCount >= 0.
// Postcondition: Returns a value in [1, CountCeiling].
func EffectiveLimit(maxCount int) int {
	if maxCount <= 0 || maxCount > CountCeiling {
		return CountCeiling
	}
	return maxCount
}

// CheckCount rejects req when it rolls more dice than EffectiveLimit(maxCount).
//
// Postcondition: Returns nil or a *CountLimitError.
func CheckCount(req Request, maxCount int) error {
	if limit := EffectiveLimit(maxCount); req.Count > limit {
		return &CountLimitError{Count: req.Count, Limit: limit}
	}
	return nil
}
