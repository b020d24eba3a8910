package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged dice rolling.
// Every roll is logged at debug level with notation, dice values, and total.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	if src == nil {
		panic("dice: NewLoggedRoller precondition violated: src must be non-nil")
	}
	if logger == nil {
		panic("dice: NewLoggedRoller precondition violated: logger must be non-nil")
	}
	return &Roller{src: src, logger: logger}
}

// Source returns the randomness source backing r.
func (r *Roller) Source() Source {
	return r.src
}

// Roll rolls req and logs the result.
func (r *Roller) Roll(req Request) Result {
	result := RollMany(req, r.src)
	r.logger.Debug("dice roll",
		zap.String("notation", req.Notation()),
		zap.Int("count", req.Count),
		zap.Int("faces", req.Faces),
		zap.Ints("dice", result.Rolls),
		zap.Int("total", result.Total()),
	)
	return result
}

// RollNotation parses notation and rolls it, logging the result.
//
// Postcondition: Returns a Result or the *ParseError from Parse.
func (r *Roller) RollNotation(notation string) (Result, error) {
	req, err := Parse(notation)
	if err != nil {
		r.logger.Debug("dice notation rejected", zap.String("notation", notation), zap.Error(err))
		return Result{}, err
	}
	return r.Roll(req), nil
}

// RollNotationWithin parses notation and rolls it only when its count is
// within EffectiveLimit(maxCount). Refused requests are logged and no die is
// rolled.
//
// Postcondition: Returns a Result, the *ParseError from Parse, or a
// *CountLimitError.
func (r *Roller) RollNotationWithin(notation string, maxCount int) (Result, error) {
	req, err := Parse(notation)
	if err != nil {
		r.logger.Debug("dice notation rejected", zap.String("notation", notation), zap.Error(err))
		return Result{}, err
	}
	if err := CheckCount(req, maxCount); err != nil {
		r.logger.Info("dice request refused",
			zap.String("notation", notation),
			zap.Int("count", req.Count),
			zap.Int("limit", EffectiveLimit(maxCount)),
		)
		return Result{}, err
	}
	return r.Roll(req), nil
}
