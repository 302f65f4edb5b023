package calc

import "errors"

// Domain errors for operator, preset and input handling.
var (
	// ErrUnknownOperation indicates an operator name that is not mul, add or sub.
	ErrUnknownOperation = errors.New("calc: unknown operation")

	// ErrUnknownPreset indicates an operand preset that is not registered.
	ErrUnknownPreset = errors.New("calc: unknown preset")

	// ErrParse indicates matrix text that could not be read as numbers.
	ErrParse = errors.New("calc: cannot parse matrix")

	// ErrNegativePower indicates a negative exponent; inverses are not supported.
	ErrNegativePower = errors.New("calc: negative power")

	// ErrPowerTooLarge indicates an exponent above MaxPower.
	ErrPowerTooLarge = errors.New("calc: power too large")
)
