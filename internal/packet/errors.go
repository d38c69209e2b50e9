package packet

import (
	"errors"
	"fmt"
)

var ErrInvalidDigit = errors.New("packet: invalid hex digit")

// InvalidDigitError identifies the offending character in hex input.
type InvalidDigitError struct {
	Digit  rune
	Offset int
}

func (e InvalidDigitError) Error() string {
	return fmt.Sprintf("packet: invalid hex digit %q at offset %d", e.Digit, e.Offset)
}

func (e InvalidDigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}

func violation(format string, args ...any) {
	panic(fmt.Sprintf("packet: "+format, args...))
}
