// Package conversion holds the pure arithmetic behind the height form:
// centimeter to feet/inches conversion plus a few integer helpers. Every
// function is stateless and safe to call from any number of goroutines.
package conversion

import "errors"

const (
	cmPerFoot = 30.48 // centimeters in one foot
	cmPerInch = 2.54  // centimeters in one inch
	inPerFoot = 12
)

// ErrDivisionByZero is returned by Quotient when the divisor is zero.
// Handlers should translate this into an HTTP 400 response.
var ErrDivisionByZero = errors.New("division by zero")

// GetFeet returns the whole feet in cm centimeters, truncated toward zero.
func GetFeet(cm int) int {
	return int(float64(cm) / cmPerFoot)
}

// GetInches returns the inches left over once whole feet are taken out.
// Total inches and whole feet are truncated separately and then combined,
// so the result is not derived from GetFeet's value times twelve subtracted
// from an exact inch count.
func GetInches(cm int) int {
	totalInches := int(float64(cm) / cmPerInch)
	feet := int(float64(cm) / cmPerFoot)
	return totalInches - feet*inPerFoot
}

// Sum returns a + b.
func Sum(a, b int) int { return a + b }

// Diff returns a - b.
func Diff(a, b int) int { return a - b }

// Product returns a * b.
func Product(a, b int) int { return a * b }

// Quotient returns a / b truncated toward zero, or ErrDivisionByZero.
func Quotient(a, b int) (int, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}
