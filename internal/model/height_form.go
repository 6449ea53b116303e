// Package model holds the per-request form state used by the height handlers.
package model

import (
	"fmt"
	"strconv"

	"github.com/iliyamo/heightconv/internal/conversion"
)

// HeightForm is the per-request state behind the height conversion form.
// The web layer sets the raw centimeter text, asks for feet and inches to
// be computed, and reads the three text fields back for rendering.  An
// empty string means the field was never set.
//
// Derived fields reflect the centimeter text at the time they were
// computed.  Changing the centimeter text later does not clear them.
//
// Fields:
//   - heightCm: raw user input, stored verbatim.
//   - heightFeet: whole feet, decimal text.
//   - heightInches: remaining inches, decimal text.
type HeightForm struct {
	heightCm     string
	heightFeet   string
	heightInches string
}

// ParseError reports centimeter text that is not a base-10 integer in the
// signed 32-bit range.
type ParseError struct {
	Text string // raw centimeter text
	Err  error  // underlying strconv error (ErrSyntax or ErrRange)
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid centimeters %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SetHeightCm stores text as the centimeter value without validating it.
func (f *HeightForm) SetHeightCm(text string) { f.heightCm = text }

// HeightCm returns the raw centimeter text.
func (f *HeightForm) HeightCm() string { return f.heightCm }

// HeightFeet returns the last computed feet text.
func (f *HeightForm) HeightFeet() string { return f.heightFeet }

// HeightInches returns the last computed inches text.
func (f *HeightForm) HeightInches() string { return f.heightInches }

// ComputeFeet parses the centimeter text and stores the whole feet.
// On a *ParseError the previous feet text is kept.
func (f *HeightForm) ComputeFeet() error {
	cm, err := f.parseCm()
	if err != nil {
		return err
	}
	f.heightFeet = strconv.Itoa(conversion.GetFeet(cm))
	return nil
}

// ComputeInches parses the centimeter text again, independently of
// ComputeFeet, and stores the remaining inches.
func (f *HeightForm) ComputeInches() error {
	cm, err := f.parseCm()
	if err != nil {
		return err
	}
	f.heightInches = strconv.Itoa(conversion.GetInches(cm))
	return nil
}

func (f *HeightForm) parseCm() (int, error) {
	n, err := strconv.ParseInt(f.heightCm, 10, 32)
	if err != nil {
		// strconv.NumError repeats the input; keep only the cause.
		if ne, ok := err.(*strconv.NumError); ok {
			err = ne.Err
		}
		return 0, &ParseError{Text: f.heightCm, Err: err}
	}
	return int(n), nil
}
