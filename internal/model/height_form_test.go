package model

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightForm_RoundTrip(t *testing.T) {
	var f HeightForm
	f.SetHeightCm("100")

	require.NoError(t, f.ComputeFeet())
	require.NoError(t, f.ComputeInches())

	assert.Equal(t, "100", f.HeightCm())
	assert.Equal(t, "3", f.HeightFeet())
	assert.Equal(t, "3", f.HeightInches())
}

func TestHeightForm_ZeroValue(t *testing.T) {
	var f HeightForm
	assert.Empty(t, f.HeightCm())
	assert.Empty(t, f.HeightFeet())
	assert.Empty(t, f.HeightInches())
}

func TestHeightForm_ParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		cause error
	}{
		{"non numeric", "abc", strconv.ErrSyntax},
		{"empty", "", strconv.ErrSyntax},
		{"decimal", "100.5", strconv.ErrSyntax},
		{"padded", " 100", strconv.ErrSyntax},
		{"overflow", "99999999999999999999", strconv.ErrRange},
		{"just above int32", "2147483648", strconv.ErrRange},
		{"just below int32", "-2147483649", strconv.ErrRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var f HeightForm
			f.SetHeightCm(tc.input)

			err := f.ComputeFeet()
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "want *ParseError, got %v", err)
			assert.Equal(t, tc.input, pe.Text)
			assert.ErrorIs(t, err, tc.cause)

			assert.Error(t, f.ComputeInches())
			assert.Empty(t, f.HeightFeet())
			assert.Empty(t, f.HeightInches())
		})
	}
}

func TestHeightForm_DerivedValuesGoStale(t *testing.T) {
	var f HeightForm
	f.SetHeightCm("100")
	require.NoError(t, f.ComputeFeet())
	require.NoError(t, f.ComputeInches())

	f.SetHeightCm("30")
	assert.Equal(t, "30", f.HeightCm())
	assert.Equal(t, "3", f.HeightFeet())
	assert.Equal(t, "3", f.HeightInches())

	// Only the recomputed field picks up the new input.
	require.NoError(t, f.ComputeInches())
	assert.Equal(t, "3", f.HeightFeet())
	assert.Equal(t, "11", f.HeightInches())
}

func TestHeightForm_FailedComputeKeepsPreviousValue(t *testing.T) {
	var f HeightForm
	f.SetHeightCm("183")
	require.NoError(t, f.ComputeFeet())

	f.SetHeightCm("tall")
	assert.Error(t, f.ComputeFeet())
	assert.Equal(t, "6", f.HeightFeet())
}

func TestHeightForm_AcceptsSignedInput(t *testing.T) {
	var f HeightForm
	f.SetHeightCm("+61")
	require.NoError(t, f.ComputeFeet())
	require.NoError(t, f.ComputeInches())
	assert.Equal(t, "2", f.HeightFeet())
	assert.Equal(t, "0", f.HeightInches())
}

func TestHeightForm_Int32Bounds(t *testing.T) {
	tests := []struct {
		input      string
		wantFeet   string
		wantInches string
	}{
		{"2147483647", "70455500", "2"},
		{"-2147483648", "-70455500", "-3"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			var f HeightForm
			f.SetHeightCm(tc.input)
			require.NoError(t, f.ComputeFeet())
			require.NoError(t, f.ComputeInches())
			assert.Equal(t, tc.wantFeet, f.HeightFeet())
			assert.Equal(t, tc.wantInches, f.HeightInches())
		})
	}
}
