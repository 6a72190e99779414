// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fixedpoint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulDiv(t *testing.T) {
	q, err := MulDiv(10_000_000, Scale, 2_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(5_000_000), q)

	// Truncates toward zero.
	q, err = MulDiv(7, 1, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(3), q)

	q, err = MulDiv(0, Scale, 3)
	require.NoError(t, err)
	require.Zero(t, q)
}

func TestMulDivWideIntermediate(t *testing.T) {
	// a*b overflows 64 bits but the quotient does not.
	q, err := MulDiv(math.MaxUint64, 1_000, 1_000)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), q)

	q, err = MulDiv(math.MaxUint64/2, 4, 8)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64/2/2), q)
}

func TestMulDivErrors(t *testing.T) {
	_, err := MulDiv(1, 1, 0)
	require.ErrorIs(t, err, ErrDivideByZero)

	_, err = MulDiv(math.MaxUint64, 2, 1)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestScaleUp(t *testing.T) {
	v, err := ScaleUp(5)
	require.NoError(t, err)
	require.Equal(t, uint64(5_000_000), v)

	_, err = ScaleUp(math.MaxUint64)
	require.ErrorIs(t, err, ErrOverflow)
}
