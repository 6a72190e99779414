// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fixedpoint provides integer fixed-point arithmetic for prices
// and allocations. Prices are plain uint64 values scaled by Scale, so a
// price of 2.5 payment units per token is stored as 2_500_000.
package fixedpoint

import (
	"errors"
	"math/bits"
)

// Scale is the fixed-point precision factor.
const Scale = 1_000_000

var (
	ErrDivideByZero = errors.New("divide by zero")
	ErrOverflow     = errors.New("result overflows uint64")
)

// MulDiv returns floor(a * b / d) using a 128-bit intermediate product, so
// a*b may exceed 64 bits as long as the quotient fits.
func MulDiv(a, b, d uint64) (uint64, error) {
	if d == 0 {
		return 0, ErrDivideByZero
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		return 0, ErrOverflow
	}
	q, _ := bits.Div64(hi, lo, d)
	return q, nil
}

// ScaleUp converts a whole amount to its scaled representation.
func ScaleUp(a uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, Scale)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}
