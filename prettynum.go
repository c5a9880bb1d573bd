// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prettynum formats integers in the compact style used by
// social media sites (e.g., 23520123 becomes "23.5M").
package prettynum

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/bassosimone/runtimex"
)

// suffixes contains the scale suffixes in ascending order of
// magnitude: thousand, million, billion, trillion.
var suffixes = [...]string{"k", "M", "B", "T"}

// ErrMagnitudeOverflow indicates that the magnitude of the value
// to format is one quadrillion (10^15) or larger.
var ErrMagnitudeOverflow = errors.New("prettynum: magnitude is one quadrillion or larger")

// Format formats value compactly with at most three significant
// digits and at most one decimal digit, scaling down by powers of
// 1000 and appending the matching suffix ("k", "M", "B", or "T").
// Values whose magnitude is below 1000 format as plain decimal
// strings with no suffix. Returns [ErrMagnitudeOverflow] when the
// magnitude of value is one quadrillion or larger.
//
// The scaled magnitude is computed using 32-bit floats, which
// determines the rounding near tier boundaries.
func Format(value int64) (string, error) {
	if value > -1000 && value < 1000 {
		return strconv.FormatInt(value, 10), nil
	}

	sign := float32(1)
	if value < 0 {
		sign = -1
	}
	magnitude := float32(value) * sign

	for _, suffix := range suffixes {
		magnitude /= 1000
		if magnitude >= 1000 {
			continue
		}
		digits := 1
		if fraction(magnitude) < 0.1 || magnitude >= 100 {
			digits = 0
		}
		return fmt.Sprintf("%.*f%s", digits, sign*magnitude, suffix), nil
	}

	return "", ErrMagnitudeOverflow
}

// MustFormat is like [Format] except that it panics on overflow.
func MustFormat(value int64) string {
	return runtimex.PanicOnError1(Format(value))
}

// fraction returns the fractional part of the given nonnegative value.
func fraction(value float32) float32 {
	return value - float32(math.Floor(float64(value)))
}
