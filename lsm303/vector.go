// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lsm303

import (
	"fmt"
	"math"
)

// Vector is a 3-axis sample in physical units: m/s² for the accelerometer,
// µT for the magnetometer.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// IsSaturated reports whether any axis carries the saturation marker, +Inf.
func (v Vector) IsSaturated() bool {
	return math.IsInf(v.X, 1) || math.IsInf(v.Y, 1) || math.IsInf(v.Z, 1)
}

// Norm returns the magnitude of the vector.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector) String() string {
	return fmt.Sprintf("X:%.4f Y:%.4f Z:%.4f", v.X, v.Y, v.Z)
}
