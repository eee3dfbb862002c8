// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lsm303

import "errors"

var (
	// ErrInvalidArgument is returned when a rate, a range or the raw read
	// guard is outside what the sensor accepts. No register is touched.
	ErrInvalidArgument = errors.New("lsm303: invalid argument")
	// ErrUnrecognizedDevice is returned by NewMagnetometer when the identity
	// registers do not read "H43".
	ErrUnrecognizedDevice = errors.New("lsm303: unrecognized device")
	// ErrNotEnabled is returned by Magnetometer.Read before Enable succeeded.
	ErrNotEnabled = errors.New("lsm303: magnetometer not enabled")
	// ErrUnexpectedRange is returned by Accelerometer.Read when the device
	// reports the reserved full scale selection.
	ErrUnexpectedRange = errors.New("lsm303: unexpected accelerometer range")
)
