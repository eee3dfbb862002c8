// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lsm303

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// Opts holds the configuration applied by Open.
type Opts struct {
	AccelAddr  uint16
	AccelRate  AccelRate
	AccelRange AccelRange
	MagAddr    uint16
	MagRate    MagRate
	MagRange   MagRange
}

// DefaultOpts is the power-on friendly configuration: 50Hz ±2G and 15Hz
// ±1.3 gauss at the default addresses.
var DefaultOpts = Opts{
	AccelAddr:  AccelAddr,
	AccelRate:  AccelRate50Hz,
	AccelRange: AccelRange2G,
	MagAddr:    MagAddr,
	MagRate:    MagRate15Hz,
	MagRange:   MagRange1_3G,
}

// Open creates and enables both drivers on b. The Opts can be nil.
//
// On failure, a sensor that was already enabled is disabled again.
func Open(b i2c.Bus, opts *Opts) (*Accelerometer, *Magnetometer, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	mag, err := NewMagnetometerI2C(b, opts.MagAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("lsm303: magnetometer: %w", err)
	}
	if err := mag.Enable(opts.MagRate, opts.MagRange); err != nil {
		return nil, nil, fmt.Errorf("lsm303: magnetometer: %w", err)
	}
	accel := NewAccelerometerI2C(b, opts.AccelAddr)
	if err := accel.Enable(opts.AccelRate, opts.AccelRange); err != nil {
		_ = mag.Disable()
		return nil, nil, fmt.Errorf("lsm303: accelerometer: %w", err)
	}
	return accel, mag, nil
}
