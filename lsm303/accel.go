// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lsm303

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// AccelAddr is the default I²C address of the accelerometer (SA0 low).
const AccelAddr uint16 = 0x18

// AccelRate is the output data rate of the accelerometer. The value is the
// combined power mode and data rate field of CTRL_REG1_A.
type AccelRate byte

// AccelRange is the full scale selection of the accelerometer, as stored in
// the FS field of CTRL_REG4_A.
type AccelRange byte

const (
	// Normal power mode rates.
	AccelRate50Hz   AccelRate = 0x04
	AccelRate100Hz  AccelRate = 0x05
	AccelRate400Hz  AccelRate = 0x06
	AccelRate1000Hz AccelRate = 0x07
	// Low power mode rates.
	AccelRateHalfHz AccelRate = 0x08
	AccelRate1Hz    AccelRate = 0x0C
	AccelRate2Hz    AccelRate = 0x10
	AccelRate5Hz    AccelRate = 0x14
	AccelRate10Hz   AccelRate = 0x18

	AccelRange2G AccelRange = 0x00
	AccelRange4G AccelRange = 0x01
	AccelRange8G AccelRange = 0x03
)

const (
	accelCtrlReg1 = 0x20
	accelCtrlReg4 = 0x23
	accelOutXL    = 0x28
	accelOutXH    = 0x29
	accelOutYL    = 0x2A
	accelOutYH    = 0x2B
	accelOutZL    = 0x2C
	accelOutZH    = 0x2D

	accelAxesEnable = 0x07
	accelRangeShift = 4
	accelRangeMask  = 0x03

	// The device needs this long after a configuration write before the
	// first sample is valid.
	accelSettle = 10 * time.Millisecond

	standardGravity = 9.80665
)

// accelGains is the sensitivity in mg per LSB for each full scale.
var accelGains = map[AccelRange]float64{
	AccelRange2G: 1.0,
	AccelRange4G: 2.0,
	AccelRange8G: 3.9,
}

func (r AccelRate) valid() bool {
	switch r {
	case AccelRate50Hz, AccelRate100Hz, AccelRate400Hz, AccelRate1000Hz,
		AccelRateHalfHz, AccelRate1Hz, AccelRate2Hz, AccelRate5Hz, AccelRate10Hz:
		return true
	}
	return false
}

func (r AccelRange) String() string {
	switch r {
	case AccelRange2G:
		return "±2G"
	case AccelRange4G:
		return "±4G"
	case AccelRange8G:
		return "±8G"
	default:
		return fmt.Sprintf("AccelRange(%d)", byte(r))
	}
}

// Accelerometer is a driver for the LSM303DLH accelerometer.
//
// It keeps no configuration of its own: Read recovers the active range from
// the device on every call, so a reconfiguration done behind its back is
// picked up on the next sample.
type Accelerometer struct {
	p Port
}

// NewAccelerometer returns a driver using p. The chip has no identity
// register so nothing is checked and nothing is written.
func NewAccelerometer(p Port) *Accelerometer {
	return &Accelerometer{p: p}
}

// NewAccelerometerI2C returns a driver for the accelerometer at addr on b.
func NewAccelerometerI2C(b i2c.Bus, addr uint16) *Accelerometer {
	return NewAccelerometer(NewI2CPort(b, addr))
}

func (d *Accelerometer) String() string {
	return "LSM303DLH accelerometer"
}

// Enable powers the accelerometer up at the given rate and range with all
// three axes enabled, then waits for the device to settle.
//
// Block data update stays continuous and the sample layout little-endian.
func (d *Accelerometer) Enable(rate AccelRate, rng AccelRange) error {
	if !rate.valid() {
		return fmt.Errorf("%w: accelerometer rate %#x", ErrInvalidArgument, byte(rate))
	}
	if _, ok := accelGains[rng]; !ok {
		return fmt.Errorf("%w: accelerometer range %#x", ErrInvalidArgument, byte(rng))
	}
	if err := d.p.WriteUint8(accelCtrlReg1, byte(rate)<<3|accelAxesEnable); err != nil {
		return err
	}
	if err := d.p.WriteUint8(accelCtrlReg4, byte(rng)<<accelRangeShift); err != nil {
		return err
	}
	time.Sleep(accelSettle)
	return nil
}

// Disable puts the accelerometer in power down mode. CTRL_REG4_A is left
// untouched.
func (d *Accelerometer) Disable() error {
	return d.p.WriteUint8(accelCtrlReg1, 0)
}

// Halt implements conn.Resource.
func (d *Accelerometer) Halt() error {
	return d.Disable()
}

// ReadRange returns the full scale currently selected in the device.
func (d *Accelerometer) ReadRange() (AccelRange, error) {
	v, err := d.p.ReadUint8(accelCtrlReg4)
	if err != nil {
		return 0, err
	}
	return AccelRange(v >> accelRangeShift & accelRangeMask), nil
}

// ReadRaw returns the 12 bit signed counts of the X, Y and Z axes.
func (d *Accelerometer) ReadRaw() ([3]int16, error) {
	var out [3]int16
	regs := [3][2]uint8{
		{accelOutXL, accelOutXH},
		{accelOutYL, accelOutYH},
		{accelOutZL, accelOutZH},
	}
	for i, r := range regs {
		lo, err := d.p.ReadUint8(r[0])
		if err != nil {
			return out, err
		}
		hi, err := d.p.ReadInt8(r[1])
		if err != nil {
			return out, err
		}
		out[i] = combine12(hi, lo)
	}
	return out, nil
}

// Read returns the acceleration in m/s², scaled by the range the device
// reports at the time of the read.
//
// The reserved full scale value 0b10 has no documented gain, so reading it
// back returns ErrUnexpectedRange rather than a sample scaled by a guess.
func (d *Accelerometer) Read() (Vector, error) {
	raw, err := d.ReadRaw()
	if err != nil {
		return Vector{}, err
	}
	rng, err := d.ReadRange()
	if err != nil {
		return Vector{}, err
	}
	gain, ok := accelGains[rng]
	if !ok {
		return Vector{}, fmt.Errorf("%w: FS field %#x", ErrUnexpectedRange, byte(rng))
	}
	k := gain * standardGravity / 1000.0
	return Vector{
		X: float64(raw[0]) * k,
		Y: float64(raw[1]) * k,
		Z: float64(raw[2]) * k,
	}, nil
}

// combine12 rebuilds the left-justified 12 bit sample from its two output
// registers. The high byte is signed so the sign carries through the shift.
func combine12(hi int8, lo uint8) int16 {
	return int16(hi)<<4 | int16(lo>>4)
}

var _ conn.Resource = &Accelerometer{}
