// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lsm303

import (
	"fmt"
	"math"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// MagAddr is the I²C address of the magnetometer.
const MagAddr uint16 = 0x1E

// MagRate is the output data rate of the magnetometer, the DO field of
// CRA_REG_M.
type MagRate byte

// MagRange is the field range of the magnetometer, the GN field of
// CRB_REG_M. It starts at 1; 0 is not a valid gain setting.
type MagRange byte

const (
	MagRate0_75Hz MagRate = iota
	MagRate1_5Hz
	MagRate3Hz
	MagRate7_5Hz
	MagRate15Hz
	MagRate30Hz
	MagRate75Hz
	magRateCount
)

const (
	MagRange1_3G MagRange = iota + 1
	MagRange1_9G
	MagRange2_5G
	MagRange4_0G
	MagRange4_7G
	MagRange5_6G
	MagRange8_1G
	magRangeEnd
)

const (
	magCRA  = 0x00
	magCRB  = 0x01
	magMR   = 0x02
	magOutX = 0x03
	magOutY = 0x05
	magOutZ = 0x07
	magIRA  = 0x0A

	magRateShift  = 2
	magRangeShift = 5

	magModeContinuous = 0x00
	magModeSleep      = 0x03

	// "H43"
	magIdentity = 0x483433

	// The device reports this count on an axis whose field is beyond the
	// selected range.
	magOverflow = -4096

	gaussToMicroTesla = 100.0
)

// magGains holds the XY and Z sensitivities in LSB per gauss, indexed by
// MagRange-1.
var magGains = [...]magGain{
	{1055, 950},
	{795, 710},
	{635, 570},
	{430, 385},
	{375, 335},
	{320, 285},
	{230, 205},
}

type magGain struct {
	xy float64
	z  float64
}

func (r MagRange) String() string {
	switch r {
	case MagRange1_3G:
		return "±1.3G"
	case MagRange1_9G:
		return "±1.9G"
	case MagRange2_5G:
		return "±2.5G"
	case MagRange4_0G:
		return "±4.0G"
	case MagRange4_7G:
		return "±4.7G"
	case MagRange5_6G:
		return "±5.6G"
	case MagRange8_1G:
		return "±8.1G"
	default:
		return fmt.Sprintf("MagRange(%d)", byte(r))
	}
}

// Magnetometer is a driver for the LSM303DLH magnetometer.
//
// Unlike Accelerometer, it caches the gains selected by Enable and does not
// read the range back from the device.
type Magnetometer struct {
	p Port

	mu   sync.Mutex
	gain *magGain
}

// NewMagnetometer returns a driver using p after checking the identity
// registers. It returns ErrUnrecognizedDevice if they do not match.
func NewMagnetometer(p Port) (*Magnetometer, error) {
	id, err := p.ReadUint24BE(magIRA)
	if err != nil {
		return nil, err
	}
	if id != magIdentity {
		return nil, fmt.Errorf("%w: identity %#06x, expected %#06x", ErrUnrecognizedDevice, id, magIdentity)
	}
	return &Magnetometer{p: p}, nil
}

// NewMagnetometerI2C returns a driver for the magnetometer at addr on b.
func NewMagnetometerI2C(b i2c.Bus, addr uint16) (*Magnetometer, error) {
	return NewMagnetometer(NewI2CPort(b, addr))
}

func (d *Magnetometer) String() string {
	return "LSM303DLH magnetometer"
}

// Enable sets the rate and range and starts continuous conversion.
//
// The gains used by Read change only once every register write succeeded.
func (d *Magnetometer) Enable(rate MagRate, rng MagRange) error {
	if rate >= magRateCount {
		return fmt.Errorf("%w: magnetometer rate %d", ErrInvalidArgument, byte(rate))
	}
	if rng < MagRange1_3G || rng >= magRangeEnd {
		return fmt.Errorf("%w: magnetometer range %d", ErrInvalidArgument, byte(rng))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.p.WriteUint8(magCRA, byte(rate)<<magRateShift); err != nil {
		return err
	}
	if err := d.p.WriteUint8(magCRB, byte(rng)<<magRangeShift); err != nil {
		return err
	}
	if err := d.p.WriteUint8(magMR, magModeContinuous); err != nil {
		return err
	}
	g := magGains[rng-1]
	d.gain = &g
	return nil
}

// Disable puts the magnetometer to sleep. The cached gains are kept.
func (d *Magnetometer) Disable() error {
	return d.p.WriteUint8(magMR, magModeSleep)
}

// Halt implements conn.Resource.
func (d *Magnetometer) Halt() error {
	return d.Disable()
}

// Gains returns the XY and Z sensitivities in LSB per gauss selected by
// the last successful Enable. ok is false if Enable never succeeded.
func (d *Magnetometer) Gains() (xy, z float64, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gain == nil {
		return 0, 0, false
	}
	return d.gain.xy, d.gain.z, true
}

// Read returns the magnetic field in µT.
//
// An axis whose raw count is the device overflow value reads as +Inf,
// meaning the range passed to Enable is too narrow for the field.
func (d *Magnetometer) Read() (Vector, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gain == nil {
		return Vector{}, ErrNotEnabled
	}
	x, err := d.p.ReadInt16BE(magOutX)
	if err != nil {
		return Vector{}, err
	}
	y, err := d.p.ReadInt16BE(magOutY)
	if err != nil {
		return Vector{}, err
	}
	z, err := d.p.ReadInt16BE(magOutZ)
	if err != nil {
		return Vector{}, err
	}
	return Vector{
		X: toMicroTesla(x, d.gain.xy),
		Y: toMicroTesla(y, d.gain.xy),
		Z: toMicroTesla(z, d.gain.z),
	}, nil
}

// ReadRaw returns the unscaled counts in X, Z, Y order, which is the order
// the output registers are read in. raw must be true.
func (d *Magnetometer) ReadRaw(raw bool) ([3]int16, error) {
	var out [3]int16
	if !raw {
		return out, fmt.Errorf("%w: raw read requested without raw flag", ErrInvalidArgument)
	}
	// TODO: confirm with the board owners whether callers expect
	// X, Y, Z here; the order is kept as is until then.
	for i, reg := range [3]uint8{magOutX, magOutZ, magOutY} {
		v, err := d.p.ReadInt16BE(reg)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func toMicroTesla(raw int16, gain float64) float64 {
	if raw == magOverflow {
		return math.Inf(1)
	}
	return float64(raw) * gaussToMicroTesla / gain
}

var _ conn.Resource = &Magnetometer{}
