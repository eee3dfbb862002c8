// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lsm303

import (
	"encoding/binary"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/mmr"
)

// Port is a register-addressed view of a single device. Multi-byte reads
// start at the given register and cover consecutive addresses.
//
// Errors returned by a Port are passed through to the driver's caller
// unchanged.
type Port interface {
	WriteUint8(reg uint8, v uint8) error
	ReadUint8(reg uint8) (uint8, error)
	ReadInt8(reg uint8) (int8, error)
	// ReadInt16BE reads two registers as a big-endian two's-complement value.
	ReadInt16BE(reg uint8) (int16, error)
	// ReadUint24BE reads three registers as a big-endian unsigned value.
	ReadUint24BE(reg uint8) (uint32, error)
}

// DebugF the debug function type.
type DebugF func(string, ...interface{})

// I2CPort implements Port over a periph.io connection.
type I2CPort struct {
	c     conn.Conn
	r     mmr.Dev8
	debug DebugF
}

// NewI2CPort returns a Port bound to the device at addr on b.
func NewI2CPort(b i2c.Bus, addr uint16) *I2CPort {
	return NewPort(&i2c.Dev{Bus: b, Addr: addr})
}

// NewPort returns a Port using an already addressed half-duplex connection.
func NewPort(c conn.Conn) *I2CPort {
	return &I2CPort{
		c:     c,
		r:     mmr.Dev8{Conn: c, Order: binary.BigEndian},
		debug: noop,
	}
}

// EnableDebug Sets the debugging output using the local print function.
func (p *I2CPort) EnableDebug(f DebugF) {
	p.debug = f
}

func (p *I2CPort) String() string {
	return p.c.String()
}

// WriteUint8 implements Port.
func (p *I2CPort) WriteUint8(reg uint8, v uint8) error {
	p.debug("write register %#x value %#x", reg, v)
	return p.r.WriteUint8(reg, v)
}

// ReadUint8 implements Port.
func (p *I2CPort) ReadUint8(reg uint8) (uint8, error) {
	v, err := p.r.ReadUint8(reg)
	p.debug("read register %#x value %#x", reg, v)
	return v, err
}

// ReadInt8 implements Port.
func (p *I2CPort) ReadInt8(reg uint8) (int8, error) {
	v, err := p.ReadUint8(reg)
	return int8(v), err
}

// ReadInt16BE implements Port.
func (p *I2CPort) ReadInt16BE(reg uint8) (int16, error) {
	v, err := p.r.ReadUint16(reg)
	p.debug("read register %#x word %#x", reg, v)
	return int16(v), err
}

// ReadUint24BE implements Port.
func (p *I2CPort) ReadUint24BE(reg uint8) (uint32, error) {
	var b [3]byte
	if err := p.c.Tx([]byte{reg}, b[:]); err != nil {
		return 0, err
	}
	p.debug("read register %#x bytes %x", reg, b)
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

func noop(string, ...interface{}) {}

var _ Port = &I2CPort{}
