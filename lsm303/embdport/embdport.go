// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package embdport adapts a github.com/kidoman/embd I²C bus to lsm303.Port,
// for hosts whose sensor stack already runs on embd.
package embdport

import (
	"encoding/binary"

	"github.com/GermanBionicSystems/lsm303dlh/lsm303"
	"github.com/kidoman/embd"
)

// Port is a lsm303.Port for one device on an embd bus.
type Port struct {
	bus  embd.I2CBus
	addr byte
}

// New returns a Port for the device at addr on bus.
func New(bus embd.I2CBus, addr byte) *Port {
	return &Port{bus: bus, addr: addr}
}

// WriteUint8 implements lsm303.Port.
func (p *Port) WriteUint8(reg uint8, v uint8) error {
	return p.bus.WriteByteToReg(p.addr, reg, v)
}

// ReadUint8 implements lsm303.Port.
func (p *Port) ReadUint8(reg uint8) (uint8, error) {
	return p.bus.ReadByteFromReg(p.addr, reg)
}

// ReadInt8 implements lsm303.Port.
func (p *Port) ReadInt8(reg uint8) (int8, error) {
	v, err := p.bus.ReadByteFromReg(p.addr, reg)
	return int8(v), err
}

// ReadInt16BE implements lsm303.Port.
func (p *Port) ReadInt16BE(reg uint8) (int16, error) {
	var b [2]byte
	if err := p.bus.ReadFromReg(p.addr, reg, b[:]); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(b[:])), nil
}

// ReadUint24BE implements lsm303.Port.
func (p *Port) ReadUint24BE(reg uint8) (uint32, error) {
	var b [3]byte
	if err := p.bus.ReadFromReg(p.addr, reg, b[:]); err != nil {
		return 0, err
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

var _ lsm303.Port = &Port{}
