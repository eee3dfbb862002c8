// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package embdport

import (
	"errors"
	"math"
	"testing"

	"github.com/GermanBionicSystems/lsm303dlh/lsm303"
	"github.com/kidoman/embd"
)

// fakeBus is a register file for a single device. Methods the adapter does
// not use are left to the embedded nil interface.
type fakeBus struct {
	embd.I2CBus
	addr   byte
	regs   [256]byte
	writes int
}

func (f *fakeBus) check(addr byte) error {
	if addr != f.addr {
		return errors.New("fakeBus: no device at address")
	}
	return nil
}

func (f *fakeBus) WriteByteToReg(addr, reg, value byte) error {
	if err := f.check(addr); err != nil {
		return err
	}
	f.writes++
	f.regs[reg] = value
	return nil
}

func (f *fakeBus) ReadByteFromReg(addr, reg byte) (byte, error) {
	if err := f.check(addr); err != nil {
		return 0, err
	}
	return f.regs[reg], nil
}

func (f *fakeBus) ReadFromReg(addr, reg byte, value []byte) error {
	if err := f.check(addr); err != nil {
		return err
	}
	copy(value, f.regs[reg:])
	return nil
}

func TestPort(t *testing.T) {
	bus := &fakeBus{addr: 0x1E}
	copy(bus.regs[0x0A:], "H43")
	bus.regs[0x03], bus.regs[0x04] = 0xf0, 0x00
	p := New(bus, 0x1E)

	if v, err := p.ReadUint24BE(0x0A); err != nil || v != 0x483433 {
		t.Errorf("ReadUint24BE() = %#x, %v", v, err)
	}
	if v, err := p.ReadInt16BE(0x03); err != nil || v != -4096 {
		t.Errorf("ReadInt16BE() = %d, %v", v, err)
	}
	if v, err := p.ReadInt8(0x03); err != nil || v != -16 {
		t.Errorf("ReadInt8() = %d, %v", v, err)
	}
	if err := p.WriteUint8(0x02, 0x03); err != nil || bus.regs[0x02] != 0x03 {
		t.Errorf("WriteUint8() = %v, register %#x", err, bus.regs[0x02])
	}
	if _, err := New(bus, 0x19).ReadUint8(0); err == nil {
		t.Error("expected an error for a missing device")
	}
}

func TestMagnetometerOverEmbd(t *testing.T) {
	bus := &fakeBus{addr: byte(lsm303.MagAddr)}
	copy(bus.regs[0x0A:], "H43")
	// X, Y, Z at 0x03, 0x05, 0x07.
	copy(bus.regs[0x03:], []byte{0xf0, 0x00, 0x04, 0x1f, 0x03, 0xb6})
	d, err := lsm303.NewMagnetometer(New(bus, byte(lsm303.MagAddr)))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Enable(lsm303.MagRate15Hz, lsm303.MagRange1_3G); err != nil {
		t.Fatal(err)
	}
	if bus.regs[0x00] != 0x10 || bus.regs[0x01] != 0x20 || bus.regs[0x02] != 0x00 {
		t.Errorf("unexpected configuration %x", bus.regs[:3])
	}
	v, err := d.Read()
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(v.X, 1) || v.Y != 100 || v.Z != 100 {
		t.Errorf("Read() = %s", v)
	}
}

func TestAccelerometerOverEmbd(t *testing.T) {
	bus := &fakeBus{addr: byte(lsm303.AccelAddr)}
	d := lsm303.NewAccelerometer(New(bus, byte(lsm303.AccelAddr)))
	if err := d.Enable(lsm303.AccelRate100Hz, lsm303.AccelRange4G); err != nil {
		t.Fatal(err)
	}
	if bus.regs[0x20] != 0x2f || bus.regs[0x23] != 0x10 {
		t.Errorf("CTRL_REG1_A=%#x CTRL_REG4_A=%#x", bus.regs[0x20], bus.regs[0x23])
	}
	if rng, err := d.ReadRange(); err != nil || rng != lsm303.AccelRange4G {
		t.Errorf("ReadRange() = %s, %v", rng, err)
	}
	if err := d.Disable(); err != nil {
		t.Fatal(err)
	}
	if bus.regs[0x20] != 0 || bus.regs[0x23] != 0x10 {
		t.Errorf("Disable left CTRL_REG1_A=%#x CTRL_REG4_A=%#x", bus.regs[0x20], bus.regs[0x23])
	}
	if bus.writes != 3 {
		t.Errorf("expected 3 register writes, got %d", bus.writes)
	}
}
