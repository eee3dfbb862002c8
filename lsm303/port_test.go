// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lsm303

import (
	"fmt"
	"strings"
	"testing"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestI2CPort(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x42, W: []byte{0x10, 0xaa}},
			{Addr: 0x42, W: []byte{0x11}, R: []byte{0xfe}},
			{Addr: 0x42, W: []byte{0x11}, R: []byte{0xfe}},
			{Addr: 0x42, W: []byte{0x12}, R: []byte{0x80, 0x01}},
			{Addr: 0x42, W: []byte{0x13}, R: []byte{0x48, 0x34, 0x33}},
		},
		DontPanic: true,
	}
	var lines []string
	p := NewI2CPort(pb, 0x42)
	p.EnableDebug(func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	})

	if err := p.WriteUint8(0x10, 0xaa); err != nil {
		t.Fatal(err)
	}
	if v, err := p.ReadUint8(0x11); err != nil || v != 0xfe {
		t.Errorf("ReadUint8() = %#x, %v", v, err)
	}
	if v, err := p.ReadInt8(0x11); err != nil || v != -2 {
		t.Errorf("ReadInt8() = %d, %v", v, err)
	}
	if v, err := p.ReadInt16BE(0x12); err != nil || v != -32767 {
		t.Errorf("ReadInt16BE() = %d, %v", v, err)
	}
	if v, err := p.ReadUint24BE(0x13); err != nil || v != 0x483433 {
		t.Errorf("ReadUint24BE() = %#x, %v", v, err)
	}
	if err := pb.Close(); err != nil {
		t.Error(err)
	}
	if len(lines) != 5 {
		t.Errorf("expected 5 debug lines, got %d: %s", len(lines), strings.Join(lines, "; "))
	}
}

func TestI2CPortError(t *testing.T) {
	pb := &i2ctest.Playback{DontPanic: true}
	p := NewI2CPort(pb, 0x42)
	if _, err := p.ReadUint24BE(0x13); err == nil {
		t.Error("expected an error")
	}
	if err := p.WriteUint8(0x10, 0); err == nil {
		t.Error("expected an error")
	}
}

func TestVector(t *testing.T) {
	v := Vector{X: 3, Y: 4}
	if n := v.Norm(); n != 5 {
		t.Errorf("Norm() = %v", n)
	}
	if v.IsSaturated() {
		t.Error("unexpected saturation")
	}
	if s := v.String(); s != "X:3.0000 Y:4.0000 Z:0.0000" {
		t.Errorf("String() = %q", s)
	}
}
