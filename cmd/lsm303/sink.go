// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/GermanBionicSystems/lsm303dlh/lsm303"
	"github.com/GermanBionicSystems/lsm303dlh/screen1d"
)

// sample is one iteration of the read loop.
type sample struct {
	T     time.Time
	Accel lsm303.Vector
	Mag   lsm303.Vector
	// Raw holds the magnetometer counts in X, Z, Y order when IsRaw is set;
	// Mag is then zero.
	Raw   [3]int16
	IsRaw bool
}

type sink interface {
	Write(s sample) error
}

type textSink struct {
	w io.Writer
}

func (t *textSink) Write(s sample) error {
	var err error
	if s.IsRaw {
		_, err = fmt.Fprintf(t.w, "accel %s m/s²  mag x:%d z:%d y:%d\n", s.Accel, s.Raw[0], s.Raw[1], s.Raw[2])
	} else {
		sat := ""
		if s.Mag.IsSaturated() {
			sat = " (saturated, increase -mag-range)"
		}
		_, err = fmt.Fprintf(t.w, "accel %s m/s²  mag %s µT%s\n", s.Accel, s.Mag, sat)
	}
	return err
}

type barSink struct {
	d *screen1d.Dev
}

func (b *barSink) Write(s sample) error {
	return b.d.Draw("mag µT", s.Mag)
}
