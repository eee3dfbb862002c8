// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen1d draws 3-axis samples as one line of colored bars on the
// terminal using ANSI color codes.
//
// Useful to eyeball a sensor while tilting or turning the board.
package screen1d

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/GermanBionicSystems/lsm303dlh/lsm303"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for this display.
type Opts struct {
	// Width is the number of cells used per axis.
	Width int
	// Scale is the absolute value drawn as a full bar.
	Scale   float64
	Palette *ansi256.Palette
	// W defaults to a color capable stdout.
	W io.Writer

	_ struct{}
}

var (
	colorPositive  = color.NRGBA{0x00, 0xc0, 0x40, 0xff}
	colorNegative  = color.NRGBA{0x20, 0x60, 0xff, 0xff}
	colorSaturated = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	colorEmpty     = color.NRGBA{0x30, 0x30, 0x30, 0xff}
)

// Dev is a bar graph that outputs to the console.
type Dev struct {
	w       io.Writer
	width   int
	scale   float64
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) (*Dev, error) {
	if opts.Width <= 0 {
		return nil, errors.New("screen1d: width must be positive")
	}
	if opts.Scale <= 0 {
		return nil, errors.New("screen1d: scale must be positive")
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Dev{w: w, width: opts.Width, scale: opts.Scale, palette: *p}, nil
}

func (d *Dev) String() string {
	return "Screen1D"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the prompt is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Draw overwrites the current line with label followed by one bar per axis.
//
// A saturated axis is drawn as a full red bar.
func (d *Dev) Draw(label string, v lsm303.Vector) error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	_, _ = d.buf.WriteString(label)
	for i, a := range [3]float64{v.X, v.Y, v.Z} {
		_, _ = fmt.Fprintf(&d.buf, " %c ", "XYZ"[i])
		n, c := d.cells(a)
		for j := 0; j < d.width; j++ {
			if j < n {
				_, _ = io.WriteString(&d.buf, d.palette.Block(c))
			} else {
				_, _ = io.WriteString(&d.buf, d.palette.Block(colorEmpty))
			}
		}
		_, _ = d.buf.WriteString("\033[0m")
	}
	_, _ = d.buf.WriteString(" ")
	_, err := d.buf.WriteTo(d.w)
	return err
}

// cells returns how many cells to fill for a and their color.
func (d *Dev) cells(a float64) (int, color.NRGBA) {
	if math.IsInf(a, 0) {
		return d.width, colorSaturated
	}
	c := colorPositive
	if a < 0 {
		c = colorNegative
	}
	// Clamp before converting, int() of a huge float is undefined.
	n := int(math.Min(math.Round(math.Abs(a)/d.scale*float64(d.width)), float64(d.width)))
	return n, c
}

var _ fmt.Stringer = &Dev{}
