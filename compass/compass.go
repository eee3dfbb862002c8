// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package compass turns magnetometer samples into a heading and draws it as
// a compass dial.
//
// The heading assumes the board lies flat; there is no tilt compensation.
package compass

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/GermanBionicSystems/lsm303dlh/lsm303"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrSaturated is returned by Heading when X or Y is saturated.
var ErrSaturated = errors.New("compass: saturated horizontal axis")

// Heading returns the angle in degrees, clockwise from magnetic north, in
// [0, 360).
func Heading(v lsm303.Vector) (float64, error) {
	if math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
		return 0, ErrSaturated
	}
	h := math.Atan2(v.Y, v.X) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h, nil
}

var (
	fontOnce sync.Once
	fontErr  error
	font     *truetype.Font
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		font, fontErr = truetype.Parse(goregular.TTF)
	})
	return font, fontErr
}

// Render draws a size×size PNG dial with the needle at heading degrees and
// writes it to w.
func Render(w io.Writer, heading float64, size int) error {
	if size < 32 {
		return fmt.Errorf("compass: size %d too small", size)
	}
	f, err := loadFont()
	if err != nil {
		return err
	}
	s := float64(size)
	c := s / 2
	r := c * 0.85

	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	dc.DrawCircle(c, c, r)
	dc.Stroke()

	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: s / 12}))
	for i, l := range []string{"N", "E", "S", "W"} {
		a := gg.Radians(float64(i) * 90)
		dc.DrawStringAnchored(l, c+math.Sin(a)*(r-s/12), c-math.Cos(a)*(r-s/12), 0.5, 0.5)
	}
	dc.DrawStringAnchored(fmt.Sprintf("%.0f°", heading), c, c+r/2, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(gg.Radians(heading), c, c)
	dc.SetRGB(0.8, 0, 0)
	dc.SetLineWidth(3)
	dc.DrawLine(c, c, c, c-r*0.8)
	dc.Stroke()
	dc.Pop()

	return dc.EncodePNG(w)
}
