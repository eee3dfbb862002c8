// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package compass

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"testing"

	"github.com/GermanBionicSystems/lsm303dlh/lsm303"
)

func TestHeading(t *testing.T) {
	tests := []struct {
		v    lsm303.Vector
		want float64
	}{
		{lsm303.Vector{X: 20, Y: 0, Z: -40}, 0},
		{lsm303.Vector{X: 0, Y: 20}, 90},
		{lsm303.Vector{X: -20, Y: 0}, 180},
		{lsm303.Vector{X: 0, Y: -20}, 270},
		{lsm303.Vector{X: 10, Y: 10, Z: math.Inf(1)}, 45},
	}
	for _, test := range tests {
		got, err := Heading(test.v)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("Heading(%s) = %v, expected %v", test.v, got, test.want)
		}
	}
}

func TestHeadingSaturated(t *testing.T) {
	for _, v := range []lsm303.Vector{{X: math.Inf(1)}, {Y: math.Inf(1)}} {
		if _, err := Heading(v); !errors.Is(err, ErrSaturated) {
			t.Errorf("Heading(%s) = %v, expected ErrSaturated", v, err)
		}
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		heading float64
		x, y    int
	}{
		// The needle is 68 pixels long from the center of a 200 pixel dial.
		{0, 100, 57},
		{90, 142, 100},
		{180, 100, 142},
	}
	for _, test := range tests {
		var buf bytes.Buffer
		if err := Render(&buf, test.heading, 200); err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
			t.Fatalf("unexpected bounds %v", b)
		}
		r, g, b, _ := img.At(test.x, test.y).RGBA()
		if r < 0x8000 || g > 0x4000 || b > 0x4000 {
			t.Errorf("heading %v: pixel (%d, %d) is not on the needle: %#x %#x %#x", test.heading, test.x, test.y, r, g, b)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	if err := Render(&bytes.Buffer{}, 0, 8); err == nil {
		t.Error("expected an error")
	}
}
