// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/lsm303dlh/lsm303"
)

// sampler runs one iteration of the read loop per step.
type sampler struct {
	read  func() (sample, error)
	sinks []sink
	m     *metrics
	// maxErrors is the number of consecutive failed reads that ends the loop.
	// 0 means the loop never gives up.
	maxErrors int

	failures int
	last     lsm303.Vector
}

// step takes one sample and hands it to every sink.
//
// A failed read is logged and counted, then skipped until the next tick. Only
// a sink error or maxErrors consecutive read failures are returned.
func (s *sampler) step() error {
	smp, err := s.read()
	s.m.observe(smp, err)
	if err != nil {
		s.failures++
		log.Printf("read failed (%d in a row): %v", s.failures, err)
		if s.maxErrors > 0 && s.failures >= s.maxErrors {
			return fmt.Errorf("%d consecutive read errors: %w", s.failures, err)
		}
		return nil
	}
	s.failures = 0
	for _, k := range s.sinks {
		if err := k.Write(smp); err != nil {
			return err
		}
	}
	s.last = smp.Mag
	return nil
}
