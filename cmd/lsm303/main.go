// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// lsm303 reads an LSM303DLH accelerometer and magnetometer in a loop.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/GermanBionicSystems/lsm303dlh/compass"
	"github.com/GermanBionicSystems/lsm303dlh/lsm303"
	"github.com/GermanBionicSystems/lsm303dlh/screen1d"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var accelRates = map[string]byte{
	"0.5":  byte(lsm303.AccelRateHalfHz),
	"1":    byte(lsm303.AccelRate1Hz),
	"2":    byte(lsm303.AccelRate2Hz),
	"5":    byte(lsm303.AccelRate5Hz),
	"10":   byte(lsm303.AccelRate10Hz),
	"50":   byte(lsm303.AccelRate50Hz),
	"100":  byte(lsm303.AccelRate100Hz),
	"400":  byte(lsm303.AccelRate400Hz),
	"1000": byte(lsm303.AccelRate1000Hz),
}

var accelRanges = map[string]byte{
	"2": byte(lsm303.AccelRange2G),
	"4": byte(lsm303.AccelRange4G),
	"8": byte(lsm303.AccelRange8G),
}

var magRates = map[string]byte{
	"0.75": byte(lsm303.MagRate0_75Hz),
	"1.5":  byte(lsm303.MagRate1_5Hz),
	"3":    byte(lsm303.MagRate3Hz),
	"7.5":  byte(lsm303.MagRate7_5Hz),
	"15":   byte(lsm303.MagRate15Hz),
	"30":   byte(lsm303.MagRate30Hz),
	"75":   byte(lsm303.MagRate75Hz),
}

var magRanges = map[string]byte{
	"1.3": byte(lsm303.MagRange1_3G),
	"1.9": byte(lsm303.MagRange1_9G),
	"2.5": byte(lsm303.MagRange2_5G),
	"4.0": byte(lsm303.MagRange4_0G),
	"4.7": byte(lsm303.MagRange4_7G),
	"5.6": byte(lsm303.MagRange5_6G),
	"8.1": byte(lsm303.MagRange8_1G),
}

// lookup returns m[s] or an error listing the accepted keys.
func lookup(what string, m map[string]byte, s string) (byte, error) {
	if v, ok := m[s]; ok {
		return v, nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return 0, fmt.Errorf("invalid %s %q; valid values: %s", what, s, strings.Join(keys, ", "))
}

func mainImpl() error {
	busName := flag.String("b", "", "I²C bus to use")
	accelAddr := flag.Uint("accel-addr", uint(lsm303.AccelAddr), "accelerometer I²C address")
	magAddr := flag.Uint("mag-addr", uint(lsm303.MagAddr), "magnetometer I²C address")
	accelRate := flag.String("accel-rate", "50", "accelerometer output rate in Hz")
	accelRange := flag.String("accel-range", "2", "accelerometer range in G")
	magRate := flag.String("mag-rate", "15", "magnetometer output rate in Hz")
	magRange := flag.String("mag-range", "1.3", "magnetometer range in gauss")
	interval := flag.Duration("i", 100*time.Millisecond, "interval between samples")
	maxErrors := flag.Int("max-errors", 0, "stop after this many consecutive read errors; 0 means never")
	count := flag.Int("n", 0, "number of samples to take; 0 means until interrupted")
	raw := flag.Bool("raw", false, "print the raw magnetometer counts, in X, Z, Y order")
	bars := flag.Bool("bars", false, "draw the samples as colored bars")
	pngPath := flag.String("png", "", "write a compass dial of the last heading to this PNG file")
	broker := flag.String("mqtt", "", "MQTT broker to publish samples to, e.g. tcp://localhost:1883")
	topic := flag.String("topic", "lsm303/sample", "MQTT topic")
	metricsAddr := flag.String("metrics", "", "address to serve Prometheus metrics on, e.g. :9100")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(log.Lmicroseconds)
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}
	if *raw && (*pngPath != "" || *bars) {
		return errors.New("-png and -bars need scaled magnetometer samples, drop -raw")
	}

	opts := lsm303.DefaultOpts
	opts.AccelAddr = uint16(*accelAddr)
	opts.MagAddr = uint16(*magAddr)
	v, err := lookup("accelerometer rate", accelRates, *accelRate)
	if err != nil {
		return err
	}
	opts.AccelRate = lsm303.AccelRate(v)
	if v, err = lookup("accelerometer range", accelRanges, *accelRange); err != nil {
		return err
	}
	opts.AccelRange = lsm303.AccelRange(v)
	if v, err = lookup("magnetometer rate", magRates, *magRate); err != nil {
		return err
	}
	opts.MagRate = lsm303.MagRate(v)
	if v, err = lookup("magnetometer range", magRanges, *magRange); err != nil {
		return err
	}
	opts.MagRange = lsm303.MagRange(v)

	if _, err := host.Init(); err != nil {
		return err
	}
	bus, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer bus.Close()

	ap := lsm303.NewI2CPort(bus, opts.AccelAddr)
	mp := lsm303.NewI2CPort(bus, opts.MagAddr)
	if *verbose {
		ap.EnableDebug(log.Printf)
		mp.EnableDebug(log.Printf)
	}
	mag, err := lsm303.NewMagnetometer(mp)
	if err != nil {
		return err
	}
	if err := mag.Enable(opts.MagRate, opts.MagRange); err != nil {
		return err
	}
	defer mag.Halt()
	accel := lsm303.NewAccelerometer(ap)
	if err := accel.Enable(opts.AccelRate, opts.AccelRange); err != nil {
		return err
	}
	defer accel.Halt()
	log.Printf("%s at %#x, %s at %#x", accel, opts.AccelAddr, mag, opts.MagAddr)

	var sinks []sink
	if *bars {
		// Full bars at the selected magnetometer range; 1 gauss is 100µT.
		g, err := strconv.ParseFloat(*magRange, 64)
		if err != nil {
			return err
		}
		d, err := screen1d.New(&screen1d.Opts{Width: 12, Scale: g * 100})
		if err != nil {
			return err
		}
		defer d.Halt()
		sinks = append(sinks, &barSink{d: d})
	} else {
		sinks = append(sinks, &textSink{w: os.Stdout})
	}
	if *broker != "" {
		p, err := newPublisher(*broker, *topic)
		if err != nil {
			return err
		}
		defer p.Close()
		sinks = append(sinks, p)
	}
	var m *metrics
	if *metricsAddr != "" {
		m = newMetrics()
		go func() {
			if err := m.serve(*metricsAddr); err != nil {
				log.Printf("metrics: %v", err)
			}
		}()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	t := time.NewTicker(*interval)
	defer t.Stop()
	sm := &sampler{
		read:      func() (sample, error) { return takeSample(accel, mag, *raw) },
		sinks:     sinks,
		m:         m,
		maxErrors: *maxErrors,
	}
loop:
	for i := 0; *count == 0 || i < *count; i++ {
		if err := sm.step(); err != nil {
			return err
		}
		select {
		case <-stop:
			break loop
		case <-t.C:
		}
	}
	if *pngPath != "" {
		return writeDial(*pngPath, sm.last)
	}
	return nil
}

// takeSample reads both sensors. With raw set, the magnetometer counts are
// read instead of the scaled field.
func takeSample(accel *lsm303.Accelerometer, mag *lsm303.Magnetometer, raw bool) (sample, error) {
	s := sample{T: time.Now()}
	var err error
	if s.Accel, err = accel.Read(); err != nil {
		return s, err
	}
	if raw {
		s.IsRaw = true
		s.Raw, err = mag.ReadRaw(true)
		return s, err
	}
	s.Mag, err = mag.Read()
	return s, err
}

func writeDial(path string, v lsm303.Vector) error {
	h, err := compass.Heading(v)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := compass.Render(f, h, 256); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "lsm303: %s.\n", err)
		os.Exit(1)
	}
}
