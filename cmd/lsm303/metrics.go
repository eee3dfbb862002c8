// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	reg        *prometheus.Registry
	accel      *prometheus.GaugeVec
	mag        *prometheus.GaugeVec
	saturation *prometheus.CounterVec
	errors     prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		reg: prometheus.NewRegistry(),
		accel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lsm303_acceleration_meters_per_second_squared",
			Help: "Last accelerometer sample per axis.",
		}, []string{"axis"}),
		mag: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lsm303_magnetic_field_microtesla",
			Help: "Last magnetometer sample per axis. Saturated axes keep their previous value.",
		}, []string{"axis"}),
		saturation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lsm303_magnetometer_saturated_total",
			Help: "Magnetometer samples whose axis exceeded the configured range.",
		}, []string{"axis"}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lsm303_read_errors_total",
			Help: "Failed sample reads.",
		}),
	}
	m.reg.MustRegister(m.accel, m.mag, m.saturation, m.errors)
	return m
}

// observe records a sample. It is a no-op on a nil *metrics.
func (m *metrics) observe(s sample, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.errors.Inc()
		return
	}
	axes := [3]string{"x", "y", "z"}
	a := [3]float64{s.Accel.X, s.Accel.Y, s.Accel.Z}
	g := [3]float64{s.Mag.X, s.Mag.Y, s.Mag.Z}
	for i, axis := range axes {
		m.accel.WithLabelValues(axis).Set(a[i])
		if s.IsRaw {
			continue
		}
		if finite(g[i]) == nil {
			m.saturation.WithLabelValues(axis).Inc()
			continue
		}
		m.mag.WithLabelValues(axis).Set(g[i])
	}
}

func (m *metrics) serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
