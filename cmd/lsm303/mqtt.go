// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/GermanBionicSystems/lsm303dlh/compass"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// payload is the JSON document published per sample. Saturated magnetometer
// axes are null since JSON has no infinity.
type payload struct {
	AX        float64  `json:"ax"`
	AY        float64  `json:"ay"`
	AZ        float64  `json:"az"`
	MX        *float64 `json:"mx"`
	MY        *float64 `json:"my"`
	MZ        *float64 `json:"mz"`
	Heading   *float64 `json:"heading,omitempty"`
	Saturated bool     `json:"saturated"`
	Raw       []int16  `json:"raw,omitempty"`
	Time      string   `json:"time"`
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

func newPayload(s sample) payload {
	p := payload{
		AX:   s.Accel.X,
		AY:   s.Accel.Y,
		AZ:   s.Accel.Z,
		Time: s.T.UTC().Format(time.RFC3339Nano),
	}
	if s.IsRaw {
		p.Raw = []int16{s.Raw[0], s.Raw[1], s.Raw[2]}
		return p
	}
	p.MX, p.MY, p.MZ = finite(s.Mag.X), finite(s.Mag.Y), finite(s.Mag.Z)
	p.Saturated = s.Mag.IsSaturated()
	if h, err := compass.Heading(s.Mag); err == nil {
		p.Heading = &h
	}
	return p
}

// publisher sends samples to an MQTT broker.
type publisher struct {
	c     mqtt.Client
	topic string
}

func newPublisher(broker, topic string) (*publisher, error) {
	host, _ := os.Hostname()
	opts := mqtt.NewClientOptions().AddBroker(broker).SetClientID("lsm303-" + host)
	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return &publisher{c: c, topic: topic}, nil
}

func (p *publisher) Write(s sample) error {
	b, err := json.Marshal(newPayload(s))
	if err != nil {
		return err
	}
	t := p.c.Publish(p.topic, 0, false, b)
	t.Wait()
	return t.Error()
}

func (p *publisher) Close() {
	p.c.Disconnect(250)
}
