// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lsm303 controls the ST LSM303DLH module: a 3-axis accelerometer
// and a 3-axis magnetometer sharing one I²C bus at two distinct addresses.
//
// The two sensors are independent devices and get independent drivers,
// Accelerometer and Magnetometer. Both talk to their chip through a Port,
// which is the register-addressed view of one device on the bus. I2CPort
// implements it on top of periph.io; package embdport implements it on top
// of github.com/kidoman/embd.
//
// Neither driver serializes bus access with the other. When both share a
// bus with other users, the caller must serialize each driver call.
//
// # Datasheet
//
// https://www.st.com/resource/en/datasheet/lsm303dlh.pdf
package lsm303
