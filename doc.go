// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lis3dh controls an ST LIS3DH 3-axis accelerometer over SPI.
//
// The driver is a thin layer over register transactions. Every operation
// returns its error to the caller; nothing is retried and nothing aborts.
//
// # Axis tearing
//
// Sample reads X, Y and Z in three separate transactions. Unless the device
// latches its output the registers can be updated between two reads, mixing
// axes of consecutive samples. SampleBlock reads all three axes in one
// transaction and does not have this problem.
//
// # Concurrency
//
// Dev does not lock the bus. Do not call into the same Dev, or share its
// bus, from multiple goroutines without external synchronization. While
// SenseContinuous is running the background loop owns the bus; call Halt
// before issuing other operations.
//
// # Datasheet
//
// https://www.st.com/resource/en/datasheet/lis3dh.pdf
package lis3dh
