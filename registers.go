// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3dh

import "fmt"

const (
	WhoAmI     = 0x0F // Device identification, 0x33 on a LIS3DH
	CtrlReg1   = 0x20 // Data rate selection and axis enable
	CtrlReg4   = 0x23 // Full scale selection and high resolution
	StatusReg2 = 0x27 // Data available and overrun flags

	// Output registers, two's complement, low byte first.
	OutXL = 0x28
	OutXH = 0x29
	OutYL = 0x2A
	OutYH = 0x2B
	OutZL = 0x2C
	OutZH = 0x2D

	// ExpectedWhoAmI is the identity byte of the LIS3DH family.
	ExpectedWhoAmI = 0x33
)

const (
	// SPI command byte flags.
	readBit          = 0x80
	autoIncrementBit = 0x40

	axesEnable   = 0x07 // Xen | Yen | Zen
	highResBit   = 1 << 3
	overrunBit   = 1 << 7
	dataReadyBit = 1 << 3

	// Output registers hold 12 significant bits, top aligned.
	maxHighResValue = ((1 << 15) - 1) &^ 0xF
)

// DataRate is the 4-bit output data rate selector written to the high nibble
// of CtrlReg1.
//
// Codes are not validated by the driver; the device decides what an unknown
// code means.
type DataRate byte

const (
	PowerDown          DataRate = 0x0
	Rate1Hz            DataRate = 0x1
	Rate10Hz           DataRate = 0x2
	Rate25Hz           DataRate = 0x3
	Rate50Hz           DataRate = 0x4
	Rate100Hz          DataRate = 0x5
	Rate200Hz          DataRate = 0x6
	Rate400Hz          DataRate = 0x7
	RateLowPower1600Hz DataRate = 0x8
	Rate1344Hz         DataRate = 0x9 // 5.376kHz in low power mode
)

func (r DataRate) String() string {
	switch r {
	case PowerDown:
		return "PowerDown"
	case Rate1Hz:
		return "1Hz"
	case Rate10Hz:
		return "10Hz"
	case Rate25Hz:
		return "25Hz"
	case Rate50Hz:
		return "50Hz"
	case Rate100Hz:
		return "100Hz"
	case Rate200Hz:
		return "200Hz"
	case Rate400Hz:
		return "400Hz"
	case RateLowPower1600Hz:
		return "1.6kHz(LP)"
	case Rate1344Hz:
		return "1.344kHz"
	default:
		return fmt.Sprintf("DataRate(%#x)", byte(r))
	}
}

// Range is the full scale selection, the FS field of CtrlReg4.
type Range byte

const (
	R2G  Range = 0x00 // ±2g
	R4G  Range = 0x01 // ±4g
	R8G  Range = 0x02 // ±8g
	R16G Range = 0x03 // ±16g
)

// G returns the full scale magnitude in g.
func (r Range) G() float64 {
	return float64(int(2) << (r & 0x3))
}

func (r Range) String() string {
	return fmt.Sprintf("±%dg", int(r.G()))
}
