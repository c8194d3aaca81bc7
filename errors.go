// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3dh

import "fmt"

// BusError is returned when the underlying bus transaction failed.
type BusError struct {
	Op  string // "read", "read16", "readBlock" or "write"
	Reg byte
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("lis3dh: %s register %#02x: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// IdentityMismatchError is returned by SelfCheck when the device does not
// identify as the expected chip. The bus itself worked.
type IdentityMismatchError struct {
	Want byte
	Got  byte
}

func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("lis3dh: wrong device connected, WHO_AM_I is %#02x, expected %#02x", e.Got, e.Want)
}
