// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3dh

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SpiMode is the clock polarity and phase used by the device (CPOL=1, CPHA=1).
var (
	SpiMode = spi.Mode3
	SpiBits = 8
)

const minSampleInterval = time.Millisecond

// DebugF is the register trace function type.
type DebugF func(string, ...interface{})

// DefaultOpts is the recommended configuration: ±2g, high resolution.
var DefaultOpts = Opts{
	Range:          R2G,
	HighRes:        true,
	ExpectedWhoAmI: ExpectedWhoAmI,
	DataRate:       Rate100Hz,
	Frequency:      physic.MegaHertz,
}

// Opts holds the configuration of the device.
type Opts struct {
	Range          Range            // Full scale range, also the conversion scale.
	HighRes        bool             // Enable 12 bit high resolution output.
	ExpectedWhoAmI byte             // Identity byte verified by SelfCheck.
	DataRate       DataRate         // Output data rate written when InitOnStart is set.
	InitOnStart    bool             // Run SelfCheck and Init in New.
	BlockRead      bool             // SenseContinuous reads all axes in one transaction.
	Frequency      physic.Frequency // SPI clock used by New.
}

// Accel3 is one acceleration sample, in g.
type Accel3 struct {
	X float64
	Y float64
	Z float64
}

func (a Accel3) String() string {
	return fmt.Sprintf("X:%.4fg Y:%.4fg Z:%.4fg", a.X, a.Y, a.Z)
}

// Status is the decoded content of StatusReg2.
type Status struct {
	Overrun       bool // New data overwrote unread data on at least one axis.
	DataAvailable bool // A new sample is available on all axes.
}

// Dev is a driver for the LIS3DH accelerometer.
type Dev struct {
	c     conn.Conn
	opts  Opts
	debug DebugF

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// New connects to the device on the SPI port p and returns a Dev.
//
// When o.InitOnStart is set the device identity is verified and Init is
// called with o.DataRate.
func New(p spi.Port, o *Opts) (*Dev, error) {
	if o == nil {
		o = &DefaultOpts
	}
	f := o.Frequency
	if f == 0 {
		f = DefaultOpts.Frequency
	}
	c, err := p.Connect(f, SpiMode, SpiBits)
	if err != nil {
		return nil, fmt.Errorf("lis3dh: %w", err)
	}
	return NewConn(c, o)
}

// NewConn returns a Dev using an already connected full duplex conn.
//
// An out of range o.Range is rejected before any transaction.
func NewConn(c conn.Conn, o *Opts) (*Dev, error) {
	if o == nil {
		o = &DefaultOpts
	}
	switch o.Range {
	case R2G, R4G, R8G, R16G:
	default:
		return nil, fmt.Errorf("lis3dh: invalid range: %d. Valid values are R2G, R4G, R8G, R16G", byte(o.Range))
	}
	d := &Dev{c: c, opts: *o, debug: noop}
	if o.InitOnStart {
		if err := d.SelfCheck(); err != nil {
			return nil, err
		}
		if err := d.Init(o.DataRate); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("LIS3DH{Range:%s HighRes:%t}", d.opts.Range, d.opts.HighRes)
}

// EnableDebug sets the function used to trace register accesses.
func (d *Dev) EnableDebug(f DebugF) {
	if f == nil {
		f = noop
	}
	d.debug = f
}

// Init enables the three axes at the given output data rate, then sets the
// full scale range and resolution mode.
func (d *Dev) Init(rate DataRate) error {
	if err := d.writeByte(CtrlReg1, byte(rate)<<4|axesEnable); err != nil {
		return err
	}
	var hr byte
	if d.opts.HighRes {
		hr = highResBit
	}
	return d.writeByte(CtrlReg4, byte(d.opts.Range)<<4|hr)
}

// SelfCheck verifies the device identifies as a LIS3DH.
//
// It returns an *IdentityMismatchError when the bus works but another chip
// answered, and a *BusError when the bus failed.
func (d *Dev) SelfCheck() error {
	id, err := d.readByte(WhoAmI)
	if err != nil {
		return err
	}
	if id != d.opts.ExpectedWhoAmI {
		return &IdentityMismatchError{Want: d.opts.ExpectedWhoAmI, Got: id}
	}
	return nil
}

// ReadStatus returns the data available and overrun flags.
func (d *Dev) ReadStatus() (Status, error) {
	s, err := d.readByte(StatusReg2)
	if err != nil {
		return Status{}, err
	}
	return Status{
		Overrun:       s&overrunBit != 0,
		DataAvailable: s&dataReadyBit != 0,
	}, nil
}

// Sample reads the three axes, X then Y then Z, in one transaction each.
//
// See the package documentation about axis tearing.
func (d *Dev) Sample() (Accel3, error) {
	var raw [3]int16
	for i, reg := range [...]byte{OutXL, OutYL, OutZL} {
		v, err := d.readInt16(reg)
		if err != nil {
			return Accel3{}, err
		}
		raw[i] = v
	}
	return d.convert(raw), nil
}

// SampleBlock reads the three axes in a single auto-increment transaction.
func (d *Dev) SampleBlock() (Accel3, error) {
	var (
		w = [7]byte{OutXL | readBit | autoIncrementBit}
		r [7]byte
	)
	if err := d.tx("readBlock", OutXL, w[:], r[:]); err != nil {
		return Accel3{}, err
	}
	d.debug("lis3dh: block read %#02x: % x", OutXL, r[1:])
	return d.convert([3]int16{
		int16(uint16(r[1]) | uint16(r[2])<<8),
		int16(uint16(r[3]) | uint16(r[4])<<8),
		int16(uint16(r[5]) | uint16(r[6])<<8),
	}), nil
}

// SenseContinuous samples the device every interval and sends the result to
// the returned channel. Samples that fail to read are dropped. Call Halt to
// stop; the channel is then closed.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan Accel3, error) {
	if interval < minSampleInterval {
		return nil, fmt.Errorf("lis3dh: sample interval %s is below %s", interval, minSampleInterval)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, errors.New("lis3dh: SenseContinuous already running")
	}
	d.stop = make(chan struct{})
	d.done = make(chan struct{})
	ch := make(chan Accel3, 16)
	go d.sense(interval, d.stop, d.done, ch)
	return ch, nil
}

func (d *Dev) sense(interval time.Duration, stop <-chan struct{}, done chan<- struct{}, ch chan<- Accel3) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(done)
	defer close(ch)
	read := d.Sample
	if d.opts.BlockRead {
		read = d.SampleBlock
	}
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			a, err := read()
			if err != nil {
				d.debug("lis3dh: dropped sample: %v", err)
				continue
			}
			select {
			case ch <- a:
			case <-stop:
				return
			}
		}
	}
}

// Halt stops a running SenseContinuous and waits for it to return.
// Implements conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	stop, done := d.stop, d.done
	d.stop, d.done = nil, nil
	d.mu.Unlock()
	if stop != nil {
		close(stop)
		<-done
	}
	return nil
}

func (d *Dev) convert(raw [3]int16) Accel3 {
	s := d.opts.Range.G()
	return Accel3{
		X: accelToFloat(raw[0], s),
		Y: accelToFloat(raw[1], s),
		Z: accelToFloat(raw[2], s),
	}
}

// accelToFloat converts a raw output register value to g. The division is
// done in float64 and the low bits are not masked. Results can differ from a
// 32-bit float computation in the last digits.
func accelToFloat(raw int16, scale float64) float64 {
	return float64(raw) / maxHighResValue * scale
}

// readByte reads one register.
func (d *Dev) readByte(reg byte) (byte, error) {
	// The first byte is the address with the read bit set, the second byte
	// is a don't care clocking out the register content.
	var (
		w = [...]byte{reg | readBit, 0x00}
		r [2]byte
	)
	if err := d.tx("read", reg, w[:], r[:]); err != nil {
		return 0, err
	}
	d.debug("lis3dh: read %#02x = %#02x", reg, r[1])
	return r[1], nil
}

// readInt16 reads a little endian register pair starting at reg.
func (d *Dev) readInt16(reg byte) (int16, error) {
	var (
		w = [...]byte{reg | readBit | autoIncrementBit, 0x00, 0x00}
		r [3]byte
	)
	if err := d.tx("read16", reg, w[:], r[:]); err != nil {
		return 0, err
	}
	v := int16(uint16(r[1]) | uint16(r[2])<<8)
	d.debug("lis3dh: read16 %#02x = %d", reg, v)
	return v, nil
}

// writeByte writes one register. The received bytes are ignored.
func (d *Dev) writeByte(reg, value byte) error {
	d.debug("lis3dh: write %#02x = %#02x", reg, value)
	var (
		w = [...]byte{reg, value}
		r [2]byte
	)
	return d.tx("write", reg, w[:], r[:])
}

func (d *Dev) tx(op string, reg byte, w, r []byte) error {
	if err := d.c.Tx(w, r); err != nil {
		return &BusError{Op: op, Reg: reg, Err: err}
	}
	return nil
}

func noop(string, ...interface{}) {}

var _ conn.Resource = &Dev{}
