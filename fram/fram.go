// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fram

import "fmt"

// Command opcodes.
const (
	cmdReadID      = 0x9F // Read manufacturer/device ID, 4 response bytes
	cmdWriteEnable = 0x06 // Set the write enable latch
	cmdRead        = 0x03 // Read memory, 3 address bytes
	cmdWrite       = 0x02 // Write memory, 3 address bytes
)

// hdrSize is the opcode plus the 3 byte big-endian address carried by
// the read and write commands. The address is always 3 bytes, most
// significant first, regardless of chip capacity; the other commands
// carry no address.
const hdrSize = 4

// chipSize is the capacity of the MB85RS4MT in bytes (4 Mbit).
const chipSize = 524288

// The expected response to the read-ID command.
// Byte 2 is the first product ID byte; the datasheet specifies 0x49
// for it?? The parts answer 0x48, so that is what is matched here.
var chipID = [4]byte{0x04, 0x7F, 0x48, 0x03}

// Bus is a blocking SPI transceive primitive bound to the chip's bus
// endpoint and chip select. Transfer clocks tx out and fills rx with
// the bytes clocked in during the same transaction; rx may be nil for
// a transmit-only transfer, otherwise len(rx) must equal len(tx).
// Transfer blocks until the transaction completes; there is no
// cancellation or timeout at this layer.
type Bus interface {
	Transfer(tx, rx []byte) error
	Ready() bool
}

// Device is an open handle on the chip. Calls are independent and the
// device keeps no state between them; it holds no locks, so callers
// must ensure at most one in-flight transaction per device.
type Device struct {
	bus Bus
	cfg *Config
}

// Single instance of the device.
var device *Device

// Open binds the bus and transfer configuration into a device handle.
// A nil config selects DefaultConfig. Open fails with ErrNotReady if
// the bus device is not ready; no handle is usable after that.
func Open(bus Bus, cfg *Config) (*Device, error) {
	if device != nil {
		return nil, fmt.Errorf("Device already open; must close it first")
	}
	if cfg == nil {
		cfg = DefaultConfig
	}
	if !bus.Ready() {
		return nil, ErrNotReady
	}
	d := &Device{bus: bus, cfg: cfg}
	device = d
	return d, nil
}

// Close releases the device so it may be opened again.
func (d *Device) Close() {
	if device == d {
		device = nil
	}
}

// Size returns the chip capacity in bytes. The driver does not bounds
// check addresses against it; that is the caller's responsibility.
func (d *Device) Size() int {
	return chipSize
}

// Config returns the transfer configuration the device was bound with.
func (d *Device) Config() *Config {
	return d.cfg
}

// ValidateID reads the manufacturer/device ID and checks it against
// the documented identity of the chip. Any transport failure or any
// differing identity byte yields ErrIO.
func (d *Device) ValidateID() error {
	tx := make([]byte, 1+len(chipID))
	rx := make([]byte, len(tx))
	tx[0] = cmdReadID
	if err := d.bus.Transfer(tx, rx); err != nil {
		return ErrIO
	}
	for i, want := range chipID {
		if rx[1+i] != want {
			return ErrIO
		}
	}
	return nil
}

// ReadBytes fills buf with len(buf) bytes starting at addr, in one
// read transaction.
func (d *Device) ReadBytes(addr uint32, buf []byte) error {
	tx := make([]byte, hdrSize+len(buf))
	rx := make([]byte, len(tx))
	putHeader(tx, cmdRead, addr)
	if err := d.bus.Transfer(tx, rx); err != nil {
		return ErrIO
	}
	copy(buf, rx[hdrSize:])
	return nil
}

// WriteBytes writes data starting at addr. The write enable latch is
// set first in its own transaction; if that fails the write is
// aborted and nothing is transferred. There is no verification
// read-back and no retry.
func (d *Device) WriteBytes(addr uint32, data []byte) error {
	if err := d.bus.Transfer([]byte{cmdWriteEnable}, nil); err != nil {
		return ErrIO
	}
	tx := make([]byte, hdrSize+len(data))
	putHeader(tx, cmdWrite, addr)
	copy(tx[hdrSize:], data)
	if err := d.bus.Transfer(tx, nil); err != nil {
		return ErrIO
	}
	return nil
}

// putHeader fills in the opcode and 3 byte big-endian address.
func putHeader(tx []byte, cmd byte, addr uint32) {
	tx[0] = cmd
	tx[1] = byte(addr >> 16)
	tx[2] = byte(addr >> 8)
	tx[3] = byte(addr)
}
