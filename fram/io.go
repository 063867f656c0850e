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

import (
	"fmt"
	"io"
)

// IO creates a type that can use a Reader/Writer interface to the
// chip's byte space. Each call is carried out as one driver
// transaction.
func (d *Device) IO() *DeviceIO {
	return &DeviceIO{dev: d, max: d.Size()}
}

// DeviceIO implements various io interfaces, using an underlying
// device. Transfers are clamped at the chip capacity; a short read or
// write returns io.EOF.
type DeviceIO struct {
	dev     *Device
	current int
	max     int
}

// Write copies the byte slice into the chip at the current offset
func (r *DeviceIO) Write(p []byte) (int, error) {
	n := len(p)
	if r.current+n > r.max {
		n = r.max - r.current
		if n < 0 {
			n = 0
		}
	}
	if n > 0 {
		if err := r.dev.WriteBytes(uint32(r.current), p[:n]); err != nil {
			return 0, err
		}
		r.current += n
	}
	if n != len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt copies the byte slice into the chip at the offset specified
func (r *DeviceIO) WriteAt(p []byte, offs int64) (int, error) {
	if int(offs) >= r.max {
		return 0, io.EOF
	}
	r.current = int(offs)
	return r.Write(p)
}

func (r *DeviceIO) WriteByte(b byte) error {
	if r.current >= r.max {
		return io.EOF
	}
	if err := r.dev.WriteBytes(uint32(r.current), []byte{b}); err != nil {
		return err
	}
	r.current++
	return nil
}

// Seek moves the offset
func (r *DeviceIO) Seek(offs int64, whence int) (int64, error) {
	n := int(offs)
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		n += r.current
	case io.SeekEnd:
		n = r.max - n
	default:
		return 0, fmt.Errorf("unknown whence")
	}
	if n < 0 {
		return 0, fmt.Errorf("negative offset")
	}
	r.current = n
	return int64(r.current), nil
}

func (r *DeviceIO) ReadByte() (byte, error) {
	if r.current >= r.max {
		return 0, io.EOF
	}
	var b [1]byte
	if err := r.dev.ReadBytes(uint32(r.current), b[:]); err != nil {
		return 0, err
	}
	r.current++
	return b[0], nil
}

func (r *DeviceIO) Read(p []byte) (int, error) {
	n := len(p)
	if r.current+n > r.max {
		n = r.max - r.current
		if n < 0 {
			n = 0
		}
	}
	if n > 0 {
		if err := r.dev.ReadBytes(uint32(r.current), p[:n]); err != nil {
			return 0, err
		}
		r.current += n
	}
	if n != len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (r *DeviceIO) ReadAt(p []byte, offs int64) (int, error) {
	if int(offs) >= r.max {
		return 0, io.EOF
	}
	r.current = int(offs)
	return r.Read(p)
}
