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

/*

Package spidev implements the fram.Bus transceive primitive on top of
the Linux spidev character devices (/dev/spidevB.C). The chip select
is the one encoded in the device node; the clock rate and word size
come from the fram transfer configuration.

*/
package spidev

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/golang/glog"
	"golang.org/x/sys/unix"

	"github.com/persistnv/nvprim/fram"
)

// spidev ioctl requests, from the kernel spidev ABI ('k' magic).
const (
	iocWrMode        = 0x40016B01 // SPI_IOC_WR_MODE
	iocWrBitsPerWord = 0x40016B03 // SPI_IOC_WR_BITS_PER_WORD
	iocWrMaxSpeedHz  = 0x40046B04 // SPI_IOC_WR_MAX_SPEED_HZ
)

// transfer is the kernel spi_ioc_transfer layout, 32 bytes.
type transfer struct {
	txBuf       uint64
	rxBuf       uint64
	len         uint32
	speedHz     uint32
	delayUsecs  uint16
	bitsPerWord uint8
	csChange    uint8
	txNbits     uint8
	rxNbits     uint8
	wordDelay   uint8
	pad         uint8
}

// iocMessage builds the SPI_IOC_MESSAGE(n) request.
func iocMessage(n int) uintptr {
	return uintptr(0x40006B00 | (n*int(unsafe.Sizeof(transfer{})))<<16)
}

// Spidev is a fram.Bus backed by one spidev device node.
type Spidev struct {
	fd    int
	path  string
	speed uint32
	bits  uint8
	ready bool
}

// Open opens the device node and applies the transfer configuration.
func Open(path string, cfg *fram.Config) (*Spidev, error) {
	if cfg == nil {
		cfg = fram.DefaultConfig
	}
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	s := &Spidev{fd: fd, path: path, speed: cfg.Freq(), bits: uint8(cfg.Bits())}
	mode := uint8(0) // SPI mode 0
	if err := s.ioctl(iocWrMode, unsafe.Pointer(&mode)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("%s: set mode: %v", path, err)
	}
	if err := s.ioctl(iocWrBitsPerWord, unsafe.Pointer(&s.bits)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("%s: set word size: %v", path, err)
	}
	if err := s.ioctl(iocWrMaxSpeedHz, unsafe.Pointer(&s.speed)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("%s: set speed: %v", path, err)
	}
	s.ready = true
	glog.V(1).Infof("%s: %d Hz, %d bit words", path, s.speed, s.bits)
	return s, nil
}

// Ready reports whether the device node was bound and configured.
func (s *Spidev) Ready() bool {
	return s.ready
}

// Close releases the device node. The bus is no longer ready.
func (s *Spidev) Close() {
	if s.ready {
		s.ready = false
		unix.Close(s.fd)
	}
}

// Transfer performs one full-duplex transaction under a single chip
// select assertion. rx may be nil for a transmit-only transfer.
func (s *Spidev) Transfer(tx, rx []byte) error {
	if !s.ready {
		return fmt.Errorf("%s: not ready", s.path)
	}
	if rx != nil && len(rx) != len(tx) {
		return fmt.Errorf("%s: rx length %d != tx length %d", s.path, len(rx), len(tx))
	}
	tr := transfer{
		txBuf:       uint64(uintptr(unsafe.Pointer(&tx[0]))),
		len:         uint32(len(tx)),
		speedHz:     s.speed,
		bitsPerWord: s.bits,
	}
	if rx != nil {
		tr.rxBuf = uint64(uintptr(unsafe.Pointer(&rx[0])))
	}
	if glog.V(2) {
		glog.Infof("%s: TX % x", s.path, tx)
	}
	err := s.ioctl(iocMessage(1), unsafe.Pointer(&tr))
	// The buffers are referenced only through the raw addresses in tr;
	// keep them live until the kernel is done with them.
	runtime.KeepAlive(tx)
	runtime.KeepAlive(rx)
	if err != nil {
		return fmt.Errorf("%s: transfer: %v", s.path, err)
	}
	if rx != nil && glog.V(2) {
		glog.Infof("%s: RX % x", s.path, rx)
	}
	return nil
}

func (s *Spidev) ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(s.fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}
