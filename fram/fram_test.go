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
	"testing"

	"github.com/stretchr/testify/require"
)

// testBus models the chip behind the Bus interface: a memory array,
// the write enable latch and the identity response. Every tx frame is
// captured for protocol assertions, and individual opcodes can be
// made to fail.
type testBus struct {
	mem    []byte
	id     [4]byte
	wel    bool
	ready  bool
	frames [][]byte
	fail   map[byte]bool
}

func newTestBus() *testBus {
	return &testBus{
		mem:   make([]byte, chipSize),
		id:    chipID,
		ready: true,
		fail:  make(map[byte]bool),
	}
}

func (b *testBus) Ready() bool {
	return b.ready
}

func (b *testBus) Transfer(tx, rx []byte) error {
	f := make([]byte, len(tx))
	copy(f, tx)
	b.frames = append(b.frames, f)
	if b.fail[tx[0]] {
		return fmt.Errorf("transfer failed")
	}
	switch tx[0] {
	case cmdReadID:
		copy(rx[1:], b.id[:])
	case cmdWriteEnable:
		b.wel = true
	case cmdWrite:
		if !b.wel {
			return fmt.Errorf("write enable latch not set")
		}
		b.wel = false
		copy(b.mem[frameAddr(tx):], tx[hdrSize:])
	case cmdRead:
		copy(rx[hdrSize:], b.mem[frameAddr(tx):])
	}
	return nil
}

// frameAddr decodes the 3 byte big-endian address of a frame.
func frameAddr(tx []byte) uint32 {
	return uint32(tx[1])<<16 | uint32(tx[2])<<8 | uint32(tx[3])
}

func openTestDevice(t *testing.T, b *testBus) *Device {
	d, err := Open(b, nil)
	require.NoError(t, err)
	t.Cleanup(d.Close)
	return d
}

func TestOpenNotReady(t *testing.T) {
	b := newTestBus()
	b.ready = false
	d, err := Open(b, nil)
	require.ErrorIs(t, err, ErrNotReady)
	require.Nil(t, d)
}

func TestOpenSingleton(t *testing.T) {
	b := newTestBus()
	d := openTestDevice(t, b)
	_, err := Open(b, nil)
	require.Error(t, err)
	d.Close()
	d2, err := Open(b, nil)
	require.NoError(t, err)
	d2.Close()
}

func TestValidateID(t *testing.T) {
	b := newTestBus()
	d := openTestDevice(t, b)
	require.NoError(t, d.ValidateID())
	// One frame: the opcode plus 4 clocked-out filler bytes.
	require.Len(t, b.frames, 1)
	require.Equal(t, []byte{cmdReadID, 0, 0, 0, 0}, b.frames[0])
}

// Any single differing identity byte fails validation.
func TestValidateIDMismatch(t *testing.T) {
	for pos := 0; pos < 4; pos++ {
		t.Run(fmt.Sprintf("byte%d", pos), func(t *testing.T) {
			b := newTestBus()
			b.id[pos] ^= 0x01
			d := openTestDevice(t, b)
			require.ErrorIs(t, d.ValidateID(), ErrIO)
		})
	}
}

func TestValidateIDTransportError(t *testing.T) {
	b := newTestBus()
	b.fail[cmdReadID] = true
	d := openTestDevice(t, b)
	require.ErrorIs(t, d.ValidateID(), ErrIO)
}

func TestRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		addr uint32
		data []byte
	}{
		{"start", 0, []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{"single byte", 17, []byte{0x42}},
		{"mid", 0x012345, []byte("persisted page contents")},
		{"end", chipSize - 8, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBus()
			d := openTestDevice(t, b)
			require.NoError(t, d.WriteBytes(tc.addr, tc.data))
			buf := make([]byte, len(tc.data))
			require.NoError(t, d.ReadBytes(tc.addr, buf))
			require.Equal(t, tc.data, buf)
		})
	}
}

func TestWriteFrames(t *testing.T) {
	b := newTestBus()
	d := openTestDevice(t, b)
	data := []byte{0xAA, 0xBB, 0xCC}
	require.NoError(t, d.WriteBytes(0x0A0B0C, data))
	// Write enable first, alone in its own frame, then the write
	// carrying the big-endian address and the payload.
	require.Len(t, b.frames, 2)
	require.Equal(t, []byte{cmdWriteEnable}, b.frames[0])
	require.Equal(t, []byte{cmdWrite, 0x0A, 0x0B, 0x0C, 0xAA, 0xBB, 0xCC}, b.frames[1])
}

func TestWriteEnableFailure(t *testing.T) {
	b := newTestBus()
	b.mem[5] = 0x77
	b.fail[cmdWriteEnable] = true
	d := openTestDevice(t, b)
	require.ErrorIs(t, d.WriteBytes(5, []byte{0x11}), ErrIO)
	// The write itself was never attempted and memory is untouched.
	require.Len(t, b.frames, 1)
	require.Equal(t, byte(0x77), b.mem[5])
}

func TestWriteFailure(t *testing.T) {
	b := newTestBus()
	b.fail[cmdWrite] = true
	d := openTestDevice(t, b)
	require.ErrorIs(t, d.WriteBytes(0, []byte{0x11}), ErrIO)
}

func TestReadFrame(t *testing.T) {
	b := newTestBus()
	d := openTestDevice(t, b)
	buf := make([]byte, 5)
	require.NoError(t, d.ReadBytes(0x000102, buf))
	require.Len(t, b.frames, 1)
	// Header plus one filler byte clocked out per byte read.
	require.Len(t, b.frames[0], hdrSize+5)
	require.Equal(t, []byte{cmdRead, 0x00, 0x01, 0x02}, b.frames[0][:hdrSize])
}

func TestReadFailure(t *testing.T) {
	b := newTestBus()
	b.fail[cmdRead] = true
	d := openTestDevice(t, b)
	require.ErrorIs(t, d.ReadBytes(0, make([]byte, 4)), ErrIO)
}

func TestSize(t *testing.T) {
	b := newTestBus()
	d := openTestDevice(t, b)
	require.Equal(t, 524288, d.Size())
}
