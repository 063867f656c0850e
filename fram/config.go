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

// Config holds the fixed, chip specific transfer configuration bound
// to a device at open time. A configuration is initialised through
// config methods on this structure e.g:
//
//	c := fram.NewConfig().Frequency(20000000).ChipSelect(9)
//	dev, err := fram.Open(bus, c)
type Config struct {
	freq     uint32
	wordBits int
	cs       int
}

// The default config, matching the MB85RS4MT wiring this package was
// brought up on: 40 MHz clock, 8 bit words, chip select 10.
//
// Before the device is opened, this may be modified to overwrite the
// default configuration e.g DefaultConfig.Frequency(10000000)
var DefaultConfig *Config

func init() {
	DefaultConfig = NewConfig()
}

// NewConfig creates a Config with the chip defaults.
func NewConfig() *Config {
	c := new(Config)
	c.freq = 40000000
	c.wordBits = 8
	c.cs = 10
	return c
}

// Frequency sets the SPI clock rate in Hz.
func (c *Config) Frequency(hz uint32) *Config {
	c.freq = hz
	return c
}

// WordBits sets the SPI word size in bits.
func (c *Config) WordBits(n int) *Config {
	c.wordBits = n
	return c
}

// ChipSelect sets the chip select line the device is wired to.
func (c *Config) ChipSelect(cs int) *Config {
	c.cs = cs
	return c
}

// Freq returns the configured SPI clock rate in Hz.
func (c *Config) Freq() uint32 {
	return c.freq
}

// Bits returns the configured SPI word size in bits.
func (c *Config) Bits() int {
	return c.wordBits
}

// CS returns the configured chip select line.
func (c *Config) CS() int {
	return c.cs
}
