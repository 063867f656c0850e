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

// framtool pokes at an MB85RS4MT FRAM chip from the command line,
// over a Linux spidev device node.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/persistnv/nvprim/fram"
	"github.com/persistnv/nvprim/fram/spidev"
)

var (
	// Set by the persistent flags.
	devPath string
	speedHz uint32

	bus *spidev.Spidev
	dev *fram.Device
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "framtool",
	Short: "Inspect and program an SPI attached FRAM chip",
	Long: `framtool drives an MB85RS4MT FRAM chip through a Linux spidev
device. Addresses and lengths are given in decimal, or in hex with a
0x prefix.`,
	SilenceUsage:      true,
	PersistentPreRunE: openDevice,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeDevice()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&devPath, "dev", "/dev/spidev2.0", "spidev device node")
	rootCmd.PersistentFlags().Uint32Var(&speedHz, "speed", fram.DefaultConfig.Freq(), "SPI clock rate in Hz")

	rootCmd.AddCommand(idCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(dumpCmd)
}

func openDevice(cmd *cobra.Command, args []string) error {
	var err error
	bus, err = spidev.Open(devPath, fram.NewConfig().Frequency(speedHz))
	if err != nil {
		return err
	}
	dev, err = fram.Open(bus, fram.NewConfig().Frequency(speedHz))
	if err != nil {
		bus.Close()
		return err
	}
	return nil
}

func closeDevice() {
	if dev != nil {
		dev.Close()
	}
	if bus != nil {
		bus.Close()
	}
}

var idCmd = &cobra.Command{
	Use:   "id",
	Short: "Validate the chip identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := dev.ValidateID(); err != nil {
			return err
		}
		fmt.Println("identity ok")
		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read <addr> <len>",
	Short: "Read bytes and print them as a hex dump",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseNum(args[0])
		if err != nil {
			return err
		}
		n, err := parseNum(args[1])
		if err != nil {
			return err
		}
		buf := make([]byte, n)
		if err := dev.ReadBytes(uint32(addr), buf); err != nil {
			return err
		}
		fmt.Print(hex.Dump(buf))
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:   "write <addr> <hexbytes>",
	Short: "Write bytes given as a hex string",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseNum(args[0])
		if err != nil {
			return err
		}
		data, err := hex.DecodeString(args[1])
		if err != nil {
			return err
		}
		if err := dev.WriteBytes(uint32(addr), data); err != nil {
			return err
		}
		fmt.Printf("wrote %d bytes at 0x%06x\n", len(data), addr)
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Image the whole chip to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf := make([]byte, dev.Size())
		if err := dev.ReadBytes(0, buf); err != nil {
			return err
		}
		if err := os.WriteFile(args[0], buf, 0644); err != nil {
			return err
		}
		fmt.Printf("dumped %d bytes to %s\n", len(buf), args[0])
		return nil
	},
}

func parseNum(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 24)
	if err != nil {
		return 0, fmt.Errorf("%q: not a valid address or length", s)
	}
	return v, nil
}
