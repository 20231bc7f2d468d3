// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

// Package cmd implements the pnger command-line interface on top of the
// stego and pngsample packages.
package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
// main.run() calls RootCmd.Execute() directly and main exits non-zero on
// error, so child commands only need to AddCommand(...) onto RootCmd.
var RootCmd = &cobra.Command{
	Use:   "pnger",
	Short: "Conceal and recover payloads inside PNG images using LSB steganography",
	Long: `pnger embeds an arbitrary payload into the least (or otherwise chosen)
significant bits of a PNG image's sample bytes, and recovers it again from
the header it writes alongside the payload.`,
}
