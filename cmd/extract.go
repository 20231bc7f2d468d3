// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mathyslv/pnger-go/pngsample"
	"github.com/mathyslv/pnger-go/stego"
)

var (
	extractInput   string
	extractOutput  string
	extractRaw     bool
	extractVerbose bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Recover a payload previously embedded into a PNG image",
	Long: `Extract reads a PNG image, locates the framed header pnger wrote during
embed, and recovers the concealed payload to --output (or stdout with
--raw).`,
	RunE: runExtract,
}

var extractFlags *lsbFlags

func init() {
	RootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractInput, "input", "i", "", "Input PNG file (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output payload file")
	extractCmd.Flags().BoolVar(&extractRaw, "raw", false, "Write the recovered payload to stdout instead of --output")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Enable verbose output")
	_ = extractCmd.MarkFlagRequired("input")

	extractFlags = addLSBFlags(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if (extractOutput != "") == extractRaw {
		return fmt.Errorf("%w: exactly one of --output or --raw is required", stego.ErrConfig)
	}

	cfg, err := extractFlags.buildConfig()
	if err != nil {
		return err
	}

	inFile, err := os.Open(extractInput)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer inFile.Close()

	carrier, err := pngsample.Decode(inFile)
	if err != nil {
		return err
	}

	result, err := stego.Extract(carrier.Samples(), cfg)
	if err != nil {
		return fmt.Errorf("extracting: %w", err)
	}

	if extractRaw {
		if _, err := cmd.OutOrStdout().Write(result.Payload); err != nil {
			return fmt.Errorf("writing payload: %w", err)
		}
	} else {
		if err := os.WriteFile(extractOutput, result.Payload, 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if extractVerbose {
		fmt.Fprintf(cmd.OutOrStderr(), "payload recovered......: %s\n", humanize.Bytes(uint64(len(result.Payload))))
		fmt.Fprintf(cmd.OutOrStderr(), "pattern................: %v\n", result.Pattern)
	}
	return nil
}
