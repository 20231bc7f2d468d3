// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mathyslv/pnger-go/pngsample"
	"github.com/mathyslv/pnger-go/stego"
)

var (
	embedInput   string
	embedPayload string
	embedOutput  string
	embedRaw     bool
	embedVerbose bool
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Embed a payload file into a PNG image",
	Long: `Embed reads a PNG image and a payload file, conceals the payload in the
image's sample bytes, and writes a new PNG to --output (or stdout with
--raw).`,
	RunE: runEmbed,
}

var embedFlags *lsbFlags

func init() {
	RootCmd.AddCommand(embedCmd)

	embedCmd.Flags().StringVarP(&embedInput, "input", "i", "", "Input PNG file (required)")
	embedCmd.Flags().StringVarP(&embedPayload, "payload", "p", "", "Payload file to embed (required)")
	embedCmd.Flags().StringVarP(&embedOutput, "output", "o", "", "Output PNG file")
	embedCmd.Flags().BoolVar(&embedRaw, "raw", false, "Write the resulting PNG to stdout instead of --output")
	embedCmd.Flags().BoolVarP(&embedVerbose, "verbose", "v", false, "Enable verbose output")
	_ = embedCmd.MarkFlagRequired("input")
	_ = embedCmd.MarkFlagRequired("payload")

	embedFlags = addLSBFlags(embedCmd)
}

func runEmbed(cmd *cobra.Command, args []string) error {
	if (embedOutput != "") == embedRaw {
		return fmt.Errorf("%w: exactly one of --output or --raw is required", stego.ErrConfig)
	}

	cfg, err := embedFlags.buildConfig()
	if err != nil {
		return err
	}

	inFile, err := os.Open(embedInput)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer inFile.Close()

	carrier, err := pngsample.Decode(inFile)
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(embedPayload)
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	result, err := stego.Embed(carrier.Samples(), payload, cfg)
	if err != nil {
		return fmt.Errorf("embedding: %w", err)
	}

	out := cmd.OutOrStdout()
	var dest io.Writer = out
	if !embedRaw {
		outFile, err := os.Create(embedOutput)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer outFile.Close()
		dest = outFile
	}

	if err := carrier.Encode(dest); err != nil {
		return err
	}

	if embedVerbose {
		fmt.Fprintf(cmd.OutOrStderr(), "payload embedded.......: %s\n", humanize.Bytes(uint64(result.PayloadSize)))
		fmt.Fprintf(cmd.OutOrStderr(), "header size............: %d bytes\n", result.HeaderBytes)
		fmt.Fprintf(cmd.OutOrStderr(), "sample bytes used......: %s\n", humanize.Bytes(uint64(result.BitsUsed)))
		fmt.Fprintf(cmd.OutOrStderr(), "carrier capacity.......: %s\n", humanize.Bytes(uint64(carrier.Capacity())))
	}
	if !embedRaw {
		fmt.Fprintln(out, "done")
	}
	return nil
}
