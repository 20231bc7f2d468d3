// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathyslv/pnger-go/cmd/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of the pnger CLI",
	Long:  `Display the current version of the pnger CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", version.Version())
		fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommitID())
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
