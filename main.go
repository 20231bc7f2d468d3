// Copyright (c) 2026 pnger-go contributors.
//
// This source code is licensed under the MIT License found in the
// LICENSE file in the root directory of this source tree.

package main

import (
	"os"

	"github.com/mathyslv/pnger-go/cmd"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run executes RootCmd and returns its error, giving tests a seam that
// doesn't call os.Exit.
func run() error {
	return cmd.RootCmd.Execute()
}
