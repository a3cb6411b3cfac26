// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// version is the CLI release string.
const version = "v0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "parmatmul",
		Short:         "Multiply dense matrices with a fixed pool of row-partitioned workers",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newMultiplyCmd(), newBenchCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the parmatmul version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "parmatmul", version)
		},
	}
}

// engineFlags are shared by every command that runs the engine.
type engineFlags struct {
	workers int
	limit   int
}

func (f *engineFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.workers, "workers", "w", runtime.NumCPU(), "number of workers splitting the output rows")
	fs.IntVar(&f.limit, "limit", 0, "maximum simultaneously running workers (0 = no limit)")
}

// newLogger returns the diagnostics logger for a command.
func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "parmatmul: ", 0)
}
