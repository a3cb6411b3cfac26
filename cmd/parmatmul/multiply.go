// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/parallel"
)

type multiplyFlags struct {
	engineFlags
	a, b           string
	out            string
	allowNonFinite bool
}

func newMultiplyCmd() *cobra.Command {
	f := &multiplyFlags{}
	cmd := &cobra.Command{
		Use:   "multiply",
		Short: "Compute C = A × B from two JSON matrices",
		Long: `Reads A and B as JSON arrays of rows (e.g. [[1,2],[3,4]]), multiplies
them with the requested number of workers and writes C in the same format.
Use "-" to read one operand from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMultiply(cmd, f)
		},
	}
	f.register(cmd.Flags())
	cmd.Flags().StringVar(&f.a, "a", "", "path to the left operand (JSON)")
	cmd.Flags().StringVar(&f.b, "b", "", "path to the right operand (JSON)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "-", "output path (default stdout)")
	cmd.Flags().BoolVar(&f.allowNonFinite, "allow-nonfinite", false, "accept NaN/Inf entries in the operands")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

func runMultiply(cmd *cobra.Command, f *multiplyFlags) error {
	if f.a == "-" && f.b == "-" {
		return errors.New("only one operand can be read from stdin")
	}
	var opts []matrix.Option
	if f.allowNonFinite {
		opts = append(opts, matrix.WithNoValidateNaNInf())
	}

	a, err := readMatrix(f.a, cmd.InOrStdin(), opts...)
	if err != nil {
		return err
	}
	b, err := readMatrix(f.b, cmd.InOrStdin(), opts...)
	if err != nil {
		return err
	}
	if f.workers > a.Rows() {
		newLogger(cmd.ErrOrStderr()).Printf("%d workers for %d rows: %d workers will receive no rows",
			f.workers, a.Rows(), f.workers-1)
	}

	eng := parallel.New(parallel.WithWorkerLimit(max(f.limit, 0)))
	c, err := eng.Multiply(a, b, f.workers)
	if err != nil {
		return fmt.Errorf("multiply %dx%d by %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), err)
	}

	return writeMatrix(f.out, cmd.OutOrStdout(), c)
}
