// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/parallel"
)

type benchFlags struct {
	m, k, n int
	workers []int
	repeat  int
	seed    int64
}

func newBenchCmd() *cobra.Command {
	f := &benchFlags{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time random products across worker counts and check the results agree bit for bit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, f)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&f.m, "m", 256, "rows of A")
	fs.IntVar(&f.k, "k", 256, "columns of A / rows of B")
	fs.IntVar(&f.n, "n", 256, "columns of B")
	fs.IntSliceVarP(&f.workers, "workers", "w", []int{1, 2, 4, 8}, "worker counts to compare")
	fs.IntVar(&f.repeat, "repeat", 3, "runs per worker count; the fastest is reported")
	fs.Int64Var(&f.seed, "seed", 1, "random seed for the operands")

	return cmd
}

func runBench(cmd *cobra.Command, f *benchFlags) error {
	if f.repeat < 1 {
		return fmt.Errorf("repeat must be >= 1, got %d", f.repeat)
	}
	rng := rand.New(rand.NewSource(f.seed))
	a, err := randomDense(rng, f.m, f.k)
	if err != nil {
		return err
	}
	b, err := randomDense(rng, f.k, f.n)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr())
	var ref *matrix.Dense
	for _, w := range f.workers {
		var (
			best time.Duration
			c    *matrix.Dense
		)
		for r := 0; r < f.repeat; r++ {
			start := time.Now()
			c, err = parallel.Multiply(a, b, w)
			if err != nil {
				return fmt.Errorf("workers=%d: %w", w, err)
			}
			if d := time.Since(start); r == 0 || d < best {
				best = d
			}
		}
		if ref == nil {
			ref = c
		} else if !ref.Equal(c) {
			logger.Printf("workers=%d: result differs from workers=%d", w, f.workers[0])
			return fmt.Errorf("workers=%d produced a different result", w)
		}
		fmt.Fprintf(out, "%dx%d x %dx%d workers=%-3d %v\n", f.m, f.k, f.k, f.n, w, best)
	}

	return nil
}

func randomDense(rng *rand.Rand, r, c int) (*matrix.Dense, error) {
	if err := matrix.ValidateShape(r, c); err != nil {
		return nil, err
	}
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return matrix.NewDenseFrom(r, c, vals)
}
