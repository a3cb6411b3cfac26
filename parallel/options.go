// SPDX-License-Identifier: MIT

package parallel

import "github.com/katalvlaran/parmatmul/matrix"

// DefaultWorkerLimit is the default cap on simultaneously running workers.
// Zero means no cap.
const DefaultWorkerLimit = 0

const panicWorkerLimitInvalid = "parallel: WithWorkerLimit: limit must be >= 0"

// Option configures an Engine.
type Option func(*Options)

// Options holds the effective Engine configuration.
type Options struct {
	workerLimit int             // DefaultWorkerLimit
	inputPolicy []matrix.Option // policy for materialised non-*Dense operands
}

// WithWorkerLimit caps how many workers a single Multiply may start.
// A call asking for more workers than the cap fails with ErrWorkerStart
// before any allocation or dispatch. Use 0 for no cap.
// Panics on a negative limit (programmer error).
func WithWorkerLimit(n int) Option {
	if n < 0 {
		panic(panicWorkerLimitInvalid)
	}

	return func(o *Options) { o.workerLimit = n }
}

// WithInputPolicy sets the matrix options used when an operand that is not a
// *matrix.Dense has to be copied into one before dispatch.
//
// The policy applies to that copy only. A *matrix.Dense operand is used as
// built: one created with matrix.WithNoValidateNaNInf may hold NaN/±Inf and is
// multiplied, while the same values behind another Matrix implementation are
// rejected with matrix.ErrNaNInf under the default policy.
func WithInputPolicy(opts ...matrix.Option) Option {
	return func(o *Options) {
		o.inputPolicy = append([]matrix.Option(nil), opts...)
	}
}

// gatherOptions applies setters over the defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{workerLimit: DefaultWorkerLimit}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
