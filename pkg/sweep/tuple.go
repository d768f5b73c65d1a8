package sweep

import (
	"encoding/json"
	"fmt"

	"github.com/eth-easl/sweeper/pkg/config"
)

// Tuple is one point of the sweep's parameter grid.
type Tuple struct {
	Run         int
	Model       string
	DatasetSize json.Number
	ErrorRate   json.Number
}

// Name derives the experiment identifier that labels the trainer's output
// artifacts for this tuple. Downstream tooling matches on this exact
// pattern, so the numeric text comes straight from the configuration.
func (t Tuple) Name() string {
	return fmt.Sprintf("%s_dsize_%s_error_%s_run_%d_normalsteps",
		t.Model, t.DatasetSize, t.ErrorRate, t.Run)
}

/**
* NextCProduct generates the next Cartesian product of the given lengths
**/
func NextCProduct(lengths []int) func() []int {
	permutations := make([]int, len(lengths))
	indices := make([]int, len(lengths))
	done := false

	for _, length := range lengths {
		if length == 0 {
			done = true
		}
	}

	return func() []int {
		// Check if there are more permutations
		if done {
			return nil
		}

		// Generate the current permutation
		copy(permutations, indices)

		// Generate the next permutation
		for i := len(indices) - 1; i >= 0; i-- {
			indices[i]++
			if indices[i] < lengths[i] {
				break
			}
			indices[i] = 0
			if i == 0 {
				// All permutations have been generated
				done = true
			}
		}

		return permutations
	}
}

// Enumerate expands the configured lists into the full grid of tuples, in
// invocation order: run, then model, then dataset size, then error rate,
// outermost to innermost.
func Enumerate(cfg config.SweepConfiguration) []Tuple {
	nextProduct := NextCProduct([]int{
		len(cfg.Runs),
		len(cfg.Models),
		len(cfg.DatasetSizes),
		len(cfg.ErrorRates),
	})

	var tuples []Tuple
	for indices := nextProduct(); indices != nil; indices = nextProduct() {
		tuples = append(tuples, Tuple{
			Run:         cfg.Runs[indices[0]],
			Model:       cfg.Models[indices[1]],
			DatasetSize: cfg.DatasetSizes[indices[2]],
			ErrorRate:   cfg.ErrorRates[indices[3]],
		})
	}

	return tuples
}
