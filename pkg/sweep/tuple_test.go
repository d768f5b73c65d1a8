package sweep

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eth-easl/sweeper/pkg/config"
)

func TestNextCProduct(t *testing.T) {
	lengths := []int{3, 2}
	nextProduct := NextCProduct(lengths)
	expectedArrs := [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}
	curI := 0

	for {
		product := nextProduct()
		if len(product) == 0 {
			if curI != len(expectedArrs) {
				t.Fatalf("Expected %d products, got %d", len(expectedArrs), curI)
			}
			break
		}
		if len(product) != len(lengths) {
			t.Fatalf("Expected product length %d, got %d", len(lengths), len(product))
		}
		for i, v := range product {
			if v != expectedArrs[curI][i] {
				t.Fatalf("Expected %v, got %v", expectedArrs[curI], product)
			}
		}
		curI++
	}
}

func TestNextCProductEmptyDimension(t *testing.T) {
	nextProduct := NextCProduct([]int{2, 0, 3})
	assert.Nil(t, nextProduct())
}

func TestTupleName(t *testing.T) {
	tuple := Tuple{
		Run:         1,
		Model:       "resnet101",
		DatasetSize: json.Number("75"),
		ErrorRate:   json.Number("0.095"),
	}
	assert.Equal(t, "resnet101_dsize_75_error_0.095_run_1_normalsteps", tuple.Name())

	// a configured rate of 0.0 must not collapse to "0"
	tuple.ErrorRate = json.Number("0.0")
	assert.Equal(t, "resnet101_dsize_75_error_0.0_run_1_normalsteps", tuple.Name())
}

func TestEnumerate(t *testing.T) {
	cfg := config.SweepConfiguration{
		Runs:         []int{1, 2},
		Models:       []string{"resnet18", "resnet101"},
		DatasetSizes: []json.Number{"50", "75"},
		ErrorRates:   []json.Number{"0.0", "0.095", "0.269"},
	}

	tuples := Enumerate(cfg)
	assert.Equal(t, 2*2*2*3, len(tuples))

	// run varies slowest, error rate fastest
	assert.Equal(t, Tuple{Run: 1, Model: "resnet18", DatasetSize: "50", ErrorRate: "0.0"}, tuples[0])
	assert.Equal(t, Tuple{Run: 1, Model: "resnet18", DatasetSize: "50", ErrorRate: "0.095"}, tuples[1])
	assert.Equal(t, Tuple{Run: 1, Model: "resnet18", DatasetSize: "50", ErrorRate: "0.269"}, tuples[2])
	assert.Equal(t, Tuple{Run: 1, Model: "resnet18", DatasetSize: "75", ErrorRate: "0.0"}, tuples[3])
	assert.Equal(t, Tuple{Run: 1, Model: "resnet101", DatasetSize: "50", ErrorRate: "0.0"}, tuples[6])
	assert.Equal(t, Tuple{Run: 2, Model: "resnet18", DatasetSize: "50", ErrorRate: "0.0"}, tuples[12])
	assert.Equal(t, Tuple{Run: 2, Model: "resnet101", DatasetSize: "75", ErrorRate: "0.269"}, tuples[23])

	// re-running the enumeration yields the identical sequence
	assert.Equal(t, tuples, Enumerate(cfg))

	// no two tuples share a derived name
	seen := make(map[string]bool)
	for _, tuple := range tuples {
		assert.False(t, seen[tuple.Name()], "duplicate name "+tuple.Name())
		seen[tuple.Name()] = true
	}
}
