// Package nn runs inference for the intent classifier's feed-forward network.
// Training happens elsewhere; this package only loads the frozen parameters.
package nn

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Network is a loaded input->128->64->output ReLU network. It is read-only
// after construction and safe for concurrent Forward calls.
type Network struct {
	dims   Dimensions
	layers [3]linear
}

// New validates state against dims and builds a Network.
func New(dims Dimensions, state StateDict) (*Network, error) {
	if dims.InputSize <= 0 || dims.OutputSize <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimensions %+v", ErrShapeMismatch, dims)
	}

	n := &Network{
		dims: dims,
		layers: [3]linear{
			{weight: state.FC1Weight, bias: state.FC1Bias},
			{weight: state.FC2Weight, bias: state.FC2Bias},
			{weight: state.FC3Weight, bias: state.FC3Bias},
		},
	}

	shapes := [3][2]int{
		{Hidden1, dims.InputSize},
		{Hidden2, Hidden1},
		{dims.OutputSize, Hidden2},
	}
	for i, s := range shapes {
		if err := checkLayer(n.layers[i], s[0], s[1]); err != nil {
			return nil, fmt.Errorf("fc%d: %w", i+1, err)
		}
	}
	return n, nil
}

func checkLayer(l linear, out, in int) error {
	if len(l.weight) != out {
		return fmt.Errorf("%w: weight has %d rows, want %d", ErrShapeMismatch, len(l.weight), out)
	}
	for r, row := range l.weight {
		if len(row) != in {
			return fmt.Errorf("%w: weight row %d has %d columns, want %d", ErrShapeMismatch, r, len(row), in)
		}
	}
	if len(l.bias) != out {
		return fmt.Errorf("%w: bias has %d entries, want %d", ErrShapeMismatch, len(l.bias), out)
	}
	return nil
}

// Load reads the weights and dimensions artifacts and builds a Network.
func Load(weightsPath, dimsPath string) (*Network, error) {
	dims, err := LoadDimensions(dimsPath)
	if err != nil {
		return nil, err
	}

	var state StateDict
	if err := readJSON(weightsPath, &state); err != nil {
		return nil, err
	}

	return New(dims, state)
}

// LoadDimensions reads the dimensions descriptor.
func LoadDimensions(path string) (Dimensions, error) {
	var dims Dimensions
	if err := readJSON(path, &dims); err != nil {
		return Dimensions{}, err
	}
	return dims, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrArtifactMissing, path)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return nil
}

// Dimensions returns the declared input and output widths.
func (n *Network) Dimensions() Dimensions {
	return n.dims
}

// Forward runs one evaluation pass. Dropout is a training-only layer and is
// not applied here.
func (n *Network) Forward(x []float64) ([]float64, error) {
	if len(x) != n.dims.InputSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInputWidth, len(x), n.dims.InputSize)
	}

	h := n.layers[0].apply(x)
	relu(h)
	h = n.layers[1].apply(h)
	relu(h)
	return n.layers[2].apply(h), nil
}

func (l linear) apply(x []float64) []float64 {
	out := make([]float64, len(l.weight))
	for i, row := range l.weight {
		sum := l.bias[i]
		for j, w := range row {
			if x[j] != 0 {
				sum += w * x[j]
			}
		}
		out[i] = sum
	}
	return out
}

func relu(v []float64) {
	for i, x := range v {
		if x < 0 {
			v[i] = 0
		}
	}
}

// ArgMax returns the index of the largest value, the first one on ties, or -1
// for an empty slice.
func ArgMax(v []float64) int {
	best := -1
	for i, x := range v {
		if best < 0 || x > v[best] {
			best = i
		}
	}
	return best
}
