package nn

import "errors"

// Hidden layer widths of the fixed topology input->128->64->output.
const (
	Hidden1 = 128
	Hidden2 = 64
)

var (
	ErrArtifactMissing = errors.New("model artifact not found")
	ErrMalformed       = errors.New("model artifact is malformed")
	ErrShapeMismatch   = errors.New("weights do not match declared dimensions")
	ErrInputWidth      = errors.New("input width does not match network")
)

// Dimensions is the descriptor stored next to the weights.
type Dimensions struct {
	InputSize  int `json:"input_size"`
	OutputSize int `json:"output_size"`
}

// StateDict is the serialized parameter set. Weight matrices are [out][in].
type StateDict struct {
	FC1Weight [][]float64 `json:"fc1.weight"`
	FC1Bias   []float64   `json:"fc1.bias"`
	FC2Weight [][]float64 `json:"fc2.weight"`
	FC2Bias   []float64   `json:"fc2.bias"`
	FC3Weight [][]float64 `json:"fc3.weight"`
	FC3Bias   []float64   `json:"fc3.bias"`
}

type linear struct {
	weight [][]float64
	bias   []float64
}
