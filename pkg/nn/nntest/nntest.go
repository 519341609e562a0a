// Package nntest builds small hand-wired networks for tests.
package nntest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gems-assistant/pkg/nn"
)

// Routing returns parameters where input i feeds output route[i] with weight 1
// and every output starts from outBias[o]. Inputs beyond nn.Hidden2 are ignored.
func Routing(in, out int, route map[int]int, outBias []float64) nn.StateDict {
	s := nn.StateDict{
		FC1Weight: matrix(nn.Hidden1, in),
		FC1Bias:   make([]float64, nn.Hidden1),
		FC2Weight: matrix(nn.Hidden2, nn.Hidden1),
		FC2Bias:   make([]float64, nn.Hidden2),
		FC3Weight: matrix(out, nn.Hidden2),
		FC3Bias:   make([]float64, out),
	}
	for i := 0; i < in && i < nn.Hidden2; i++ {
		s.FC1Weight[i][i] = 1
		s.FC2Weight[i][i] = 1
		if o, ok := route[i]; ok && o >= 0 && o < out {
			s.FC3Weight[o][i] = 1
		}
	}
	copy(s.FC3Bias, outBias)
	return s
}

func matrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// WriteArtifacts stores state and dims as JSON under dir and returns their paths.
func WriteArtifacts(t *testing.T, dir string, dims nn.Dimensions, state nn.StateDict) (string, string) {
	t.Helper()
	weights := filepath.Join(dir, "chatbot_model.json")
	dimsPath := filepath.Join(dir, "dimensions.json")
	writeJSON(t, weights, state)
	writeJSON(t, dimsPath, dims)
	return weights, dimsPath
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
