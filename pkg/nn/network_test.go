package nn_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gems-assistant/pkg/nn"
	"gems-assistant/pkg/nn/nntest"
)

func TestNew_ShapeValidation(t *testing.T) {
	dims := nn.Dimensions{InputSize: 4, OutputSize: 3}

	t.Run("valid", func(t *testing.T) {
		if _, err := nn.New(dims, nntest.Routing(4, 3, nil, nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("input width mismatch", func(t *testing.T) {
		_, err := nn.New(dims, nntest.Routing(5, 3, nil, nil))
		if !errors.Is(err, nn.ErrShapeMismatch) {
			t.Errorf("expected ErrShapeMismatch, got %v", err)
		}
	})

	t.Run("output width mismatch", func(t *testing.T) {
		_, err := nn.New(dims, nntest.Routing(4, 2, nil, nil))
		if !errors.Is(err, nn.ErrShapeMismatch) {
			t.Errorf("expected ErrShapeMismatch, got %v", err)
		}
	})

	t.Run("short bias", func(t *testing.T) {
		state := nntest.Routing(4, 3, nil, nil)
		state.FC2Bias = state.FC2Bias[:10]
		_, err := nn.New(dims, state)
		if !errors.Is(err, nn.ErrShapeMismatch) {
			t.Errorf("expected ErrShapeMismatch, got %v", err)
		}
	})

	t.Run("non-positive dims", func(t *testing.T) {
		_, err := nn.New(nn.Dimensions{}, nn.StateDict{})
		if !errors.Is(err, nn.ErrShapeMismatch) {
			t.Errorf("expected ErrShapeMismatch, got %v", err)
		}
	})
}

func TestForward(t *testing.T) {
	dims := nn.Dimensions{InputSize: 3, OutputSize: 2}
	net, err := nn.New(dims, nntest.Routing(3, 2, map[int]int{0: 0, 1: 1, 2: 1}, []float64{0.5, 0}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("routes inputs", func(t *testing.T) {
		out, err := net.Forward([]float64{0, 1, 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out[0] != 0.5 || out[1] != 2 {
			t.Errorf("unexpected output %v", out)
		}
		if got := nn.ArgMax(out); got != 1 {
			t.Errorf("expected argmax 1, got %d", got)
		}
	})

	t.Run("zero input follows bias", func(t *testing.T) {
		out, _ := net.Forward([]float64{0, 0, 0})
		if got := nn.ArgMax(out); got != 0 {
			t.Errorf("expected argmax 0, got %d", got)
		}
	})

	t.Run("wrong width", func(t *testing.T) {
		_, err := net.Forward([]float64{1})
		if !errors.Is(err, nn.ErrInputWidth) {
			t.Errorf("expected ErrInputWidth, got %v", err)
		}
	})

	t.Run("relu clamps negatives", func(t *testing.T) {
		state := nntest.Routing(1, 1, map[int]int{0: 0}, nil)
		state.FC1Weight[0][0] = -1
		n, err := nn.New(nn.Dimensions{InputSize: 1, OutputSize: 1}, state)
		if err != nil {
			t.Fatal(err)
		}
		out, _ := n.Forward([]float64{1})
		if out[0] != 0 {
			t.Errorf("expected 0 after relu, got %v", out[0])
		}
	})
}

func TestArgMax(t *testing.T) {
	if got := nn.ArgMax(nil); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
	if got := nn.ArgMax([]float64{1, 3, 3}); got != 1 {
		t.Errorf("expected first max, got %d", got)
	}
	if got := nn.ArgMax([]float64{-2, -1}); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	dims := nn.Dimensions{InputSize: 2, OutputSize: 2}
	weights, dimsPath := nntest.WriteArtifacts(t, dir, dims, nntest.Routing(2, 2, nil, nil))

	t.Run("ok", func(t *testing.T) {
		net, err := nn.Load(weights, dimsPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if net.Dimensions() != dims {
			t.Errorf("expected %+v, got %+v", dims, net.Dimensions())
		}
	})

	t.Run("missing weights", func(t *testing.T) {
		_, err := nn.Load(filepath.Join(dir, "missing.json"), dimsPath)
		if !errors.Is(err, nn.ErrArtifactMissing) {
			t.Errorf("expected ErrArtifactMissing, got %v", err)
		}
	})

	t.Run("missing dims", func(t *testing.T) {
		_, err := nn.Load(weights, filepath.Join(dir, "missing.json"))
		if !errors.Is(err, nn.ErrArtifactMissing) {
			t.Errorf("expected ErrArtifactMissing, got %v", err)
		}
	})

	t.Run("malformed weights", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := nn.Load(bad, dimsPath)
		if !errors.Is(err, nn.ErrMalformed) {
			t.Errorf("expected ErrMalformed, got %v", err)
		}
	})
}
