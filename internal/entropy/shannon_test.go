package entropy

import (
	"bytes"
	"math"
	"testing"
)

func TestShannon(t *testing.T) {
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	tests := []struct {
		name string
		data []byte
		want float64
	}{
		{"empty", nil, 0.0},
		{"single zero", []byte{0}, 0.0},
		{"hundred zeros", make([]byte, 100), 0.0},
		{"all 0xff", bytes.Repeat([]byte{0xff}, 4096), 0.0},
		{"two symbols", []byte{0, 1, 0, 1}, 1.0},
		{"four symbols", []byte{0, 1, 2, 3}, 2.0},
		{"every byte once", allBytes, 8.0},
		{"every byte twice", append(append([]byte{}, allBytes...), allBytes...), 8.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shannon(tt.data); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Shannon() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShannon_ZeroIsExact(t *testing.T) {
	for _, n := range []int{1, 7, 256, 1000} {
		if got := Shannon(make([]byte, n)); got != 0.0 {
			t.Errorf("len %d: expected exactly 0, got %v", n, got)
		}
	}
	if got := Shannon([]byte{}); got != 0.0 {
		t.Errorf("empty: expected exactly 0, got %v", got)
	}
}

func TestShannon_Range(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	got := Shannon(data)
	if got <= 0 || got > MaxEntropy {
		t.Errorf("entropy out of range: %v", got)
	}
}

func TestHistogram(t *testing.T) {
	var h Histogram
	n, err := h.Write([]byte{1, 1, 2})
	if err != nil || n != 3 {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if h.Len() != 3 {
		t.Errorf("expected len 3, got %d", h.Len())
	}
	if h.Count(1) != 2 || h.Count(2) != 1 {
		t.Errorf("unexpected counts: %d %d", h.Count(1), h.Count(2))
	}

	h.Reset()
	if h.Len() != 0 || h.Entropy() != 0 {
		t.Error("reset histogram should be empty")
	}
}
