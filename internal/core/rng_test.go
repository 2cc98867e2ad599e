package core

import "testing"

// fixedSource replays the given samples in order.
type fixedSource struct {
	samples []float64
	i       int
}

func (f *fixedSource) Float64() float64 {
	v := f.samples[f.i%len(f.samples)]
	f.i++
	return v
}

func TestRNGIntBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		u        float64
		length   float64
		expected int
	}{
		{"u=0 reaches lower bound", 0, 2, -2},
		{"just above zero", 0.0001, 2, -1},
		{"quarter", 0.25, 2, -1},
		{"half", 0.5, 2, 0},
		{"three quarters", 0.75, 2, 1},
		{"near one", 0.9999, 2, 2},
		{"spawn offset", 0.5, 200, 0},
		{"spawn offset high", 0.75, 200, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := NewRNGFrom(&fixedSource{samples: []float64{tc.u}})
			if got := rng.Int(tc.length); got != tc.expected {
				t.Errorf("Int(%v) with u=%v = %d, expected %d", tc.length, tc.u, got, tc.expected)
			}
		})
	}
}

func TestRNGVelocityRange(t *testing.T) {
	rng := NewRNG(12345)
	counts := make(map[int]int)

	for i := 0; i < 20000; i++ {
		v := rng.Int(2.0)
		if v < -2 || v > 2 {
			t.Fatalf("Int(2.0) = %d, outside [-2, 2]", v)
		}
		counts[v]++
	}

	for _, v := range []int{-1, 0, 1, 2} {
		if counts[v] == 0 {
			t.Errorf("value %d never observed", v)
		}
		if counts[-2] >= counts[v] {
			t.Errorf("-2 observed %d times, not rarer than %d (%d times)", counts[-2], v, counts[v])
		}
	}
}

func TestRNGDeterminism(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Int(240), b.Int(240); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
