package random

import (
	"testing"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 1000; i++ {
		if got, want := a.Intn(1000), b.Intn(1000); got != want {
			t.Fatalf("draw %d diverged: %d vs %d", i, got, want)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(42)
	b := New(43)

	same := true
	for i := 0; i < 100; i++ {
		if a.Intn(1 << 30) != b.Intn(1<<30) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different sequences")
	}
}

func TestIntRangeInclusive(t *testing.T) {
	s := New(1)
	sawMin, sawMax := false, false
	for i := 0; i < 10000; i++ {
		v := s.IntRange(1, 5)
		if v < 1 || v > 5 {
			t.Fatalf("IntRange(1, 5) returned %d", v)
		}
		if v == 1 {
			sawMin = true
		}
		if v == 5 {
			sawMax = true
		}
	}
	if !sawMin || !sawMax {
		t.Fatalf("expected both bounds to appear, min=%v max=%v", sawMin, sawMax)
	}
}

func TestFloat64RangeBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 10000; i++ {
		v := s.Float64Range(0.4, 0.8)
		if v < 0.4 || v >= 0.8 {
			t.Fatalf("Float64Range(0.4, 0.8) returned %v", v)
		}
	}
}

func TestSampleIntsDistinct(t *testing.T) {
	s := New(99)
	sample := s.SampleInts(100, 30)
	if len(sample) != 30 {
		t.Fatalf("expected 30 values, got %d", len(sample))
	}

	seen := make(map[int]bool, len(sample))
	for _, v := range sample {
		if v < 1 || v > 100 {
			t.Fatalf("sampled value %d out of range", v)
		}
		if seen[v] {
			t.Fatalf("duplicate value %d in sample", v)
		}
		seen[v] = true
	}
}

func TestSampleIntsCapsAtPopulation(t *testing.T) {
	s := New(99)
	if got := len(s.SampleInts(5, 50)); got != 5 {
		t.Fatalf("expected sample capped at 5, got %d", got)
	}
}

func TestPick(t *testing.T) {
	s := New(3)
	pool := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		v := Pick(s, pool)
		if v != "a" && v != "b" && v != "c" {
			t.Fatalf("Pick returned %q", v)
		}
	}
}

func TestWeightedPickRespectsPool(t *testing.T) {
	s := New(3)
	pool := []string{"INFO", "WARN", "ERROR"}
	weights := []int{70, 20, 10}

	counts := make(map[string]int)
	for i := 0; i < 10000; i++ {
		counts[WeightedPick(s, pool, weights)]++
	}
	if counts["INFO"] <= counts["WARN"] || counts["WARN"] <= counts["ERROR"] {
		t.Fatalf("expected weight ordering in draw counts, got %v", counts)
	}
}
