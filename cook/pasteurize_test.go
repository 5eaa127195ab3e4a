package cook

import (
	"math"
	"testing"
)

func TestPasteurizationTimeBeef(t *testing.T) {
	// D(56) = 3.2·10^((60-56)/6.0) = 14.853, times the 6.5 log target.
	got := PasteurizationTime(Beef, 56, 0)
	want := 96.55
	if math.Abs(got-want) > 0.1 {
		t.Errorf("pasteurization time = %v, want %v ± 0.1", got, want)
	}
}

func TestPasteurizationTimeAtReference(t *testing.T) {
	for _, food := range meats {
		k := food.Kinetics()
		got := PasteurizationTime(food, k.TRef, 0)
		want := k.DRef * k.LogReduction
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%v: at TRef expected DRef·target = %v, got %v", food, want, got)
		}
	}
}

func TestPasteurizationTimeDecreasingInTemperature(t *testing.T) {
	for _, food := range meats {
		prev := math.Inf(1)
		for temp := 52.0; temp <= 66; temp += 2 {
			got := PasteurizationTime(food, temp, 0)
			if got <= 0 {
				t.Fatalf("%v at %v°C: expected positive time, got %v", food, temp, got)
			}
			if got >= prev {
				t.Errorf("%v: time should strictly decrease with temperature, %v°C gave %v after %v", food, temp, got, prev)
			}
			prev = got
		}
	}
}

func TestPasteurizationTimeVegetableIsZero(t *testing.T) {
	if got := PasteurizationTime(Vegetable, 85, 0); got != 0 {
		t.Errorf("vegetables have no pasteurization model, got %v", got)
	}
}

func TestPasteurizationTimeExplicitTarget(t *testing.T) {
	// One log reduction at the reference temperature is exactly one D-value.
	got := PasteurizationTime(Beef, 60, 1)
	if math.Abs(got-3.2) > 1e-9 {
		t.Errorf("explicit 1-log target at 60°C should be DRef, got %v", got)
	}
	// The override must win over the category default.
	if half, full := PasteurizationTime(Beef, 56, 3.25), PasteurizationTime(Beef, 56, 6.5); math.Abs(full-2*half) > 1e-9 {
		t.Errorf("halving the log target should halve the time: %v vs %v", half, full)
	}
}
