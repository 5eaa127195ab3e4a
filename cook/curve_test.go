package cook

import (
	"math"
	"testing"
)

func TestTemperatureCurveEndpoints(t *testing.T) {
	in := beefSlabInput()
	points := TemperatureCurve(in, 120, 0)
	if len(points) != DefaultCurveSamples+1 {
		t.Fatalf("expected %d points, got %d", DefaultCurveSamples+1, len(points))
	}
	first, last := points[0], points[len(points)-1]
	if first.TimeMin != 0 {
		t.Errorf("first point at t=%v, want 0", first.TimeMin)
	}
	if first.TempC != in.StartTemp {
		t.Errorf("Y-clamp should pin t=0 to the start temperature, got %v", first.TempC)
	}
	if last.TimeMin != 120 {
		t.Errorf("last point at t=%v, want 120", last.TimeMin)
	}
}

func TestTemperatureCurveBoundsAndOrder(t *testing.T) {
	in := beefSlabInput()
	points := TemperatureCurve(in, 180, 0)
	lo, hi := in.StartTemp, in.BathTemp
	prevTime := math.Inf(-1)
	prevTemp := lo - 1
	for _, p := range points {
		if p.TimeMin <= prevTime {
			t.Fatalf("times must strictly increase, %v after %v", p.TimeMin, prevTime)
		}
		if p.TempC < lo || p.TempC > hi {
			t.Errorf("t=%v: temperature %v outside [%v, %v]", p.TimeMin, p.TempC, lo, hi)
		}
		if p.TempC < prevTemp {
			t.Errorf("t=%v: heating curve must not cool, %v after %v", p.TimeMin, p.TempC, prevTemp)
		}
		prevTime, prevTemp = p.TimeMin, p.TempC
	}
}

func TestTemperatureCurveApproachesBath(t *testing.T) {
	in := beefSlabInput()
	points := TemperatureCurve(in, 600, 0)
	last := points[len(points)-1]
	if in.BathTemp-last.TempC > 0.1 {
		t.Errorf("after 10h a 25mm slab should sit at bath temperature, got %v", last.TempC)
	}
}

func TestTemperatureCurveRestartable(t *testing.T) {
	in := beefSlabInput()
	a := TemperatureCurve(in, 120, 0)
	b := TemperatureCurve(in, 120, 0)
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs between calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestTemperatureCurveSampleOverride(t *testing.T) {
	in := beefSlabInput()
	points := TemperatureCurve(in, 100, 10)
	if len(points) != 11 {
		t.Fatalf("expected 11 points for 10 steps, got %d", len(points))
	}
	if points[5].TimeMin != 50 {
		t.Errorf("midpoint at t=%v, want 50", points[5].TimeMin)
	}
}

func TestVegetableCurve(t *testing.T) {
	in := Input{Food: Vegetable, Kind: "broccoli", StartTemp: 20, CoreTemp: 85}
	points := TemperatureCurve(in, 40, 0)
	if len(points) != DefaultCurveSamples+1 {
		t.Fatalf("expected %d points, got %d", DefaultCurveSamples+1, len(points))
	}
	if points[0].TimeMin != 0 || points[0].TempC != 20 {
		t.Errorf("curve must start at (0, start), got %+v", points[0])
	}
	last := points[len(points)-1]
	if last.TimeMin != 40 || last.TempC != 85 {
		t.Errorf("final point must be exactly (40, 85), got %+v", last)
	}
	// 40-minute process: ramp is max(40·0.25, 10) = 10 minutes, then a hold.
	for _, p := range points {
		switch {
		case p.TimeMin < 10:
			want := 20 + (85-20.0)*p.TimeMin/10
			if math.Abs(p.TempC-want) > 1e-9 {
				t.Errorf("t=%v: ramp temperature %v, want %v", p.TimeMin, p.TempC, want)
			}
		default:
			if p.TempC != 85 {
				t.Errorf("t=%v: hold phase must sit at 85, got %v", p.TimeMin, p.TempC)
			}
		}
	}
}

func TestVegetableCurveLongProcess(t *testing.T) {
	// 120-minute process: the quarter-duration ramp (30 min) beats the
	// 10-minute floor.
	in := Input{Food: Vegetable, Kind: "beet", StartTemp: 20, CoreTemp: 85}
	points := TemperatureCurve(in, 120, 0)
	for _, p := range points {
		if p.TimeMin >= 30 && p.TempC != 85 {
			t.Errorf("t=%v: expected hold at 85 after the 30-minute ramp, got %v", p.TimeMin, p.TempC)
		}
		if p.TimeMin < 30 && p.TempC >= 85 {
			t.Errorf("t=%v: still ramping, temperature %v should be below 85", p.TimeMin, p.TempC)
		}
	}
}
