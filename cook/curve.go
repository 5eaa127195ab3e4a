package cook

import "math"

// Point is one sample of the core temperature trajectory.
type Point struct {
	TimeMin float64
	TempC   float64
}

// DefaultCurveSamples is the number of steps across the duration; the curve
// has one more point than steps so both endpoints are sampled.
const DefaultCurveSamples = 50

// TemperatureCurve runs the conduction model forward and samples the core
// temperature across [0, durationMin]. samples <= 0 selects
// DefaultCurveSamples. Y is clamped to 1 to bound the unphysical overshoot
// of the one-term series near t=0, so the first point sits exactly at the
// start temperature. A pure function of its inputs; repeated calls yield
// identical curves.
func TemperatureCurve(in Input, durationMin float64, samples int) []Point {
	if samples <= 0 {
		samples = DefaultCurveSamples
	}
	if in.Food == Vegetable {
		return vegetableCurve(in, durationMin, samples)
	}
	c := in.Shape.Coeffs()
	alpha := in.Food.Diffusivity()
	r := in.ThicknessMm / 1000 / 2
	step := durationMin / float64(samples)
	points := make([]Point, 0, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) * step
		fo := alpha * t * 60 / (r * r)
		y := c.C1 * math.Exp(-c.C2*fo)
		if y > 1 {
			y = 1
		}
		points = append(points, Point{
			TimeMin: t,
			TempC:   in.BathTemp - y*(in.BathTemp-in.StartTemp),
		})
	}
	return points
}

// vegetableCurve is the fixed-process trajectory: a linear ramp from the
// start temperature to the target over the first quarter of the duration
// (at least 10 minutes), then a flat hold. The final point is forced exactly
// onto (duration, target).
func vegetableCurve(in Input, durationMin float64, samples int) []Point {
	ramp := durationMin * 0.25
	if ramp < 10 {
		ramp = 10
	}
	if ramp > durationMin {
		ramp = durationMin
	}
	step := durationMin / float64(samples)
	points := make([]Point, 0, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) * step
		temp := in.CoreTemp
		if t < ramp {
			temp = in.StartTemp + (in.CoreTemp-in.StartTemp)*t/ramp
		}
		points = append(points, Point{TimeMin: t, TempC: temp})
	}
	points[len(points)-1] = Point{TimeMin: durationMin, TempC: in.CoreTemp}
	return points
}
