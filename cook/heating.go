package cook

import (
	"errors"
	"math"
)

// ErrUnreachable reports a target core temperature at or above the bath
// temperature. Conduction approaches the bath asymptotically, so such a
// target is never reached; callers get this error instead of an infinity.
var ErrUnreachable = errors.New("core temperature target is not reachable at this bath temperature")

// minFourier floors the inverted Fourier number. The one-term series is an
// asymptotic solution, so the inversion can undershoot when the target sits
// very close to the start temperature.
const minFourier = 0.01

// HeatingTime estimates the minutes for the coldest point to reach core,
// inverting the one-term series Y = C1·exp(−C2·Fo) for the Fourier number.
// thicknessMm is the full slab thickness or full diameter; the model halves
// it to the characteristic radius. Temperatures are °C.
func HeatingTime(food FoodCategory, shape Geometry, thicknessMm, bath, start, core float64) (float64, error) {
	if core >= bath {
		return 0, ErrUnreachable
	}
	if core <= start {
		// already at target
		return 0, nil
	}
	y := (bath - core) / (bath - start) // in (0, 1)
	c := shape.Coeffs()
	fo := -math.Log(y/c.C1) / c.C2
	if fo < minFourier {
		fo = minFourier
	}
	r := thicknessMm / 1000 / 2 // mm -> m, full thickness -> radius
	seconds := fo * r * r / food.Diffusivity()
	return seconds / 60, nil
}
