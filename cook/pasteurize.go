package cook

import "math"

// PasteurizationTime returns the minutes of dwell at holdTemp needed for the
// category's target log reduction, using the thermal death-time relation
// D(T) = DRef·10^((TRef−T)/z). logReduction <= 0 selects the category
// default. Categories with a zero reference D-value (vegetables) return 0.
//
// Low holding temperatures legitimately produce very large times; there is
// no upper clamp.
func PasteurizationTime(food FoodCategory, holdTemp, logReduction float64) float64 {
	k := food.Kinetics()
	if k.DRef == 0 {
		return 0
	}
	if logReduction <= 0 {
		logReduction = k.LogReduction
	}
	d := k.DRef * math.Pow(10, (k.TRef-holdTemp)/k.Z)
	return d * logReduction
}
