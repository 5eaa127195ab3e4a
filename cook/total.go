package cook

import (
	"errors"
	"math"
)

// ErrUnknownVegetable reports a vegetable kind missing from VegetableData.
var ErrUnknownVegetable = errors.New("unknown vegetable kind")

// Input collects one process computation's parameters. Thickness is the full
// slab thickness or full diameter in millimeters; temperatures are °C.
// LogReduction <= 0 selects the category default. Kind is read only for the
// vegetable category.
type Input struct {
	Food         FoodCategory
	Kind         string
	Shape        Geometry
	ThicknessMm  float64
	BathTemp     float64
	StartTemp    float64
	CoreTemp     float64
	LogReduction float64
}

// Times is a composed process schedule in whole minutes.
type Times struct {
	HeatingMin        float64
	PasteurizationMin float64
	TotalMin          float64
}

// TotalTime composes heating and pasteurization into a safe total.
//
// The pasteurization dwell is evaluated at the target core temperature, the
// coldest point once equilibrium is reached, not at the bath temperature.
//
// Rounding policy: heating and pasteurization are each rounded up from their
// own real value, and the total is rounded up from the unrounded real sum.
// The displayed parts can therefore exceed the displayed total by at most
// one minute but never undershoot it.
//
// Vegetables bypass both models and return their fixed table time.
func TotalTime(in Input) (Times, error) {
	if in.Food == Vegetable {
		v, ok := VegetableData[in.Kind]
		if !ok {
			return Times{}, ErrUnknownVegetable
		}
		return Times{TotalMin: v.TimeMin}, nil
	}
	heating, err := HeatingTime(in.Food, in.Shape, in.ThicknessMm, in.BathTemp, in.StartTemp, in.CoreTemp)
	if err != nil {
		return Times{}, err
	}
	pasteurization := PasteurizationTime(in.Food, in.CoreTemp, in.LogReduction)
	return Times{
		HeatingMin:        math.Ceil(heating),
		PasteurizationMin: math.Ceil(pasteurization),
		TotalMin:          math.Ceil(heating + pasteurization),
	}, nil
}
