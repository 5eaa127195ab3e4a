package cook

import "fmt"

// 食材分类与物性参数
//
// Each category carries one thermal diffusivity (m²/s) used by the
// conduction model and one D/z pasteurization kinetics record. Vegetables
// are table-driven (see VegetableData) and carry a zero reference D-value,
// which short-circuits the pasteurization model to zero.

type FoodCategory int

const (
	Beef FoodCategory = iota
	Pork
	Poultry
	Fish
	Vegetable
)

var foodNames = [...]string{"beef", "pork", "poultry", "fish", "vegetable"}

func (f FoodCategory) String() string {
	if f < 0 || int(f) >= len(foodNames) {
		return fmt.Sprintf("food(%d)", int(f))
	}
	return foodNames[f]
}

// ParseFood maps a wire name to its category.
func ParseFood(name string) (FoodCategory, error) {
	for i, n := range foodNames {
		if n == name {
			return FoodCategory(i), nil
		}
	}
	return 0, fmt.Errorf("unknown food category %q", name)
}

// Kinetics holds the decimal-reduction parameters of one category.
type Kinetics struct {
	DRef         float64 // 参考D值, minutes at TRef
	TRef         float64 // 参考温度, °C
	Z            float64 // z值, °C per decade of D
	LogReduction float64 // default target log reduction
}

// Mid-range literature diffusivities for water-rich foods.
var diffusivity = [...]float64{
	Beef:      1.35e-7,
	Pork:      1.30e-7,
	Poultry:   1.40e-7,
	Fish:      1.20e-7,
	Vegetable: 1.60e-7,
}

var kinetics = [...]Kinetics{
	Beef:      {DRef: 3.2, TRef: 60, Z: 6.0, LogReduction: 6.5},
	Pork:      {DRef: 3.9, TRef: 60, Z: 6.2, LogReduction: 6.5},
	Poultry:   {DRef: 4.5, TRef: 60, Z: 6.4, LogReduction: 7.0},
	Fish:      {DRef: 2.9, TRef: 60, Z: 6.8, LogReduction: 6.0},
	Vegetable: {},
}

// Diffusivity returns the category's thermal diffusivity in m²/s.
func (f FoodCategory) Diffusivity() float64 {
	return diffusivity[f]
}

// Kinetics returns the category's pasteurization parameters. A zero DRef
// means the category has no computed pasteurization step.
func (f FoodCategory) Kinetics() Kinetics {
	return kinetics[f]
}
