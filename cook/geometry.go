package cook

import "fmt"

// Geometry selects the one-term conduction series constants. The series
// solution near the center is Y = C1·exp(−C2·Fo); C1 > 1 and C2 > 0 for all
// three shapes. C2 ordering (sphere > cylinder > slab) is what makes a
// sphere of equal thickness heat fastest.
type Geometry int

const (
	Slab Geometry = iota
	Cylinder
	Sphere
)

var shapeNames = [...]string{"slab", "cylinder", "sphere"}

func (g Geometry) String() string {
	if g < 0 || int(g) >= len(shapeNames) {
		return fmt.Sprintf("geometry(%d)", int(g))
	}
	return shapeNames[g]
}

// ParseShape maps a wire name to its geometry.
func ParseShape(name string) (Geometry, error) {
	for i, n := range shapeNames {
		if n == name {
			return Geometry(i), nil
		}
	}
	return 0, fmt.Errorf("unknown geometry %q", name)
}

// Coeffs are the fit constants of the one-term series solution.
type Coeffs struct {
	C1 float64 // 首项系数
	C2 float64 // 衰减系数
}

var shapeCoeffs = [...]Coeffs{
	Slab:     {C1: 1.273, C2: 2.467},
	Cylinder: {C1: 1.602, C2: 5.783},
	Sphere:   {C1: 2.0, C2: 9.87},
}

// Coeffs returns the geometry's series constants.
func (g Geometry) Coeffs() Coeffs {
	return shapeCoeffs[g]
}
