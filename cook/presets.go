package cook

// 熟度预设 / 蔬菜工艺表
//
// Static lookup data for the surrounding UI. Labels are opaque keys the UI
// localizes; the core never interprets them.

// Preset pairs a label key with a target core temperature. Lists are ordered
// by rising temperature and the first entry is the UI default.
type Preset struct {
	Label string
	TempC float64
}

var donenessPresets = map[FoodCategory][]Preset{
	Beef: {
		{"doneness.beef.rare", 52},
		{"doneness.beef.medium_rare", 56},
		{"doneness.beef.medium", 60},
		{"doneness.beef.medium_well", 65},
		{"doneness.beef.well_done", 68},
	},
	Pork: {
		{"doneness.pork.medium_rare", 58},
		{"doneness.pork.medium", 62},
		{"doneness.pork.well_done", 68},
	},
	Poultry: {
		{"doneness.poultry.silky", 60},
		{"doneness.poultry.tender", 65},
		{"doneness.poultry.firm", 69},
		{"doneness.poultry.traditional", 74},
	},
	Fish: {
		{"doneness.fish.translucent", 43},
		{"doneness.fish.tender", 47},
		{"doneness.fish.flaky", 52},
		{"doneness.fish.firm", 57},
	},
}

// DonenessPresets returns the ordered doneness list for a meat category,
// nil for categories without one (vegetables).
func DonenessPresets(food FoodCategory) []Preset {
	return donenessPresets[food]
}

// VegetableProcess is a fixed bath process: vegetables cook at a set
// temperature for a set time instead of running the conduction model.
type VegetableProcess struct {
	Label   string
	TimeMin float64
	TempC   float64
}

// VegetableData maps a vegetable kind to its fixed process.
var VegetableData = map[string]VegetableProcess{
	"asparagus":   {"vegetable.asparagus", 25, 85},
	"broccoli":    {"vegetable.broccoli", 40, 85},
	"cauliflower": {"vegetable.cauliflower", 45, 85},
	"green_beans": {"vegetable.green_beans", 50, 85},
	"carrot":      {"vegetable.carrot", 60, 85},
	"potato":      {"vegetable.potato", 90, 85},
	"beet":        {"vegetable.beet", 120, 85},
}
