package model

import "time"

// 前后端通信消息结构
//
// Msg is the websocket envelope. Content carries a JSON-encoded payload
// whose shape depends on Type.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// CookRequest is the UI's process input. Food and Shape are the wire names
// of the closed enumerations in package cook; Kind selects the vegetable
// process and is ignored for meats. DurationMin is read only by curve
// requests; zero means "use the computed total time".
type CookRequest struct {
	Food         string  `json:"food"`
	Kind         string  `json:"kind,omitempty"`
	Shape        string  `json:"shape"`
	ThicknessMm  float64 `json:"thickness_mm"`
	TempBath     float64 `json:"temp_bath"`
	TempStart    float64 `json:"temp_start"`
	TempCore     float64 `json:"temp_core"`
	LogReduction float64 `json:"log_reduction,omitempty"`
	DurationMin  float64 `json:"duration_min,omitempty"`
}

// CookResult mirrors cook.Times on the wire. All three fields are null when
// the target core temperature cannot be reached.
type CookResult struct {
	HeatingMin        *float64 `json:"heating_min"`
	PasteurizationMin *float64 `json:"pasteurization_min"`
	TotalMin          *float64 `json:"total_min"`
}

// CurvePoint is one plotted sample of the core temperature trajectory.
type CurvePoint struct {
	TimeMin float64 `json:"time_min"`
	TempC   float64 `json:"temp_c"`
}

// CookRecord is one served computation, kept for history replay and
// persistence.
type CookRecord struct {
	Request   CookRequest `json:"request"`
	Result    CookResult  `json:"result"`
	CreatedAt time.Time   `json:"created_at"`
}

// PresetItem is one doneness choice offered by the UI.
type PresetItem struct {
	Label string  `json:"label"`
	TempC float64 `json:"temp_c"`
}

// VegetableItem is one fixed vegetable process offered by the UI.
type VegetableItem struct {
	Kind    string  `json:"kind"`
	Label   string  `json:"label"`
	TimeMin float64 `json:"time_min"`
	TempC   float64 `json:"temp_c"`
}

// PresetData bundles the static reference tables pushed on request.
type PresetData struct {
	Doneness   map[string][]PresetItem `json:"doneness"`
	Vegetables []VegetableItem         `json:"vegetables"`
}
