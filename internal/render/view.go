package render

// ViewState is the fixed camera over Kyushu.
type ViewState struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch"`
	Bearing   float64 `json:"bearing"`
}

// DefaultView centers the camera between the seven capitals.
var DefaultView = ViewState{
	Latitude:  32.7,
	Longitude: 131.0,
	Zoom:      6.2,
	Pitch:     45,
	Bearing:   0,
}

// ColumnRadius is the column footprint in meters.
const ColumnRadius = 12000

// TooltipHTML is the hover template; placeholders are interpolated by the
// rendering layer from ColumnRow fields.
const TooltipHTML = "<b>{location_name}</b><br>Temp: {temperature}&deg;C<br>Time: {timestamp}"
