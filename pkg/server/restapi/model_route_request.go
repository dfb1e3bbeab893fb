// SPDX-License-Identifier: MIT

package restapi

// RouteRequest asks for the best route between two named places. Start
// and end accept a city name or an exact hub node name. Weights may be
// omitted, the server default is used then.
type RouteRequest struct {
	Start      string  `json:"start"`
	End        string  `json:"end"`
	TimeWeight float64 `json:"timeWeight,omitempty"`
	CostWeight float64 `json:"costWeight,omitempty"`
}

func AssertRouteRequestRequired(obj RouteRequest) error {
	elements := map[string]interface{}{
		"start": obj.Start,
		"end":   obj.End,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}
