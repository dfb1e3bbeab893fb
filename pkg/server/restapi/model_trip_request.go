package restapi

// TripRequest asks for a route that visits the listed nodes in exactly
// the given order.
type TripRequest struct {
	NodeIds    []int   `json:"nodeIds"`
	TimeWeight float64 `json:"timeWeight,omitempty"`
	CostWeight float64 `json:"costWeight,omitempty"`
}

func AssertTripRequestRequired(obj TripRequest) error {
	elements := map[string]interface{}{
		"nodeIds": obj.NodeIds,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}
	return nil
}
