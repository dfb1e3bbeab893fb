package restapi

// TourRequest asks for a round trip that visits every listed node and
// returns to the first one.
type TourRequest struct {
	NodeIds    []int   `json:"nodeIds"`
	TimeWeight float64 `json:"timeWeight,omitempty"`
	CostWeight float64 `json:"costWeight,omitempty"`
}

func AssertTourRequestRequired(obj TourRequest) error {
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
