package restapi

// RouteSegment is one leg of a computed route. Field names follow the
// csv/json vocabulary of the rest of the project.
type RouteSegment struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Mode       string  `json:"mode"`
	DistanceKm float64 `json:"distance_km"`
	TimeHours  float64 `json:"time_hours"`
	CostYuan   float64 `json:"cost_yuan"`
}

// RouteResult is the response of every route computing endpoint. A
// request that parses fine but cannot be fulfilled keeps status 200 and
// reports Reachable false with the reason.
type RouteResult struct {
	Reachable       bool           `json:"reachable"`
	Reason          string         `json:"reason,omitempty"`
	Segments        []RouteSegment `json:"segments"`
	TotalDistanceKm float64        `json:"total_distance_km"`
	TotalTimeHours  float64        `json:"total_time_hours"`
	TotalCostYuan   float64        `json:"total_cost_yuan"`
}
