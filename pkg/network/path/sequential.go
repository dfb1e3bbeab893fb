package path

import (
	"fmt"

	"github.com/thunur/travel-route-planner/pkg/network"
)

// FindSequentialRoute routes a trip through the given stops in their
// given order. Every consecutive pair becomes one multi-modal leg. The
// first pair without a route aborts the trip, so callers never see a
// partial result.
func FindSequentialRoute(n *network.Network, stops []network.NodeId, timeWeight, costWeight float64) (*Route, error) {
	if len(stops) < 2 {
		return nil, ErrTooFewStops
	}
	for _, id := range stops {
		if !n.Contains(id) {
			return nil, ErrInvalidNode
		}
	}

	legs := make([]*Route, 0, len(stops)-1)
	for k := 0; k+1 < len(stops); k++ {
		leg, err := FindRoute(n, stops[k], stops[k+1], timeWeight, costWeight)
		if err != nil {
			from := n.GetNode(stops[k])
			to := n.GetNode(stops[k+1])
			return nil, fmt.Errorf("%w: leg %d (%v -> %v)", ErrBrokenLeg, k, from.Name, to.Name)
		}
		legs = append(legs, leg)
	}

	route := &Route{}
	for k := len(legs) - 1; k >= 0; k-- {
		route.Prepend(legs[k])
	}
	return route, nil
}
