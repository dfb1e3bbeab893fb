package path

import (
	"github.com/thunur/travel-route-planner/pkg/network"
	"github.com/thunur/travel-route-planner/pkg/transport"
)

// Segment is one leg of a route, covered with a single transport mode.
type Segment struct {
	From       network.NodeId
	To         network.NodeId
	Mode       transport.Mode
	DistanceKm float64
	Hours      float64
	Yuan       float64
}

// Route is a sequence of segments together with its accumulated totals.
// The zero value is an empty route.
type Route struct {
	Segments        []Segment
	TotalHours      float64
	TotalYuan       float64
	TotalDistanceKm float64
}

func (r *Route) add(s Segment) {
	r.Segments = append(r.Segments, s)
	r.TotalHours += s.Hours
	r.TotalYuan += s.Yuan
	r.TotalDistanceKm += s.DistanceKm
}

// Prepend stitches the segments of leg in front of the route and folds
// the leg totals into the route totals. The leg is drained afterwards
// so it cannot be stitched twice. A nil or empty leg is a no-op.
func (r *Route) Prepend(leg *Route) {
	if leg == nil || len(leg.Segments) == 0 {
		return
	}
	r.Segments = append(leg.Segments, r.Segments...)
	r.TotalHours += leg.TotalHours
	r.TotalYuan += leg.TotalYuan
	r.TotalDistanceKm += leg.TotalDistanceKm
	leg.Segments = nil
	leg.TotalHours = 0
	leg.TotalYuan = 0
	leg.TotalDistanceKm = 0
}
