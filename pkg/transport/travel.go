package transport

import (
	"github.com/thunur/travel-route-planner/pkg/network"
)

// 各交通方式的基准速度与单价
var attrs = [ModeCount]struct {
	SpeedKmh  float64
	YuanPerKm float64
}{
	Driving:       {60.0, 0.8},
	HighSpeedRail: {250.0, 0.4},
	Flight:        {800.0, 0.6},
	Bus:           {40.0, 0.2},
}

const (
	// 全国范围内两枢纽间距离的上界（公里）
	BoundingDistanceKm = 6000.0
	// MaxTripHours is the bounding distance at bus speed.
	MaxTripHours = BoundingDistanceKm / 40.0
	// MaxTripYuan is the bounding distance at the driving rate.
	MaxTripYuan = BoundingDistanceKm * 0.8
)

// Info describes one leg of travel. Hours and Yuan are only meaningful
// when Reachable is true.
type Info struct {
	Reachable bool
	Hours     float64
	Yuan      float64
}

// Estimate computes the travel time and fare for covering distanceKm
// with the given mode between two hub nodes. Combinations the mode
// does not serve come back with Reachable set to false.
func Estimate(distanceKm float64, mode Mode, from, to *network.Node) Info {
	intraCity := from.CityId == to.CityId

	switch mode {
	case Flight:
		if intraCity || from.Type != network.Airport || to.Type != network.Airport {
			return Info{}
		}
	case HighSpeedRail:
		if intraCity || from.Type != network.RailStation || to.Type != network.RailStation {
			return Info{}
		}
	case Driving, Bus:
		if !intraCity && (from.Type != network.Landmark || to.Type != network.Landmark) {
			return Info{}
		}
		// 禁止同城同类型节点直连，如机场到机场
		if intraCity && from.Type == to.Type {
			return Info{}
		}
	}

	speed := attrs[mode].SpeedKmh
	if intraCity {
		// 市内速度降低
		if mode == Driving {
			speed = 60.0
		} else {
			speed = 40.0
		}
	}
	info := Info{
		Reachable: true,
		Hours:     distanceKm / speed,
		Yuan:      distanceKm * attrs[mode].YuanPerKm,
	}
	if mode == Bus && distanceKm > 300 {
		// 长途公交加价
		info.Yuan *= 1.5
	}
	return info
}

// WeightedCost folds travel time and fare into one comparable score.
// Both terms are normalized against the nationwide worst case so the
// two weights act on the same scale.
func WeightedCost(hours, yuan, timeWeight, costWeight float64) float64 {
	return (hours/MaxTripHours)*timeWeight + (yuan/MaxTripYuan)*costWeight
}
