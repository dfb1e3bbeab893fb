package transport

import (
	"math"
	"testing"

	"github.com/thunur/travel-route-planner/pkg/network"
)

func testNode(id, cityId int, hubType network.HubType) *network.Node {
	return &network.Node{Id: id, CityId: cityId, Type: hubType}
}

func TestEstimateEligibility(t *testing.T) {
	landmarkA := testNode(0, 0, network.Landmark)
	airportA := testNode(1, 0, network.Airport)
	railA := testNode(2, 0, network.RailStation)
	landmarkB := testNode(3, 1, network.Landmark)
	airportB := testNode(4, 1, network.Airport)
	railB := testNode(5, 1, network.RailStation)

	cases := []struct {
		name      string
		mode      Mode
		from, to  *network.Node
		reachable bool
	}{
		{"flight between airports", Flight, airportA, airportB, true},
		{"flight from landmark", Flight, landmarkA, airportB, false},
		{"flight within one city", Flight, airportA, testNode(6, 0, network.Airport), false},
		{"rail between stations", HighSpeedRail, railA, railB, true},
		{"rail from airport", HighSpeedRail, airportA, railB, false},
		{"rail within one city", HighSpeedRail, railA, testNode(7, 0, network.RailStation), false},
		{"driving between landmarks", Driving, landmarkA, landmarkB, true},
		{"driving landmark to airport across cities", Driving, landmarkA, airportB, false},
		{"driving landmark to airport in one city", Driving, landmarkA, airportA, true},
		{"driving between same hub types in one city", Driving, landmarkA, testNode(8, 0, network.Landmark), false},
		{"bus between landmarks", Bus, landmarkA, landmarkB, true},
		{"bus rail to airport in one city", Bus, railA, airportA, true},
		{"bus station to station across cities", Bus, railA, railB, false},
	}
	for _, c := range cases {
		info := Estimate(100, c.mode, c.from, c.to)
		if info.Reachable != c.reachable {
			t.Errorf("%v: reachable is %v, should be %v\n", c.name, info.Reachable, c.reachable)
		}
	}
}

func TestEstimateSpeedsAndRates(t *testing.T) {
	landmarkA := testNode(0, 0, network.Landmark)
	airportA := testNode(1, 0, network.Airport)
	railA := testNode(2, 0, network.RailStation)
	landmarkB := testNode(3, 1, network.Landmark)
	airportB := testNode(4, 1, network.Airport)
	railB := testNode(5, 1, network.RailStation)

	cases := []struct {
		name        string
		mode        Mode
		from, to    *network.Node
		distance    float64
		hours, yuan float64
	}{
		{"flight", Flight, airportA, airportB, 800, 1.0, 480},
		{"rail", HighSpeedRail, railA, railB, 500, 2.0, 200},
		{"driving across cities", Driving, landmarkA, landmarkB, 120, 2.0, 96},
		{"bus across cities", Bus, landmarkA, landmarkB, 200, 5.0, 40},
		{"driving within a city", Driving, landmarkA, airportA, 30, 0.5, 24},
		{"bus within a city", Bus, landmarkA, railA, 20, 0.5, 4},
	}
	for _, c := range cases {
		info := Estimate(c.distance, c.mode, c.from, c.to)
		if !info.Reachable {
			t.Errorf("%v: should be reachable\n", c.name)
			continue
		}
		if math.Abs(info.Hours-c.hours) > 1e-9 {
			t.Errorf("%v: time is %v, should be %v\n", c.name, info.Hours, c.hours)
		}
		if math.Abs(info.Yuan-c.yuan) > 1e-9 {
			t.Errorf("%v: cost is %v, should be %v\n", c.name, info.Yuan, c.yuan)
		}
	}
}

func TestEstimateBusSurcharge(t *testing.T) {
	landmarkA := testNode(0, 0, network.Landmark)
	landmarkB := testNode(1, 1, network.Landmark)

	// 300公里整不加价
	info := Estimate(300, Bus, landmarkA, landmarkB)
	if math.Abs(info.Yuan-60) > 1e-9 {
		t.Errorf("cost at 300km is %v, should be %v\n", info.Yuan, 60)
	}

	info = Estimate(400, Bus, landmarkA, landmarkB)
	if math.Abs(info.Yuan-120) > 1e-9 {
		t.Errorf("cost at 400km is %v, should be %v\n", info.Yuan, 120)
	}

	// 加价只作用于公交
	info = Estimate(400, Driving, landmarkA, landmarkB)
	if math.Abs(info.Yuan-320) > 1e-9 {
		t.Errorf("driving cost at 400km is %v, should be %v\n", info.Yuan, 320)
	}
}

func TestWeightedCost(t *testing.T) {
	// 全时间或全费用达到上界时得分为对应权重
	if got := WeightedCost(MaxTripHours, 0, 1, 0); math.Abs(got-1) > 1e-9 {
		t.Errorf("weighted cost is %v, should be %v\n", got, 1.0)
	}
	if got := WeightedCost(0, MaxTripYuan, 0, 1); math.Abs(got-1) > 1e-9 {
		t.Errorf("weighted cost is %v, should be %v\n", got, 1.0)
	}
	if got := WeightedCost(MaxTripHours, MaxTripYuan, 0.5, 0.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("weighted cost is %v, should be %v\n", got, 1.0)
	}
	if got := WeightedCost(75, 1200, 0.5, 0.5); math.Abs(got-0.375) > 1e-9 {
		t.Errorf("weighted cost is %v, should be %v\n", got, 0.375)
	}
}

func TestModeNames(t *testing.T) {
	if Flight.String() != "flight" {
		t.Errorf("mode name is %v, should be %v\n", Flight.String(), "flight")
	}
	if HighSpeedRail.String() != "high_speed_rail" {
		t.Errorf("mode name is %v, should be %v\n", HighSpeedRail.String(), "high_speed_rail")
	}
	if HighSpeedRail.LocalName() != "高铁" {
		t.Errorf("mode local name is %v, should be %v\n", HighSpeedRail.LocalName(), "高铁")
	}
	if len(Modes()) != int(ModeCount) {
		t.Errorf("mode count is %v, should be %v\n", len(Modes()), int(ModeCount))
	}
}
