package path

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/thunur/travel-route-planner/pkg/network"
	"github.com/thunur/travel-route-planner/pkg/transport"
)

// 两座相距约一千公里的城市，各有地标、机场、高铁站
const twoCityCsv = `
北城,landmark,北城广场,39.9000,116.4000
北城,airport,北城机场,40.0500,116.6000
北城,railway,北城高铁站,39.8000,116.3000
南城,landmark,南城广场,31.2000,121.5000
南城,airport,南城机场,31.1500,121.3000
南城,railway,南城高铁站,31.1000,121.2000
`

// 一座只有地标的城市和一座只有机场的城市，彼此无法连通
const unreachableCsv = `
孤山,landmark,孤山亭,28.0000,119.9000
空港,airport,空港机场,34.5000,111.1000
`

// 同城两个节点相距不足百米
const nearbyCsv = `
近邻,landmark,近邻碑,31.0000,121.0000
近邻,railway,近邻站,31.0004,121.0000
`

// 两座没有高铁站的远距离城市
const noRailCsv = `
雁城,landmark,雁城广场,39.9000,116.4000
雁城,airport,雁城机场,40.0500,116.6000
鹭城,landmark,鹭城广场,23.1000,113.3000
鹭城,airport,鹭城机场,23.3900,113.3000
`

func checkModes(t *testing.T, route *Route, modesReference []transport.Mode) {
	t.Helper()
	if len(route.Segments) != len(modesReference) {
		t.Fatalf("route has %v segments, should be %v\n", len(route.Segments), len(modesReference))
	}
	for i, mode := range modesReference {
		if route.Segments[i].Mode != mode {
			t.Errorf("segment %v mode is %v, should be %v\n", i, route.Segments[i].Mode, mode)
		}
	}
}

func TestFastestRouteFliesBetweenDistantCities(t *testing.T) {
	net := network.NewNetworkFromCsvString(twoCityCsv)
	route, err := FindRoute(net, 0, 3, 1, 0)
	if err != nil {
		t.Fatalf("route failed: %v\n", err)
	}

	// 驾车去机场、飞行、再驾车进城
	checkModes(t, route, []transport.Mode{transport.Driving, transport.Flight, transport.Driving})
	nodesReference := []network.NodeId{0, 1, 4, 3}
	for i, s := range route.Segments {
		if s.From != nodesReference[i] || s.To != nodesReference[i+1] {
			t.Errorf("segment %v is %v -> %v, should be %v -> %v\n", i, s.From, s.To, nodesReference[i], nodesReference[i+1])
		}
	}
}

func TestBalancedRouteTakesTheTrain(t *testing.T) {
	net := network.NewNetworkFromCsvString(twoCityCsv)
	route, err := FindRoute(net, 0, 3, 0.5, 0.5)
	if err != nil {
		t.Fatalf("route failed: %v\n", err)
	}

	checkModes(t, route, []transport.Mode{transport.Bus, transport.HighSpeedRail, transport.Bus})
	if route.Segments[1].From != 2 || route.Segments[1].To != 5 {
		t.Errorf("rail segment is %v -> %v, should be 2 -> 5\n", route.Segments[1].From, route.Segments[1].To)
	}
}

func TestBalancedRouteFliesWhenNoRail(t *testing.T) {
	net := network.NewNetworkFromCsvString(noRailCsv)
	route, err := FindRoute(net, 0, 2, 0.5, 0.5)
	if err != nil {
		t.Fatalf("route failed: %v\n", err)
	}

	// 均衡权重下换乘段坐公交更划算
	checkModes(t, route, []transport.Mode{transport.Bus, transport.Flight, transport.Bus})
	if route.Segments[1].From != 1 || route.Segments[1].To != 3 {
		t.Errorf("flight segment is %v -> %v, should be 1 -> 3\n", route.Segments[1].From, route.Segments[1].To)
	}
}

func TestCheapestRouteRidesTheBus(t *testing.T) {
	net := network.NewNetworkFromCsvString(twoCityCsv)
	route, err := FindRoute(net, 0, 3, 0, 1)
	if err != nil {
		t.Fatalf("route failed: %v\n", err)
	}

	checkModes(t, route, []transport.Mode{transport.Bus})
	// 超过300公里的公交票价上浮一半
	surcharged := route.TotalDistanceKm * 0.2 * 1.5
	if math.Abs(route.TotalYuan-surcharged) > 1e-9 {
		t.Errorf("total cost is %v, should be %v\n", route.TotalYuan, surcharged)
	}
}

func TestIntraCityModeFollowsWeights(t *testing.T) {
	net := network.NewNetworkFromCsvString(twoCityCsv)

	fastest, err := FindRoute(net, 0, 1, 1, 0)
	if err != nil {
		t.Fatalf("route failed: %v\n", err)
	}
	checkModes(t, fastest, []transport.Mode{transport.Driving})

	cheapest, err := FindRoute(net, 0, 1, 0, 1)
	if err != nil {
		t.Fatalf("route failed: %v\n", err)
	}
	checkModes(t, cheapest, []transport.Mode{transport.Bus})
}

func TestWeightsTradeTimeForMoney(t *testing.T) {
	net := network.NewNetworkFromCsvString(twoCityCsv)
	fastest, err := FindRoute(net, 0, 3, 1, 0)
	if err != nil {
		t.Fatalf("route failed: %v\n", err)
	}
	cheapest, err := FindRoute(net, 0, 3, 0, 1)
	if err != nil {
		t.Fatalf("route failed: %v\n", err)
	}

	if fastest.TotalHours > cheapest.TotalHours {
		t.Errorf("fastest route takes %v hours, cheapest only %v\n", fastest.TotalHours, cheapest.TotalHours)
	}
	if cheapest.TotalYuan > fastest.TotalYuan {
		t.Errorf("cheapest route costs %v yuan, fastest only %v\n", cheapest.TotalYuan, fastest.TotalYuan)
	}
}

func TestRouteToSameNode(t *testing.T) {
	net := network.NewNetworkFromCsvString(twoCityCsv)
	route, err := FindRoute(net, 2, 2, 0.5, 0.5)
	if err != nil {
		t.Fatalf("route failed: %v\n", err)
	}
	if len(route.Segments) != 0 {
		t.Errorf("route has %v segments, should be empty\n", len(route.Segments))
	}
	if route.TotalHours != 0 || route.TotalYuan != 0 || route.TotalDistanceKm != 0 {
		t.Errorf("route totals are %v/%v/%v, should all be zero\n", route.TotalHours, route.TotalYuan, route.TotalDistanceKm)
	}
}

func TestRouteWithInvalidNodes(t *testing.T) {
	net := network.NewNetworkFromCsvString(twoCityCsv)
	if _, err := FindRoute(net, -1, 3, 0.5, 0.5); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("error is %v, should be %v\n", err, ErrInvalidNode)
	}
	if _, err := FindRoute(net, 0, 99, 0.5, 0.5); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("error is %v, should be %v\n", err, ErrInvalidNode)
	}
}

func TestUnreachableNodes(t *testing.T) {
	net := network.NewNetworkFromCsvString(unreachableCsv)
	if _, err := FindRoute(net, 0, 1, 0.5, 0.5); !errors.Is(err, ErrUnreachable) {
		t.Errorf("error is %v, should be %v\n", err, ErrUnreachable)
	}

	// 两节点虽同城且类型不同，但间距在阈值之内，不建边
	nearby := network.NewNetworkFromCsvString(nearbyCsv)
	if _, err := FindRoute(nearby, 0, 1, 0.5, 0.5); !errors.Is(err, ErrUnreachable) {
		t.Errorf("error is %v, should be %v\n", err, ErrUnreachable)
	}

	dijkstra := NewDijkstra(net, 0.5, 0.5)
	if cost := dijkstra.ComputeShortestPath(1, 0); cost != -1 {
		t.Errorf("cost is %v, should be %v\n", cost, -1)
	}
	if path := dijkstra.GetPath(1, 0); len(path) != 0 {
		t.Errorf("path has %v nodes, should be empty\n", len(path))
	}
}

func TestSearchConsistency(t *testing.T) {
	net := network.NewNetworkFromCsvString(twoCityCsv)
	dijkstra := NewDijkstra(net, 0.3, 0.7)
	cost := dijkstra.ComputeShortestPath(0, 5)
	if cost < 0 {
		t.Fatalf("cost is %v, should be reachable\n", cost)
	}

	route := dijkstra.GetRoute(0, 5)
	recomputed := transport.WeightedCost(route.TotalHours, route.TotalYuan, 0.3, 0.7)
	if math.Abs(cost-recomputed) > 1e-9 {
		t.Errorf("search cost is %v, route totals give %v\n", cost, recomputed)
	}

	nodePath := dijkstra.GetPath(0, 5)
	if len(nodePath) != len(route.Segments)+1 {
		t.Fatalf("path has %v nodes for %v segments\n", len(nodePath), len(route.Segments))
	}
	if nodePath[0] != 0 || nodePath[len(nodePath)-1] != 5 {
		t.Errorf("path runs %v -> %v, should be 0 -> 5\n", nodePath[0], nodePath[len(nodePath)-1])
	}
	for i, s := range route.Segments {
		if s.From != nodePath[i] || s.To != nodePath[i+1] {
			t.Errorf("segment %v is %v -> %v, should be %v -> %v\n", i, s.From, s.To, nodePath[i], nodePath[i+1])
		}
	}

	var totalHours, totalYuan, totalDistance float64
	for _, s := range route.Segments {
		totalHours += s.Hours
		totalYuan += s.Yuan
		totalDistance += s.DistanceKm
	}
	if math.Abs(route.TotalHours-totalHours) > 1e-9 ||
		math.Abs(route.TotalYuan-totalYuan) > 1e-9 ||
		math.Abs(route.TotalDistanceKm-totalDistance) > 1e-9 {
		t.Errorf("route totals %v/%v/%v do not match segment sums %v/%v/%v\n",
			route.TotalHours, route.TotalYuan, route.TotalDistanceKm, totalHours, totalYuan, totalDistance)
	}

	if dijkstra.GetPqPops() == 0 || dijkstra.GetPqUpdates() == 0 || dijkstra.GetRelaxationAttempts() == 0 {
		t.Errorf("search counters should not be zero: pops %v, updates %v, attempts %v\n",
			dijkstra.GetPqPops(), dijkstra.GetPqUpdates(), dijkstra.GetRelaxationAttempts())
	}
}

func TestDeterministicResults(t *testing.T) {
	net := network.NewNetworkFromCsvString(twoCityCsv)
	first, err := FindRoute(net, 0, 3, 0.5, 0.5)
	if err != nil {
		t.Fatalf("route failed: %v\n", err)
	}
	second, err := FindRoute(net, 0, 3, 0.5, 0.5)
	if err != nil {
		t.Fatalf("route failed: %v\n", err)
	}

	if len(first.Segments) != len(second.Segments) {
		t.Fatalf("runs returned %v and %v segments\n", len(first.Segments), len(second.Segments))
	}
	for i := range first.Segments {
		if first.Segments[i] != second.Segments[i] {
			t.Errorf("segment %v differs between runs: %v and %v\n", i, first.Segments[i], second.Segments[i])
		}
	}
}

func BenchmarkDijkstra(b *testing.B) {
	net := network.NewDefaultNetwork()
	// 内置数据集上的起终点对
	targets := [][2]network.NodeId{
		{0, 3},
		{0, 34},
		{1, 5},
		{6, 12},
		{12, 34},
		{3, 6}}
	dijkstra := NewDijkstra(net, 0.5, 0.5)
	for n := 0; n < b.N; n++ {
		pqPops := 0
		for i, target := range targets {
			origin := target[0]
			destination := target[1]

			cost := dijkstra.ComputeShortestPath(origin, destination)
			pqPops += dijkstra.GetPqPops()
			if cost < 0 {
				b.Fatalf("case %v (%v -> %v) is unreachable\n", i, origin, destination)
			}
			path := dijkstra.GetPath(origin, destination)
			if path[0] != origin || path[len(path)-1] != destination {
				b.Errorf("case %v path runs %v -> %v, should be %v -> %v\n",
					i, path[0], path[len(path)-1], origin, destination)
			}
		}
		fmt.Printf("Average pq pops: %d\n", pqPops/len(targets))
	}
}
