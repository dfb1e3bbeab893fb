package path

import (
	"math"
	"sync"

	"github.com/thunur/travel-route-planner/pkg/network"
	"github.com/thunur/travel-route-planner/pkg/transport"
)

// MaxTourStops bounds the exact tour solver. The dynamic program holds
// 2^n * n states, so the limit keeps memory and runtime small.
const MaxTourStops = 10

// SolveTsp finds the cheapest closed tour that starts at stops[0],
// visits every other stop exactly once and returns to stops[0]. Legs
// between consecutive tour stops are full multi-modal routes.
func SolveTsp(n *network.Network, stops []network.NodeId, timeWeight, costWeight float64) (*Route, error) {
	if len(stops) < 2 {
		return nil, ErrTooFewStops
	}
	if len(stops) > MaxTourStops {
		return nil, ErrTooManyStops
	}
	for _, id := range stops {
		if !n.Contains(id) {
			return nil, ErrInvalidNode
		}
	}

	ids := stops
	numNodes := len(ids)

	// Pairwise leg costs. Legs are independent searches, so the rows
	// are filled in parallel. A pair counts as unconnected when no
	// route exists or when the leg covers no distance, which happens
	// for duplicated stops.
	costMatrix := make([][]float64, numNodes)
	var wg sync.WaitGroup
	for i := 0; i < numNodes; i++ {
		costMatrix[i] = make([]float64, numNodes)
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < numNodes; j++ {
				if i == j {
					continue
				}
				costMatrix[i][j] = math.Inf(1)
				leg, err := FindRoute(n, ids[i], ids[j], timeWeight, costWeight)
				if err == nil && leg.TotalDistanceKm > 0 {
					costMatrix[i][j] = transport.WeightedCost(leg.TotalHours, leg.TotalYuan, timeWeight, costWeight)
				}
			}
		}(i)
	}
	wg.Wait()

	numSubsets := 1 << numNodes
	dpTable := make([][]float64, numSubsets)
	pathTable := make([][]int, numSubsets)
	for mask := 0; mask < numSubsets; mask++ {
		dpTable[mask] = make([]float64, numNodes)
		pathTable[mask] = make([]int, numNodes)
		for j := 0; j < numNodes; j++ {
			dpTable[mask][j] = math.Inf(1)
			pathTable[mask][j] = -1
		}
	}
	dpTable[1][0] = 0

	for mask := 1; mask < numSubsets; mask++ {
		for u := 0; u < numNodes; u++ {
			if mask&(1<<u) == 0 || math.IsInf(dpTable[mask][u], 1) {
				continue
			}
			for v := 0; v < numNodes; v++ {
				if mask&(1<<v) != 0 || math.IsInf(costMatrix[u][v], 1) {
					continue
				}
				nextMask := mask | (1 << v)
				if dpTable[mask][u]+costMatrix[u][v] < dpTable[nextMask][v] {
					dpTable[nextMask][v] = dpTable[mask][u] + costMatrix[u][v]
					pathTable[nextMask][v] = u
				}
			}
		}
	}

	finalMask := numSubsets - 1
	minTourCost := math.Inf(1)
	tourEnd := -1
	for i := 1; i < numNodes; i++ {
		if math.IsInf(dpTable[finalMask][i], 1) || math.IsInf(costMatrix[i][0], 1) {
			continue
		}
		if dpTable[finalMask][i]+costMatrix[i][0] < minTourCost {
			minTourCost = dpTable[finalMask][i] + costMatrix[i][0]
			tourEnd = i
		}
	}
	if tourEnd == -1 {
		return nil, ErrNoFeasibleTour
	}

	// 先接上返回起点的收尾段，再沿前驱表逆序向前补全
	route := &Route{}
	leg, err := FindRoute(n, ids[tourEnd], ids[0], timeWeight, costWeight)
	if err != nil {
		return nil, err
	}
	route.Prepend(leg)
	currentIdx, currentMask := tourEnd, finalMask
	for currentIdx != 0 {
		prevIdx := pathTable[currentMask][currentIdx]
		leg, err := FindRoute(n, ids[prevIdx], ids[currentIdx], timeWeight, costWeight)
		if err != nil {
			return nil, err
		}
		route.Prepend(leg)
		currentMask ^= 1 << currentIdx
		currentIdx = prevIdx
	}
	return route, nil
}
