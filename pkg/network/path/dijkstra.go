package path

import (
	"container/heap"

	"github.com/thunur/travel-route-planner/pkg/network"
	"github.com/thunur/travel-route-planner/pkg/queue"
	"github.com/thunur/travel-route-planner/pkg/slice"
	"github.com/thunur/travel-route-planner/pkg/transport"
)

// Node pairs closer than this are not connected at all.
const minSegmentDistanceKm = 0.1

// Dijkstra searches the network for the route with the lowest weighted
// cost. Edges are not materialized; every sufficiently distant node
// pair is probed with all transport modes during relaxation.
type Dijkstra struct {
	network            *network.Network
	timeWeight         float64
	costWeight         float64
	dijkstraItems      []*queue.Item
	modeToReach        []transport.Mode
	settled            []bool
	pqPops             int
	pqUpdates          int
	relaxationAttempts int
	relaxedEdges       int
}

func NewDijkstra(n *network.Network, timeWeight, costWeight float64) *Dijkstra {
	return &Dijkstra{network: n, timeWeight: timeWeight, costWeight: costWeight}
}

// ComputeShortestPath runs the search and returns the weighted cost of
// the best route from origin to destination, or -1 when the destination
// cannot be reached.
func (d *Dijkstra) ComputeShortestPath(origin, destination network.NodeId) float64 {
	nodeCount := d.network.NodeCount()
	d.dijkstraItems = make([]*queue.Item, nodeCount)
	d.modeToReach = make([]transport.Mode, nodeCount)
	d.settled = make([]bool, nodeCount)
	originItem := queue.NewQueueItem(origin, 0, -1)
	d.dijkstraItems[origin] = originItem

	pq := make(queue.Queue, 0)
	heap.Init(&pq)
	heap.Push(&pq, originItem)

	d.pqPops = 0
	d.pqUpdates = 0
	d.relaxationAttempts = 0
	d.relaxedEdges = 0

	for len(pq) > 0 {
		currentPqItem := heap.Pop(&pq).(*queue.Item)
		currentNodeId := currentPqItem.ItemId
		d.pqPops++
		d.settled[currentNodeId] = true

		if currentNodeId == destination {
			break
		}

		fromNode := d.network.GetNode(currentNodeId)
		for successor := 0; successor < nodeCount; successor++ {
			if d.settled[successor] {
				continue
			}
			toNode := d.network.GetNode(successor)
			distance := fromNode.Position.DistanceTo(toNode.Position)
			if distance <= minSegmentDistanceKm {
				// 忽略距离过近的节点对
				continue
			}

			for mode := transport.Driving; mode < transport.ModeCount; mode++ {
				d.relaxationAttempts++
				travel := transport.Estimate(distance, mode, fromNode, toNode)
				if !travel.Reachable {
					continue
				}
				newPriority := currentPqItem.Priority + transport.WeightedCost(travel.Hours, travel.Yuan, d.timeWeight, d.costWeight)

				if d.dijkstraItems[successor] == nil {
					pqItem := queue.NewQueueItem(successor, newPriority, currentNodeId)
					d.dijkstraItems[successor] = pqItem
					d.modeToReach[successor] = mode
					heap.Push(&pq, pqItem)
					d.pqUpdates++
				} else if newPriority < d.dijkstraItems[successor].Priority {
					pq.Update(d.dijkstraItems[successor], newPriority)
					d.dijkstraItems[successor].Predecessor = currentNodeId
					d.modeToReach[successor] = mode
					d.pqUpdates++
				}
				d.relaxedEdges++
			}
		}
	}

	cost := -1.0 // by default a non-existing path has cost -1
	if d.dijkstraItems[destination] != nil {
		cost = d.dijkstraItems[destination].Priority
	}
	return cost
}

// GetPath returns the node ids on the computed path from origin to
// destination, both included.
func (d *Dijkstra) GetPath(origin, destination network.NodeId) []network.NodeId {
	path := make([]network.NodeId, 0) // by default, a non-existing path is an empty slice
	if d.dijkstraItems[destination] != nil {
		for nodeId := destination; nodeId != -1; nodeId = d.dijkstraItems[nodeId].Predecessor {
			path = append(path, nodeId)
		}
		slice.ReverseInPlace(path)
	}
	return path
}

// GetRoute rebuilds the segments along the computed path. Distances and
// travel figures are recomputed per segment with the mode the search
// chose for it.
func (d *Dijkstra) GetRoute(origin, destination network.NodeId) *Route {
	route := &Route{}
	nodePath := d.GetPath(origin, destination)
	for i := 0; i+1 < len(nodePath); i++ {
		fromNode := d.network.GetNode(nodePath[i])
		toNode := d.network.GetNode(nodePath[i+1])
		mode := d.modeToReach[toNode.Id]
		distance := fromNode.Position.DistanceTo(toNode.Position)
		travel := transport.Estimate(distance, mode, fromNode, toNode)
		route.add(Segment{
			From:       fromNode.Id,
			To:         toNode.Id,
			Mode:       mode,
			DistanceKm: distance,
			Hours:      travel.Hours,
			Yuan:       travel.Yuan,
		})
	}
	return route
}

func (d *Dijkstra) GetPqPops() int             { return d.pqPops }
func (d *Dijkstra) GetPqUpdates() int          { return d.pqUpdates }
func (d *Dijkstra) GetEdgeRelaxations() int    { return d.relaxedEdges }
func (d *Dijkstra) GetRelaxationAttempts() int { return d.relaxationAttempts }

// FindRoute computes the multi-modal route with the lowest weighted
// cost between two hub nodes. A route from a node to itself is empty
// and not an error.
func FindRoute(n *network.Network, start, end network.NodeId, timeWeight, costWeight float64) (*Route, error) {
	if !n.Contains(start) || !n.Contains(end) {
		return nil, ErrInvalidNode
	}
	dijkstra := NewDijkstra(n, timeWeight, costWeight)
	if cost := dijkstra.ComputeShortestPath(start, end); cost < 0 {
		return nil, ErrUnreachable
	}
	return dijkstra.GetRoute(start, end), nil
}
