package network

import (
	"fmt"

	"github.com/thunur/travel-route-planner/pkg/geometry"
)

// Network is the in-memory store of cities and hub nodes. Node and city
// ids are dense slice indices assigned in insertion order.
type Network struct {
	Nodes  []Node
	Cities []City
}

func NewNetwork() *Network {
	return &Network{Nodes: make([]Node, 0), Cities: make([]City, 0)}
}

func (n *Network) GetNode(id NodeId) *Node {
	if id < 0 || id >= len(n.Nodes) {
		panic(fmt.Sprintf("NodeId %d is not contained in the network.", id))
	}
	return &n.Nodes[id]
}

func (n *Network) GetNodes() []Node {
	return n.Nodes
}

func (n *Network) GetCity(id int) *City {
	if id < 0 || id >= len(n.Cities) {
		panic(fmt.Sprintf("CityId %d is not contained in the network.", id))
	}
	return &n.Cities[id]
}

func (n *Network) GetCities() []City {
	return n.Cities
}

func (n *Network) NodeCount() int {
	return len(n.Nodes)
}

func (n *Network) CityCount() int {
	return len(n.Cities)
}

// Contains reports whether id refers to a node of the network.
func (n *Network) Contains(id NodeId) bool {
	return id >= 0 && id < len(n.Nodes)
}

// FindNodeByName returns the id of the first node with the given name,
// or NoNode if no such node exists.
func (n *Network) FindNodeByName(name string) NodeId {
	for i := range n.Nodes {
		if n.Nodes[i].Name == name {
			return n.Nodes[i].Id
		}
	}
	return NoNode
}

// FindCityByName returns the id of the city with the given name, or -1.
func (n *Network) FindCityByName(name string) int {
	for i := range n.Cities {
		if n.Cities[i].Name == name {
			return n.Cities[i].Id
		}
	}
	return -1
}

// AddNode appends a hub node, creating the city on first sight. When a
// city already has a hub of the given type the earlier one keeps the
// role and the new node is still stored as a plain node.
func (n *Network) AddNode(cityName string, hubType HubType, name string, position geometry.Point) NodeId {
	cityId := n.FindCityByName(cityName)
	if cityId < 0 {
		cityId = len(n.Cities)
		n.Cities = append(n.Cities, City{
			Id:            cityId,
			Name:          cityName,
			LandmarkId:    NoNode,
			AirportId:     NoNode,
			RailStationId: NoNode,
		})
	}
	nodeId := len(n.Nodes)
	n.Nodes = append(n.Nodes, Node{
		Id:       nodeId,
		CityId:   cityId,
		Type:     hubType,
		Name:     name,
		Position: position,
	})
	city := &n.Cities[cityId]
	switch hubType {
	case Landmark:
		if city.LandmarkId == NoNode {
			city.LandmarkId = nodeId
		}
	case Airport:
		if city.AirportId == NoNode {
			city.AirportId = nodeId
		}
	case RailStation:
		if city.RailStationId == NoNode {
			city.RailStationId = nodeId
		}
	}
	return nodeId
}
