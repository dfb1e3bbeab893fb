package network

import (
	"github.com/thunur/travel-route-planner/pkg/geometry"
)

type NodeId = int

// NoNode marks an absent node reference, e.g. a city without an airport.
const NoNode NodeId = -1

// The hub category of a node. It decides which transport modes may use
// the node as an endpoint.
type HubType int

const (
	Landmark HubType = iota
	Airport
	RailStation
)

func (t HubType) String() string {
	return []string{"landmark", "airport", "hsr"}[t]
}

// 中文名称，用于输出展示
func (t HubType) LocalName() string {
	return []string{"地标", "机场", "高铁站"}[t]
}

// ParseHubType maps a data-file type string to a HubType. "railway" is
// accepted as an alias for "hsr".
func ParseHubType(s string) (HubType, bool) {
	switch s {
	case "landmark":
		return Landmark, true
	case "airport":
		return Airport, true
	case "hsr", "railway":
		return RailStation, true
	}
	return Landmark, false
}

// A single addressable point of the transport network.
type Node struct {
	Id       NodeId
	CityId   int
	Type     HubType
	Name     string
	Position geometry.Point
}

// A city and the ids of its representative hub nodes. An id of NoNode
// means the city has no hub of that type.
type City struct {
	Id            int
	Name          string
	LandmarkId    NodeId
	AirportId     NodeId
	RailStationId NodeId
}

// HubId returns the city's representative node for the given hub type.
func (c *City) HubId(t HubType) NodeId {
	switch t {
	case Landmark:
		return c.LandmarkId
	case Airport:
		return c.AirportId
	case RailStation:
		return c.RailStationId
	}
	return NoNode
}
