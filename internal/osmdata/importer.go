package osmdata

import (
	"math"
	"strings"

	"github.com/thunur/travel-route-planner/pkg/geometry"
	"github.com/thunur/travel-route-planner/pkg/network"
)

// 枢纽候选与城市锚点之间允许的最大距离（公里）
const (
	airportRadiusKm  = 60.0
	stationRadiusKm  = 30.0
	landmarkRadiusKm = 30.0
)

// anchor is a populated place that becomes a city of the network.
type anchor struct {
	name     string
	position geometry.Point
}

// candidate is a tagged OSM element that may become a hub node.
type candidate struct {
	name     string
	hubType  network.HubType
	position geometry.Point
}

// Importer reads OSM data and distills it into a travel network. Cities
// come from place tags, hubs from aeroway, railway and tourism tags.
type Importer struct {
	filename   string
	nodeCoords map[int64]geometry.Point
	anchors    []anchor
	candidates []candidate
}

func NewImporter(filename string) *Importer {
	return &Importer{
		filename:   filename,
		nodeCoords: make(map[int64]geometry.Point),
		anchors:    make([]anchor, 0),
		candidates: make([]candidate, 0),
	}
}

// Import reads the input file. Files ending in .pbf go through the
// protobuf decoder, everything else is parsed as OSM XML.
func (im *Importer) Import() error {
	if strings.HasSuffix(im.filename, ".pbf") {
		return im.importPbf()
	}
	return im.importXml()
}

// classify sorts one tagged element into the anchor or candidate lists.
// Unnamed elements are dropped.
func (im *Importer) classify(tags map[string]string, position geometry.Point) {
	name := tags["name"]
	if name == "" {
		return
	}
	if place := tags["place"]; place == "city" || place == "town" {
		im.anchors = append(im.anchors, anchor{name: name, position: position})
	}
	if tags["aeroway"] == "aerodrome" {
		im.candidates = append(im.candidates, candidate{name: name, hubType: network.Airport, position: position})
	}
	if tags["railway"] == "station" {
		im.candidates = append(im.candidates, candidate{name: name, hubType: network.RailStation, position: position})
	}
	if tags["tourism"] == "attraction" {
		im.candidates = append(im.candidates, candidate{name: name, hubType: network.Landmark, position: position})
	}
}

// centroid averages the way member coordinates that were seen in the
// node pass. Ways without any resolvable member are reported as not ok.
func (im *Importer) centroid(nodeIds []int64) (geometry.Point, bool) {
	var latSum, lonSum float64
	found := 0
	for _, id := range nodeIds {
		if point, ok := im.nodeCoords[id]; ok {
			latSum += point.Lat()
			lonSum += point.Lon()
			found++
		}
	}
	if found == 0 {
		return geometry.Point{}, false
	}
	return geometry.MakePoint(latSum/float64(found), lonSum/float64(found)), true
}

func hubRadiusKm(hubType network.HubType) float64 {
	switch hubType {
	case network.Airport:
		return airportRadiusKm
	case network.RailStation:
		return stationRadiusKm
	}
	return landmarkRadiusKm
}

// BuildNetwork assigns every candidate to its nearest anchor and keeps
// the closest candidate per hub type and city. A city without a
// landmark candidate uses the anchor itself as its landmark, so every
// city stays routable by road.
func (im *Importer) BuildNetwork() *network.Network {
	type chosen struct {
		candidate  candidate
		distanceKm float64
		valid      bool
	}
	best := make([]map[network.HubType]chosen, len(im.anchors))
	for i := range best {
		best[i] = make(map[network.HubType]chosen)
	}

	for _, c := range im.candidates {
		nearest := -1
		nearestDist := math.Inf(1)
		for i, a := range im.anchors {
			if d := c.position.DistanceTo(a.position); d < nearestDist {
				nearestDist = d
				nearest = i
			}
		}
		if nearest < 0 || nearestDist > hubRadiusKm(c.hubType) {
			continue
		}
		current := best[nearest][c.hubType]
		if !current.valid || nearestDist < current.distanceKm {
			best[nearest][c.hubType] = chosen{candidate: c, distanceKm: nearestDist, valid: true}
		}
	}

	result := network.NewNetwork()
	for i, a := range im.anchors {
		if landmark := best[i][network.Landmark]; landmark.valid {
			result.AddNode(a.name, network.Landmark, landmark.candidate.name, landmark.candidate.position)
		} else {
			result.AddNode(a.name, network.Landmark, a.name, a.position)
		}
		if airport := best[i][network.Airport]; airport.valid {
			result.AddNode(a.name, network.Airport, airport.candidate.name, airport.candidate.position)
		}
		if station := best[i][network.RailStation]; station.valid {
			result.AddNode(a.name, network.RailStation, station.candidate.name, station.candidate.position)
		}
	}
	return result
}
