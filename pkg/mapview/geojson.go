package mapview

import (
	"encoding/json"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/thunur/travel-route-planner/pkg/network"
	"github.com/thunur/travel-route-planner/pkg/network/path"
	"github.com/thunur/travel-route-planner/pkg/slice"
)

// RouteFeatureCollection converts a route into GeoJSON, one LineString
// per segment plus one Point per visited hub. Coordinates follow the
// GeoJSON convention of longitude before latitude.
func RouteFeatureCollection(net *network.Network, route *path.Route) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, s := range route.Segments {
		from := net.GetNode(s.From)
		to := net.GetNode(s.To)
		line := geojson.NewFeature(orb.LineString{
			{from.Position.Lon(), from.Position.Lat()},
			{to.Position.Lon(), to.Position.Lat()},
		})
		line.Properties["from"] = from.Name
		line.Properties["to"] = to.Name
		line.Properties["mode"] = s.Mode.String()
		line.Properties["distance_km"] = s.DistanceKm
		line.Properties["time_hours"] = s.Hours
		line.Properties["cost_yuan"] = s.Yuan
		line.Properties["stroke"] = ModeColor(s.Mode)
		fc.Append(line)
	}

	visited := make([]network.NodeId, 0)
	for _, s := range route.Segments {
		for _, id := range []network.NodeId{s.From, s.To} {
			if slice.Contains(visited, id) {
				continue
			}
			visited = append(visited, id)
			fc.Append(nodeFeature(net, id))
		}
	}
	return fc
}

// NetworkFeatureCollection converts every hub node into a GeoJSON point.
func NetworkFeatureCollection(net *network.Network) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, node := range net.GetNodes() {
		fc.Append(nodeFeature(net, node.Id))
	}
	return fc
}

func nodeFeature(net *network.Network, id network.NodeId) *geojson.Feature {
	node := net.GetNode(id)
	point := geojson.NewFeature(orb.Point{node.Position.Lon(), node.Position.Lat()})
	point.Properties["name"] = node.Name
	point.Properties["type"] = node.Type.String()
	point.Properties["city"] = net.GetCity(node.CityId).Name
	return point
}

// WriteGeoJson stores a feature collection in a file.
func WriteGeoJson(fc *geojson.FeatureCollection, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(fc)
}
