package osmdata

import (
	"encoding/xml"
	"os"

	"github.com/paulmach/osm"

	"github.com/thunur/travel-route-planner/pkg/geometry"
)

// importXml parses a plain .osm file. The extracts this importer is fed
// with are small, so the document is unmarshalled in one piece.
func (im *Importer) importXml() error {
	data, err := os.ReadFile(im.filename)
	if err != nil {
		return err
	}
	return im.parseXml(data)
}

func (im *Importer) parseXml(data []byte) error {
	var doc osm.OSM
	if err := xml.Unmarshal(data, &doc); err != nil {
		return err
	}

	for _, node := range doc.Nodes {
		position := geometry.MakePoint(node.Lat, node.Lon)
		im.nodeCoords[int64(node.ID)] = position
		tags := tagMap(node.Tags)
		if relevantTags(tags) {
			im.classify(tags, position)
		}
	}

	for _, way := range doc.Ways {
		tags := tagMap(way.Tags)
		if !relevantTags(tags) {
			continue
		}
		nodeIds := make([]int64, 0, len(way.Nodes))
		for _, wayNode := range way.Nodes {
			nodeIds = append(nodeIds, int64(wayNode.ID))
		}
		if position, ok := im.centroid(nodeIds); ok {
			im.classify(tags, position)
		}
	}
	return nil
}

func tagMap(tags osm.Tags) map[string]string {
	m := make(map[string]string, len(tags))
	for _, tag := range tags {
		m[tag.Key] = tag.Value
	}
	return m
}
