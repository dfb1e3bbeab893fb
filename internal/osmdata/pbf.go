package osmdata

import (
	"os"
	"runtime"
	"sync"

	"github.com/qedus/osmpbf"

	"github.com/thunur/travel-route-planner/pkg/geometry"
)

// taggedElement carries a classified element from the decoder loop to
// the collector goroutine.
type taggedElement struct {
	tags     map[string]string
	position geometry.Point
}

// importPbf decodes the file in two passes. The first pass stores every
// node coordinate and classifies tagged nodes, the second pass resolves
// ways against the stored coordinates.
func (im *Importer) importPbf() error {
	if err := im.collectPbfNodes(); err != nil {
		return err
	}

	file, err := os.Open(im.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return err
	}

	var wg sync.WaitGroup
	elements := make(chan taggedElement, 1000)

	// 启动处理协程
	wg.Add(1)
	go func() {
		defer wg.Done()
		for element := range elements {
			im.classify(element.tags, element.position)
		}
	}()

	for {
		if v, err := decoder.Decode(); err == nil {
			switch v := v.(type) {
			case *osmpbf.Way:
				if !relevantTags(v.Tags) {
					continue
				}
				if position, ok := im.centroid(v.NodeIDs); ok {
					elements <- taggedElement{tags: v.Tags, position: position}
				}
			}
		} else {
			close(elements)
			break
		}
	}

	wg.Wait()
	return nil
}

func (im *Importer) collectPbfNodes() error {
	file, err := os.Open(im.filename)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return err
	}

	for {
		if v, err := decoder.Decode(); err == nil {
			switch v := v.(type) {
			case *osmpbf.Node:
				position := geometry.MakePoint(v.Lat, v.Lon)
				im.nodeCoords[v.ID] = position
				if relevantTags(v.Tags) {
					im.classify(v.Tags, position)
				}
			}
		} else {
			break
		}
	}
	return nil
}

// relevantTags filters early so the channel only carries elements the
// classifier can use.
func relevantTags(tags map[string]string) bool {
	if len(tags) == 0 {
		return false
	}
	if place := tags["place"]; place == "city" || place == "town" {
		return true
	}
	return tags["aeroway"] == "aerodrome" || tags["railway"] == "station" || tags["tourism"] == "attraction"
}
