package geometry

import (
	"math"
	"testing"
)

func TestHaversineIdentity(t *testing.T) {
	p := MakePoint(39.9163, 116.3972)
	if d := p.DistanceTo(p); d != 0 {
		t.Errorf("distance to itself is %v, should be 0", d)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	points := []Point{
		MakePoint(39.9163, 116.3972),
		MakePoint(31.2393, 121.4839),
		MakePoint(-33.8688, 151.2093),
		MakePoint(0, 0),
	}
	for i, a := range points {
		for j, b := range points {
			d1 := a.DistanceTo(b)
			d2 := b.DistanceTo(a)
			if math.Abs(d1-d2) > 1e-9 {
				t.Errorf("distance %v->%v is %v, reverse is %v", i, j, d1, d2)
			}
		}
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// 故宫 -> 外滩
	beijing := MakePoint(39.9163, 116.3972)
	shanghai := MakePoint(31.2393, 121.4839)
	d := beijing.DistanceTo(shanghai)
	if d < 1050 || d > 1090 {
		t.Errorf("Beijing-Shanghai distance is %v, should be around 1067 km", d)
	}
}
