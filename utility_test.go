package terralib

import (
	"math"
	"testing"

	"github.com/paulmach/orb/maptile"
)

func TestConvert4326To3857(t *testing.T) {
	x, y := Convert4326To3857(180, 0)
	if math.Abs(x-20037508.34) > 1e-6 || math.Abs(y) > 1e-6 {
		t.Fatal(x, y)
	}
	x, y = Convert4326To3857(113.695688629, 29.971802123)
	t.Log(x, y)
	lon, lat := Convert3857To4326(x, y)
	if math.Abs(lon-113.695688629) > 1e-9 || math.Abs(lat-29.971802123) > 1e-9 {
		t.Fatal(lon, lat)
	}
}

func TestValidTileCoords(t *testing.T) {
	if !ValidTileCoords(0, 0, 0) || !ValidTileCoords(3, 1, 2) {
		t.Fatal("valid coords rejected")
	}
	for _, c := range [][3]int{{1, 0, 0}, {0, -1, 3}, {0, 0, -1}, {0, 0, 21}, {8, 0, 3}} {
		if ValidTileCoords(c[0], c[1], c[2]) {
			t.Fatal("invalid coords accepted", c)
		}
	}
}

func TestTileSpan(t *testing.T) {
	root := maptile.New(0, 0, 0)
	geo := TileSpan4326(root)
	if math.Abs(geo[0]+180) > 1e-9 || math.Abs(geo[2]-180) > 1e-9 {
		t.Fatal(geo)
	}
	if math.Abs(geo[1]+85.05112877980659) > 1e-6 || math.Abs(geo[3]-85.05112877980659) > 1e-6 {
		t.Fatal(geo)
	}
	xy := TileSpan3857(root)
	const worldEdge = 20037508.34
	for i, v := range []float64{-worldEdge, -worldEdge, worldEdge, worldEdge} {
		if math.Abs(xy[i]-v) > 1 {
			t.Fatal(i, xy)
		}
	}
	// z1的西北子瓦片应覆盖左上四分之一
	q := maptile.New(0, 0, 1)
	qxy := TileSpan3857(q)
	if math.Abs(qxy[0]+worldEdge) > 1 || math.Abs(qxy[2]) > 1 || math.Abs(qxy[1]) > 1 || math.Abs(qxy[3]-worldEdge) > 1 {
		t.Fatal(qxy)
	}
}

func TestSpanToWkt(t *testing.T) {
	wkt := SpanToWkt([4]float64{113.6, 115.0, 29.9, 31.3})
	t.Log(wkt)
	if wkt == "" {
		t.Fatal()
	}
}
