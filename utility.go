package terralib

import (
	"fmt"
	"math"

	"github.com/paulmach/orb/maptile"
)

const (
	degToRad = math.Pi / 180

	xr = 20037508.34 / 180
	yr = xr / degToRad
	tr = degToRad / 2
)

func PointsToWkt(lon1, lon2, lat1, lat2 float64) string {
	return fmt.Sprintf("POLYGON((%[1]f %[3]f, %[1]f %[4]f, %[2]f %[4]f, %[2]f %[3]f, %[1]f %[3]f))", lon1, lon2, lat1, lat2)
}

func SpanToWkt(span [4]float64) string {
	return PointsToWkt(span[0], span[1], span[2], span[3])
}

func Convert4326To3857(lon, lat float64) (lonIn3857, latIn3857 float64) {
	lonIn3857 = lon * xr
	latIn3857 = math.Log(math.Tan((90+lat)*tr)) * yr
	return
}

func Convert3857To4326(lonIn3857, latIn3857 float64) (lon, lat float64) {
	lon = lonIn3857 / xr
	lat = math.Atan(math.Pow(math.E, latIn3857/yr))/tr - 90
	return
}

// 瓦片坐标是否在有效范围内
func ValidTileCoords(x, y, z int) bool {
	if z < MIN_TILE_ZOOM || z > MAX_TILE_ZOOM {
		return false
	}
	n := 1 << z
	return x >= 0 && x < n && y >= 0 && y < n
}

// 瓦片的经纬度范围 [west, south, east, north]
func TileSpan4326(t maptile.Tile) (span [4]float64) {
	b := t.Bound()
	span[0] = b.Min[0]
	span[1] = b.Min[1]
	span[2] = b.Max[0]
	span[3] = b.Max[1]
	return
}

// 瓦片的web墨卡托范围 [left, bottom, right, top]
func TileSpan3857(t maptile.Tile) (span [4]float64) {
	geo := TileSpan4326(t)
	span[0], span[1] = Convert4326To3857(geo[0], geo[1])
	span[2], span[3] = Convert4326To3857(geo[2], geo[3])
	return
}
