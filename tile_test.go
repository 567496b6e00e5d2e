package terralib

import (
	"math"
	"testing"

	"github.com/paulmach/orb/maptile"
)

// 高程等于纬度的全球格网
func makeWorldGrid(width, height int) *ElevationGrid {
	dx := 360.0 / float64(width)
	dy := 180.0 / float64(height)
	g := &ElevationGrid{
		Data:   make([]float64, width*height),
		Width:  width,
		Height: height,
		XLeft:  -180 + dx/2,
		XRight: 180 - dx/2,
		YLower: -90 + dy/2,
		YUpper: 90 - dy/2,
		Dx:     dx,
		Dy:     dy,
	}
	for row := 0; row < height; row++ {
		lat := g.YUpper - float64(row)*dy
		for col := 0; col < width; col++ {
			g.Data[row*width+col] = lat
		}
	}
	return g
}

func TestRenderRootTile(t *testing.T) {
	m, err := NewTerrainMap(makeWorldGrid(360, 180))
	if err != nil {
		t.Fatal(err)
	}
	root := maptile.New(0, 0, 0)
	data := m.getTile(root)
	if len(data) != TILE_WIDTH*TILE_WIDTH {
		t.Fatal(len(data))
	}
	xy := TileSpan3857(root)
	yPix := (xy[3] - xy[1]) / TILE_WIDTH
	for _, py := range []int{0, 64, 127, 128, 200, 255} {
		ym := xy[3] - (float64(py)+0.5)*yPix
		_, lat := Convert3857To4326(xy[0], ym)
		got := data[py*TILE_WIDTH+128]
		// 纬度线性场应被双线性插值精确还原
		if math.Abs(got-lat) > 1e-9 {
			t.Fatal(py, got, lat)
		}
	}
}

func TestTileCache(t *testing.T) {
	m, err := NewTerrainMap(makeWorldGrid(360, 180))
	if err != nil {
		t.Fatal(err)
	}
	tl := maptile.New(1, 1, 2)
	d1 := m.getTile(tl)
	d2 := m.getTile(tl)
	if &d1[0] != &d2[0] {
		t.Fatal("tile should be rendered once")
	}
	if len(m.tiles) != 1 {
		t.Fatal(len(m.tiles))
	}
}

func TestRenderTileWithCoarsen(t *testing.T) {
	// 1440x720格网下z0瓦片窗口超过2倍瓦片宽，触发降采样
	m, err := NewTerrainMap(makeWorldGrid(1440, 720))
	if err != nil {
		t.Fatal(err)
	}
	data := m.getTile(maptile.New(0, 0, 0))
	mid := data[127*TILE_WIDTH+128]
	top := data[0*TILE_WIDTH+128]
	bottom := data[255*TILE_WIDTH+128]
	if !(top > mid && mid > bottom) {
		t.Fatal(top, mid, bottom)
	}
	if math.Abs(mid) > 1 || math.Abs(top-85) > 1 || math.Abs(bottom+85) > 1 {
		t.Fatal(top, mid, bottom)
	}
}

func TestTileOutsideCoverage(t *testing.T) {
	// 只覆盖一小块区域的格网，远处瓦片应全为NaN
	g := makeGrid(10, 10, func(col, row int) float64 { return 42 })
	m, err := NewTerrainMap(g)
	if err != nil {
		t.Fatal(err)
	}
	data := m.getTile(maptile.New(0, 2, 3)) // 西半球高纬，格网在(0..9, 0..9)之外
	for _, v := range data {
		if !math.IsNaN(v) {
			t.Fatal(v)
		}
	}
}

func TestTerrainTileRange(t *testing.T) {
	m, err := NewTerrainMap(makeWorldGrid(360, 180))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = m.TerrainTile(0, 0, 21); err != ErrTileOutOfRange {
		t.Fatal(err)
	}
	if _, err = m.TerrainTile(2, 0, 1); err != ErrTileOutOfRange {
		t.Fatal(err)
	}
	if _, err = m.TerrainTile(0, 0, 0); err != nil {
		t.Fatal(err)
	}
}
