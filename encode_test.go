package terralib

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
)

func decodePngTile(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != TILE_WIDTH || img.Bounds().Dy() != TILE_WIDTH {
		t.Fatal(img.Bounds())
	}
	return img
}

// 按ElevationDecoder公式还原高程
func decodeHeight(c color.Color) float64 {
	d := TerrainDecoder()
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float64(n.R)*d.RScaler + float64(n.G)*d.GScaler + float64(n.B)*d.BScaler + d.Offset
}

func TestTerrainTileRoundTrip(t *testing.T) {
	data := make([]float64, TILE_WIDTH*TILE_WIDTH)
	heights := []float64{-420.5, -1, 0, 8.3, 848.86, 4000, 8848.9}
	for i := range data {
		data[i] = heights[i%len(heights)]
	}
	data[7] = math.NaN()
	b, err := EncodeTerrainTile(data)
	if err != nil {
		t.Fatal(err)
	}
	img := decodePngTile(t, b)
	for i, h := range data {
		got := decodeHeight(img.At(i%TILE_WIDTH, i/TILE_WIDTH))
		want := h
		if math.IsNaN(h) {
			want = 0 // 无效格点编码为海平面
		}
		if math.Abs(got-want) > 1.0/ELEVATION_FACTOR {
			t.Fatal(i, got, want)
		}
	}
}

func TestTerrainTileClamp(t *testing.T) {
	data := make([]float64, TILE_WIDTH*TILE_WIDTH)
	data[0] = -20000 // 低于编码下界
	b, err := EncodeTerrainTile(data)
	if err != nil {
		t.Fatal(err)
	}
	img := decodePngTile(t, b)
	if got := decodeHeight(img.At(0, 0)); got != -ELEVATION_OFFSET {
		t.Fatal(got)
	}
}

func TestSurfaceTile(t *testing.T) {
	cm, err := NamedColormap("gray")
	if err != nil {
		t.Fatal(err)
	}
	data := make([]float64, TILE_WIDTH*TILE_WIDTH)
	for i := range data {
		data[i] = 50
	}
	data[0] = 0
	data[1] = 100
	data[2] = 150 // 超出vmax，应钳制到1
	data[3] = math.NaN()
	b, err := EncodeSurfaceTile(data, 0, 100, cm)
	if err != nil {
		t.Fatal(err)
	}
	img := decodePngTile(t, b)
	at := func(i int) color.NRGBA {
		return color.NRGBAModel.Convert(img.At(i%TILE_WIDTH, i/TILE_WIDTH)).(color.NRGBA)
	}
	if c := at(0); c.R != 0 || c.A != 0xff {
		t.Fatal(c)
	}
	if c := at(1); c.R != 0xff || c.G != 0xff || c.B != 0xff {
		t.Fatal(c)
	}
	if c := at(2); c.R != 0xff {
		t.Fatal(c)
	}
	if c := at(3); c.A != 0 {
		t.Fatal("NaN pixel should be transparent", c)
	}
	if c := at(4); c.R < 126 || c.R > 129 {
		t.Fatal(c)
	}
}

func TestSurfaceTileFlatRange(t *testing.T) {
	cm, _ := NamedColormap("gray")
	if _, err := EncodeSurfaceTile(make([]float64, TILE_WIDTH*TILE_WIDTH), 5, 5, cm); err != ErrFlatGrid {
		t.Fatal(err)
	}
}
