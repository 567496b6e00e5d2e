package terralib

import (
	"math"
	"strings"
	"testing"
)

func TestNewTerrainMapEmpty(t *testing.T) {
	if _, err := NewTerrainMap(nil); err != ErrEmptyGrid {
		t.Fatal(err)
	}
	if _, err := NewTerrainMap(&ElevationGrid{}); err != ErrEmptyGrid {
		t.Fatal(err)
	}
}

func TestPlotExclusiveModes(t *testing.T) {
	m, err := NewTerrainMap(makeWorldGrid(360, 180))
	if err != nil {
		t.Fatal(err)
	}
	cm, _ := NamedColormap("viridis")
	if _, err = m.Plot(PlotOptions{Colormap: cm, SurfaceURL: "https://tiles.example.com/{z}/{x}/{y}.png"}); err != ErrColormapWithSurface {
		t.Fatal(err)
	}
}

func TestPlotLayer(t *testing.T) {
	m, err := NewTerrainMap(makeWorldGrid(360, 180))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = m.Layer(); err != ErrServerNotConfigured {
		t.Fatal(err)
	}
	cm, _ := NamedColormap("terrain")
	layer, err := m.Plot(PlotOptions{Colormap: cm})
	if err != nil {
		t.Fatal(err)
	}
	if layer.Type != TERRAIN_LAYER_TYPE {
		t.Fatal(layer.Type)
	}
	if !strings.Contains(layer.ElevationData, "{z}/{x}/{y}.png") || !strings.Contains(layer.ElevationData, "8080") {
		t.Fatal(layer.ElevationData)
	}
	if !strings.Contains(layer.Texture, "8081") {
		t.Fatal(layer.Texture)
	}
	d := layer.ElevationDecoder
	if d.RScaler != 6553.6 || d.GScaler != 25.6 || d.BScaler != 0.1 || d.Offset != -10000 {
		t.Fatal(d)
	}
	if layer.Bounds != [4]float64{-180, -90, 180, 90} {
		t.Fatal(layer.Bounds)
	}
	if got, err := m.Layer(); err != nil || got != layer {
		t.Fatal(got, err)
	}
}

func TestPlotTerrainOnly(t *testing.T) {
	m, err := NewTerrainMap(makeWorldGrid(360, 180))
	if err != nil {
		t.Fatal(err)
	}
	layer, err := m.Plot(PlotOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if layer.Texture != "" {
		t.Fatal(layer.Texture)
	}
	// 未配置色带时不提供surface瓦片
	if _, err = m.SurfaceTile(0, 0, 0); err != ErrServerNotConfigured {
		t.Fatal(err)
	}
}

func TestPlotRemoteSurface(t *testing.T) {
	m, err := NewTerrainMap(makeWorldGrid(360, 180))
	if err != nil {
		t.Fatal(err)
	}
	const remote = "https://tiles.example.com/{z}/{x}/{y}.png"
	layer, err := m.Plot(PlotOptions{SurfaceURL: remote, Host: "0.0.0.0", TerrainPort: 9090})
	if err != nil {
		t.Fatal(err)
	}
	if layer.Texture != remote {
		t.Fatal(layer.Texture)
	}
	if !strings.Contains(layer.ElevationData, "0.0.0.0:9090") {
		t.Fatal(layer.ElevationData)
	}
}

func TestEnsureRangeLazy(t *testing.T) {
	m, err := NewTerrainMap(makeWorldGrid(360, 180))
	if err != nil {
		t.Fatal(err)
	}
	vmin, vmax, err := m.ensureRange()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(vmin+89.5) > 1e-9 || math.Abs(vmax-89.5) > 1e-9 {
		t.Fatal(vmin, vmax)
	}
}

func TestEnsureRangeFixed(t *testing.T) {
	m, err := NewTerrainMap(makeWorldGrid(360, 180))
	if err != nil {
		t.Fatal(err)
	}
	vmin, vmax := -100.0, 100.0
	cm, _ := NamedColormap("gray")
	if _, err = m.Plot(PlotOptions{Colormap: cm, Vmin: &vmin, Vmax: &vmax}); err != nil {
		t.Fatal(err)
	}
	gotMin, gotMax, err := m.ensureRange()
	if err != nil || gotMin != -100 || gotMax != 100 {
		t.Fatal(gotMin, gotMax, err)
	}
}
