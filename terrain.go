package terralib

import (
	"fmt"
	"sync"

	"github.com/wgdzlh/terralib/log"

	"github.com/paulmach/orb/maptile"
	"go.uber.org/zap"
)

// DEM的3D地形图：把高程格网按需切为terrain/surface瓦片并对外服务
type TerrainMap struct {
	grid  *ElevationGrid
	tiles map[maptile.Tile][]float64
	tLock sync.RWMutex

	colormap   Colormap
	surfaceURL string
	vmin       float64
	vmax       float64
	rangeSet   bool
	vLock      sync.Mutex

	host        string
	terrainPort int
	surfacePort int

	layer   *TerrainLayer
	plotted bool
	logTag  string
}

func NewTerrainMap(grid *ElevationGrid) (m *TerrainMap, err error) {
	if grid == nil || grid.Empty() {
		err = ErrEmptyGrid
		return
	}
	m = &TerrainMap{
		grid:   grid,
		tiles:  map[maptile.Tile][]float64{},
		logTag: "TerrainMap:",
	}
	return
}

// 配置地形图并生成图层描述。Colormap与SurfaceURL不可同时设置；
// 两者都未设置时图层无texture，仅提供terrain瓦片
func (m *TerrainMap) Plot(opts PlotOptions) (layer *TerrainLayer, err error) {
	if opts.Colormap != nil && opts.SurfaceURL != "" {
		err = ErrColormapWithSurface
		return
	}
	m.colormap = opts.Colormap
	m.surfaceURL = opts.SurfaceURL
	if opts.Vmin != nil && opts.Vmax != nil {
		m.vmin = *opts.Vmin
		m.vmax = *opts.Vmax
		m.rangeSet = true
	}
	m.host = opts.Host
	if m.host == "" {
		m.host = DEFAULT_HOST
	}
	m.terrainPort = opts.TerrainPort
	if m.terrainPort <= 0 {
		m.terrainPort = DEFAULT_TERRAIN_PORT
	}
	m.surfacePort = opts.SurfacePort
	if m.surfacePort <= 0 {
		m.surfacePort = DEFAULT_SURFACE_PORT
	}
	texture := m.surfaceURL
	if m.colormap != nil {
		texture = fmt.Sprintf(TILE_URL_TEMPLATE, m.host, m.surfacePort)
	}
	layer = &TerrainLayer{
		Type:             TERRAIN_LAYER_TYPE,
		ElevationData:    fmt.Sprintf(TILE_URL_TEMPLATE, m.host, m.terrainPort),
		Texture:          texture,
		ElevationDecoder: TerrainDecoder(),
		Bounds:           m.grid.ExtentSpan(),
	}
	m.layer = layer
	m.plotted = true
	log.Info(m.logTag+"plotted", zap.String("elevationData", layer.ElevationData),
		zap.String("texture", texture), zap.Bool("colormap", m.colormap != nil))
	return
}

// 获取Plot生成的图层描述
func (m *TerrainMap) Layer() (layer *TerrainLayer, err error) {
	if !m.plotted {
		err = ErrServerNotConfigured
		return
	}
	layer = m.layer
	return
}

// terrain瓦片PNG
func (m *TerrainMap) TerrainTile(x, y, z int) (ret []byte, err error) {
	if !ValidTileCoords(x, y, z) {
		err = ErrTileOutOfRange
		return
	}
	data := m.getTile(maptile.New(uint32(x), uint32(y), maptile.Zoom(z)))
	return EncodeTerrainTile(data)
}

// surface瓦片PNG，首次调用时若未指定范围则取全格网的min/max
func (m *TerrainMap) SurfaceTile(x, y, z int) (ret []byte, err error) {
	if m.colormap == nil {
		err = ErrServerNotConfigured
		return
	}
	if !ValidTileCoords(x, y, z) {
		err = ErrTileOutOfRange
		return
	}
	vmin, vmax, err := m.ensureRange()
	if err != nil {
		return
	}
	data := m.getTile(maptile.New(uint32(x), uint32(y), maptile.Zoom(z)))
	return EncodeSurfaceTile(data, vmin, vmax, m.colormap)
}

func (m *TerrainMap) ensureRange() (vmin, vmax float64, err error) {
	m.vLock.Lock()
	defer m.vLock.Unlock()
	if !m.rangeSet {
		if m.vmin, m.vmax, err = m.grid.Range(); err != nil {
			return
		}
		log.Info(m.logTag+"computed elevation range", zap.Float64("vmin", m.vmin), zap.Float64("vmax", m.vmax))
		m.rangeSet = true
	}
	vmin = m.vmin
	vmax = m.vmax
	return
}
