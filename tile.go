package terralib

import (
	"time"

	"github.com/wgdzlh/terralib/log"

	"github.com/paulmach/orb/maptile"
	"go.uber.org/zap"
)

// 取瓦片的高程数据，同一瓦片只计算一次
func (m *TerrainMap) getTile(t maptile.Tile) (data []float64) {
	m.tLock.RLock()
	data, ok := m.tiles[t]
	m.tLock.RUnlock()
	if ok {
		return
	}
	m.tLock.Lock()
	defer m.tLock.Unlock()
	if data, ok = m.tiles[t]; ok {
		return
	}
	start := time.Now()
	data = m.renderTile(t)
	m.tiles[t] = data
	log.Debug(m.logTag+"rendered tile", zap.Uint32("x", t.X), zap.Uint32("y", t.Y),
		zap.Uint8("z", uint8(t.Z)), zap.Duration("cost", time.Since(start)))
	return
}

// 瓦片渲染管线：按经纬度开窗 → 均值降采样至不超过2倍瓦片宽 → 在瓦片的
// web墨卡托像素中心处双线性重采样
func (m *TerrainMap) renderTile(t maptile.Tile) (data []float64) {
	geo := TileSpan4326(t)
	xy := TileSpan3857(t)
	xPix := (xy[2] - xy[0]) / TILE_WIDTH
	yPix := (xy[3] - xy[1]) / TILE_WIDTH

	win := m.grid.Window(geo[0], geo[1], geo[2], geo[3])
	wx := win.Width / (TILE_WIDTH * 2)
	wy := win.Height / (TILE_WIDTH * 2)
	if wx > 1 || wy > 1 {
		win = win.Coarsen(wx, wy)
	}

	data = make([]float64, TILE_WIDTH*TILE_WIDTH)
	for py := 0; py < TILE_WIDTH; py++ {
		ym := xy[3] - (float64(py)+0.5)*yPix
		for px := 0; px < TILE_WIDTH; px++ {
			xm := xy[0] + (float64(px)+0.5)*xPix
			lon, lat := Convert3857To4326(xm, ym)
			data[py*TILE_WIDTH+px] = win.Bilinear(lon, lat)
		}
	}
	return
}
