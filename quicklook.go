package terralib

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// 生成整幅DEM的概览图，按色带着色（未配置色带时用灰度），
// 宽度超过maxWidth时等比缩小
func (m *TerrainMap) Quicklook(maxWidth int) (img image.Image, err error) {
	vmin, vmax, err := m.ensureRange()
	if err != nil {
		return
	}
	if vmax <= vmin {
		err = ErrFlatGrid
		return
	}
	cm := m.colormap
	if cm == nil {
		if cm, err = NamedColormap("gray"); err != nil {
			return
		}
	}
	full := image.NewNRGBA(image.Rect(0, 0, m.grid.Width, m.grid.Height))
	span := vmax - vmin
	for i, h := range m.grid.Data {
		p := i * 4
		if math.IsNaN(h) {
			continue
		}
		v := (h - vmin) / span
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		r, g, b := cm(v)
		full.Pix[p] = r
		full.Pix[p+1] = g
		full.Pix[p+2] = b
		full.Pix[p+3] = 0xff
	}
	img = full
	if maxWidth > 0 && m.grid.Width > maxWidth {
		img = imaging.Resize(full, maxWidth, 0, imaging.Lanczos)
	}
	return
}

// 概览图存盘，格式由扩展名决定
func (m *TerrainMap) SaveQuicklook(path string, maxWidth int) (err error) {
	img, err := m.Quicklook(maxWidth)
	if err != nil {
		return
	}
	return imaging.Save(img, path)
}
