package terralib

import (
	"bytes"
	"image"
	"image/png"
	"math"
)

const maxEncoded = 1<<24 - 1

// terrain瓦片编码：v = (height + offset) * factor，按大端序拆入R、G、B。
// 无效格点编码为高程0（即海平面）
func EncodeTerrainTile(data []float64) (ret []byte, err error) {
	img := image.NewNRGBA(image.Rect(0, 0, TILE_WIDTH, TILE_WIDTH))
	for i, h := range data {
		if math.IsNaN(h) {
			h = 0
		}
		v := int64(math.Round((h + ELEVATION_OFFSET) * ELEVATION_FACTOR))
		if v < 0 {
			v = 0
		} else if v > maxEncoded {
			v = maxEncoded
		}
		p := i * 4
		img.Pix[p] = uint8(v >> 16)
		img.Pix[p+1] = uint8(v >> 8 & 0xff)
		img.Pix[p+2] = uint8(v & 0xff)
		img.Pix[p+3] = 0xff
	}
	return encodePng(img)
}

// 浏览器端对应的RGB解码参数
func TerrainDecoder() ElevationDecoder {
	return ElevationDecoder{
		RScaler: 65536.0 / ELEVATION_FACTOR,
		GScaler: 256.0 / ELEVATION_FACTOR,
		BScaler: 1.0 / ELEVATION_FACTOR,
		Offset:  -ELEVATION_OFFSET,
	}
}

// surface瓦片编码：高程按[vmin, vmax]归一化后过色带，无效格点输出全透明
func EncodeSurfaceTile(data []float64, vmin, vmax float64, cm Colormap) (ret []byte, err error) {
	if vmax <= vmin {
		err = ErrFlatGrid
		return
	}
	img := image.NewNRGBA(image.Rect(0, 0, TILE_WIDTH, TILE_WIDTH))
	span := vmax - vmin
	for i, h := range data {
		p := i * 4
		if math.IsNaN(h) {
			continue // alpha保持0
		}
		v := (h - vmin) / span
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		r, g, b := cm(v)
		img.Pix[p] = r
		img.Pix[p+1] = g
		img.Pix[p+2] = b
		img.Pix[p+3] = 0xff
	}
	return encodePng(img)
}

func encodePng(img image.Image) (ret []byte, err error) {
	var buf bytes.Buffer
	if err = png.Encode(&buf, img); err != nil {
		return
	}
	ret = buf.Bytes()
	return
}
