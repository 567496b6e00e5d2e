package terralib

import (
	"encoding/json"

	gdal "github.com/airbusgeo/godal"
)

type AnyJson = json.RawMessage

type Dataset = gdal.Dataset

// 浏览器端TerrainLayer对terrain瓦片RGB值的解码参数
type ElevationDecoder struct {
	RScaler float64 `json:"rScaler"`
	GScaler float64 `json:"gScaler"`
	BScaler float64 `json:"bScaler"`
	Offset  float64 `json:"offset"`
}

// 输出给前端的图层描述，elevationData与texture为瓦片URL模板
type TerrainLayer struct {
	Type             string           `json:"type"`
	ElevationData    string           `json:"elevationData"`
	Texture          string           `json:"texture,omitempty"`
	ElevationDecoder ElevationDecoder `json:"elevationDecoder"`
	Bounds           [4]float64       `json:"bounds"` // [west, south, east, north]
}

// 绘图参数。Colormap与SurfaceURL二选一：前者本地渲染着色瓦片，后者直接引用远端底图瓦片
type PlotOptions struct {
	Colormap    Colormap
	SurfaceURL  string
	Vmin        *float64
	Vmax        *float64
	Host        string
	TerrainPort int
	SurfacePort int
}
