package terralib

import (
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// 把[0,1]归一化高程映射为RGB
type Colormap func(v float64) (r, g, b uint8)

type GradientStop struct {
	Pos   float64
	Color string // hex颜色，如 #440154
}

// 内置色带（与matplotlib同名色带近似的控制点）
var builtinColormaps = map[string][]GradientStop{
	"viridis": {
		{0, "#440154"},
		{0.25, "#3b528b"},
		{0.5, "#21918c"},
		{0.75, "#5ec962"},
		{1, "#fde725"},
	},
	"terrain": {
		{0, "#333399"},
		{0.15, "#0099ff"},
		{0.25, "#00cc66"},
		{0.5, "#ffff99"},
		{0.75, "#805c54"},
		{1, "#ffffff"},
	},
	"gray": {
		{0, "#000000"},
		{1, "#ffffff"},
	},
}

// 由控制点构造色带，控制点间在RGB空间线性混合
func GradientColormap(stops []GradientStop) (cm Colormap, err error) {
	if len(stops) < 2 {
		err = ErrBadGradient
		return
	}
	pos := make([]float64, len(stops))
	colors := make([]colorful.Color, len(stops))
	idx := make([]int, len(stops))
	for i := range stops {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return stops[idx[a]].Pos < stops[idx[b]].Pos })
	for i, k := range idx {
		pos[i] = stops[k].Pos
		if colors[i], err = colorful.Hex(stops[k].Color); err != nil {
			err = ErrBadGradient
			return
		}
	}
	if pos[0] == pos[len(pos)-1] {
		err = ErrBadGradient
		return
	}
	cm = func(v float64) (r, g, b uint8) {
		if v <= pos[0] {
			return colors[0].RGB255()
		}
		if v >= pos[len(pos)-1] {
			return colors[len(colors)-1].RGB255()
		}
		for i := 1; i < len(pos); i++ {
			if v <= pos[i] {
				t := (v - pos[i-1]) / (pos[i] - pos[i-1])
				return colors[i-1].BlendRgb(colors[i], t).RGB255()
			}
		}
		return colors[len(colors)-1].RGB255()
	}
	return
}

// 按名称获取内置色带
func NamedColormap(name string) (cm Colormap, err error) {
	stops, ok := builtinColormaps[name]
	if !ok {
		err = ErrUnknownColormap
		return
	}
	return GradientColormap(stops)
}
