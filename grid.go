package terralib

import "math"

// 高程格网。行按纬度降序、列按经度升序存储，坐标系固定为EPSG:4326。
// XLeft/XRight/YLower/YUpper均为格点中心坐标，无效格点值为NaN
type ElevationGrid struct {
	Data   []float64
	Width  int
	Height int
	XLeft  float64
	XRight float64
	YLower float64
	YUpper float64
	Dx     float64
	Dy     float64
}

func (e *ElevationGrid) At(col, row int) float64 {
	return e.Data[row*e.Width+col]
}

func (e *ElevationGrid) Empty() bool {
	return e.Width <= 0 || e.Height <= 0
}

// 有效格点的最小、最大高程
func (e *ElevationGrid) Range() (vmin, vmax float64, err error) {
	vmin = math.Inf(1)
	vmax = math.Inf(-1)
	for _, v := range e.Data {
		if math.IsNaN(v) {
			continue
		}
		if v < vmin {
			vmin = v
		}
		if v > vmax {
			vmax = v
		}
	}
	if vmin > vmax {
		err = ErrEmptyGrid
	}
	return
}

// 格网覆盖的外边界 [west, south, east, north]（格点中心各加半格）
func (e *ElevationGrid) ExtentSpan() (span [4]float64) {
	span[0] = e.XLeft - e.Dx/2
	span[1] = e.YLower - e.Dy/2
	span[2] = e.XRight + e.Dx/2
	span[3] = e.YUpper + e.Dy/2
	return
}

// 上下翻转各行，用于把纬度升序的栅格统一为降序
func (e *ElevationGrid) flipRows() {
	for top, bottom := 0, e.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := e.Data[top*e.Width : (top+1)*e.Width]
		b := e.Data[bottom*e.Width : (bottom+1)*e.Width]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// 截取指定经纬度范围的子格网，四周各保留一个格点的余量
func (e *ElevationGrid) Window(west, south, east, north float64) (win *ElevationGrid) {
	win = &ElevationGrid{Dx: e.Dx, Dy: e.Dy}
	if e.Empty() {
		return
	}
	iMin := int(math.Ceil((west - e.Dx - e.XLeft) / e.Dx))
	iMax := int(math.Floor((east + e.Dx - e.XLeft) / e.Dx))
	jMin := int(math.Ceil((e.YUpper - north - e.Dy) / e.Dy))
	jMax := int(math.Floor((e.YUpper - south + e.Dy) / e.Dy))
	if iMin < 0 {
		iMin = 0
	}
	if iMax > e.Width-1 {
		iMax = e.Width - 1
	}
	if jMin < 0 {
		jMin = 0
	}
	if jMax > e.Height-1 {
		jMax = e.Height - 1
	}
	if iMin > iMax || jMin > jMax {
		return
	}
	win.Width = iMax - iMin + 1
	win.Height = jMax - jMin + 1
	win.XLeft = e.XLeft + float64(iMin)*e.Dx
	win.XRight = e.XLeft + float64(iMax)*e.Dx
	win.YUpper = e.YUpper - float64(jMin)*e.Dy
	win.YLower = e.YUpper - float64(jMax)*e.Dy
	win.Data = make([]float64, win.Width*win.Height)
	for j := 0; j < win.Height; j++ {
		copy(win.Data[j*win.Width:(j+1)*win.Width], e.Data[(jMin+j)*e.Width+iMin:(jMin+j)*e.Width+iMax+1])
	}
	return
}

// 按wx*wy窗口均值降采样，边缘不足整窗时取现有格点均值；窗口内全为无效值时输出NaN
func (e *ElevationGrid) Coarsen(wx, wy int) (out *ElevationGrid) {
	if wx < 1 {
		wx = 1
	}
	if wy < 1 {
		wy = 1
	}
	if (wx == 1 && wy == 1) || e.Empty() {
		return e
	}
	outW := (e.Width + wx - 1) / wx
	outH := (e.Height + wy - 1) / wy
	out = &ElevationGrid{
		Data:   make([]float64, outW*outH),
		Width:  outW,
		Height: outH,
		Dx:     e.Dx * float64(wx),
		Dy:     e.Dy * float64(wy),
	}
	out.XLeft = e.XLeft + e.Dx*float64(wx-1)/2
	out.YUpper = e.YUpper - e.Dy*float64(wy-1)/2
	out.XRight = out.XLeft + float64(outW-1)*out.Dx
	out.YLower = out.YUpper - float64(outH-1)*out.Dy
	for oj := 0; oj < outH; oj++ {
		for oi := 0; oi < outW; oi++ {
			sum, cnt := 0.0, 0
			for j := oj * wy; j < (oj+1)*wy && j < e.Height; j++ {
				for i := oi * wx; i < (oi+1)*wx && i < e.Width; i++ {
					if v := e.At(i, j); !math.IsNaN(v) {
						sum += v
						cnt++
					}
				}
			}
			if cnt > 0 {
				out.Data[oj*outW+oi] = sum / float64(cnt)
			} else {
				out.Data[oj*outW+oi] = math.NaN()
			}
		}
	}
	return
}

// 在指定经纬度处双线性插值采样，超出格网覆盖范围（半个格点以上）返回NaN
func (e *ElevationGrid) Bilinear(lon, lat float64) float64 {
	if e.Empty() {
		return math.NaN()
	}
	fc := (lon - e.XLeft) / e.Dx
	fr := (e.YUpper - lat) / e.Dy
	if fc < -0.5 || fc > float64(e.Width-1)+0.5 || fr < -0.5 || fr > float64(e.Height-1)+0.5 {
		return math.NaN()
	}
	if fc < 0 {
		fc = 0
	} else if fc > float64(e.Width-1) {
		fc = float64(e.Width - 1)
	}
	if fr < 0 {
		fr = 0
	} else if fr > float64(e.Height-1) {
		fr = float64(e.Height - 1)
	}
	c0 := int(fc)
	r0 := int(fr)
	c1, r1 := c0+1, r0+1
	if c1 > e.Width-1 {
		c1 = e.Width - 1
	}
	if r1 > e.Height-1 {
		r1 = e.Height - 1
	}
	wc := fc - float64(c0)
	wr := fr - float64(r0)
	var sum, wSum float64
	corners := [4]struct {
		v, w float64
	}{
		{e.At(c0, r0), (1 - wc) * (1 - wr)},
		{e.At(c1, r0), wc * (1 - wr)},
		{e.At(c0, r1), (1 - wc) * wr},
		{e.At(c1, r1), wc * wr},
	}
	for _, c := range corners {
		if !math.IsNaN(c.v) {
			sum += c.v * c.w
			wSum += c.w
		}
	}
	if wSum <= 0 {
		return math.NaN()
	}
	return sum / wSum
}
