package terralib

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/wgdzlh/terralib/log"

	gdal "github.com/airbusgeo/godal"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 读取DEM Tif的首个波段为高程格网。非EPSG:4326的栅格会先重投影到4326
func (g *GdalToolbox) OpenDEM(tif string) (grid *ElevationGrid, err error) {
	sds, err := gdal.Open(tif, gdal.RasterOnly())
	if err != nil {
		log.Error(g.logTag+"open dem tif failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer sds.Close()
	wkt, _ := sds.SpatialRef().WKT()
	srid, err := g.getSrid(wkt)
	if err != nil {
		log.Error(g.logTag+"dem tif has no usable srid", zap.String("tif", tif))
		return
	}
	ds := sds
	if srid != UNIVERSAL_SRID {
		tmpTif := filepath.Join(g.tmpDir, fmt.Sprintf(TMP_WARP_TIF, uuid.NewString()))
		defer os.Remove(tmpTif)
		log.Info(g.logTag+"warp dem to universal srid", zap.Int("srid", srid), zap.String("tmp", tmpTif))
		wds, e := gdal.Warp(tmpTif, []*Dataset{sds}, []string{
			"-t_srs", fmt.Sprintf("epsg:%d", UNIVERSAL_SRID),
			"-r", "bilinear",
			"-overwrite",
		})
		if e != nil {
			log.Error(g.logTag+"warp dem failed", zap.Error(e))
			err = ErrTifReadFailed
			return
		}
		defer wds.Close()
		ds = wds
	}
	return g.readDEMBand(ds)
}

func (g *GdalToolbox) readDEMBand(ds *Dataset) (grid *ElevationGrid, err error) {
	bands := ds.Bands()
	if len(bands) == 0 {
		log.Error(g.logTag + "dem tif has no band")
		err = ErrWrongTif
		return
	}
	band := bands[0]
	bandStruct := band.Structure()
	x := bandStruct.SizeX
	y := bandStruct.SizeY
	if x < 2 || y < 2 {
		err = ErrWrongTif
		return
	}
	gt, err := ds.GeoTransform()
	if err != nil {
		log.Error(g.logTag+"dem tif has no geo transform", zap.Error(err))
		err = ErrWrongTif
		return
	}
	log.Info(g.logTag+"start read dem band", zap.Int("dt", int(bandStruct.DataType)),
		zap.Int("width", x), zap.Int("height", y))
	buf := make([]float64, x*y)
	if err = band.IO(gdal.IORead, 0, 0, buf, x, y); err != nil {
		log.Error(g.logTag+"read dem band failed", zap.Error(err))
		err = ErrTifReadFailed
		return
	}
	if noData, ok := band.NoData(); ok {
		for i, v := range buf {
			if v == noData {
				buf[i] = math.NaN()
			}
		}
	}
	dx := gt[1]
	dy := gt[5]
	grid = &ElevationGrid{
		Data:   buf,
		Width:  x,
		Height: y,
		XLeft:  gt[0] + dx/2,
		XRight: gt[0] + dx*(float64(x)-0.5),
		Dx:     dx,
	}
	if dy < 0 { // 常规north-up栅格，行已按纬度降序
		grid.Dy = -dy
		grid.YUpper = gt[3] + dy/2
		grid.YLower = gt[3] + dy*(float64(y)-0.5)
	} else { // south-up栅格，统一翻转为纬度降序
		grid.Dy = dy
		grid.YUpper = gt[3] + dy*(float64(y)-0.5)
		grid.YLower = gt[3] + dy/2
		grid.flipRows()
	}
	return
}

// 为缺失坐标系的栅格指定srid（等价于rioxarray的write_crs）
func (g *GdalToolbox) AssignSrid(tif string, srid int) (err error) {
	ref, err := gdal.NewSpatialRefFromEPSG(srid)
	if err != nil {
		log.Error(g.logTag+"create spatial ref failed", zap.Int("srid", srid), zap.Error(err))
		err = ErrGdalSpatialRefInvalid
		return
	}
	defer ref.Close()
	sds, err := gdal.Open(tif, gdal.Update())
	if err != nil {
		log.Error(g.logTag+"open dem tif for update failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer sds.Close()
	if err = sds.SetSpatialRef(ref); err != nil {
		log.Error(g.logTag+"set dem srid failed", zap.Error(err))
	}
	return
}

// 按WKT多边形剪切DEM，输出LZW压缩的GTiff
func (g *GdalToolbox) ClipDEM(tif, wkt, out string) (err error) {
	geoJson, err := g.WktToGeoJSON(wkt, UNIVERSAL_SRID)
	if err != nil {
		return
	}
	tmpGeoJson := filepath.Join(g.tmpDir, fmt.Sprintf(TMP_GEOJSON, uuid.NewString()))
	if err = os.WriteFile(tmpGeoJson, geoJson, os.ModePerm); err != nil {
		return
	}
	defer os.Remove(tmpGeoJson)
	sds, err := gdal.Open(tif, gdal.RasterOnly())
	if err != nil {
		log.Error(g.logTag+"open dem tif failed", zap.String("tif", tif), zap.Error(err))
		err = ErrInvalidTif
		return
	}
	defer sds.Close()
	log.Info(g.logTag+"clip dem", zap.String("tif", tif), zap.String("out", out))
	ods, err := gdal.Warp(out, []*Dataset{sds}, []string{
		"-cutline", tmpGeoJson,
		"-crop_to_cutline",
		"-overwrite",
		"-co", GTIFF_COMPRESSION,
	})
	if err != nil {
		log.Error(g.logTag+"failed to clip dem", zap.Error(err))
		return
	}
	ods.Close()
	return
}
