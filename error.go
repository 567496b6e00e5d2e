package terralib

import "errors"

var (
	ErrInvalidTif            = errors.New("invalid tif")
	ErrWrongTif              = errors.New("tif has no usable band")
	ErrTifReadFailed         = errors.New("tif read failed")
	ErrVoidSrid              = errors.New("raster with void srid")
	ErrInvalidWKT            = errors.New("invalid WKT")
	ErrEmptyGrid             = errors.New("empty elevation grid")
	ErrFlatGrid              = errors.New("grid has no elevation range")
	ErrTileOutOfRange        = errors.New("tile coords out of range")
	ErrColormapWithSurface   = errors.New("cannot have a colormap and a surface url at the same time")
	ErrUnknownColormap       = errors.New("unknown colormap")
	ErrBadGradient           = errors.New("bad gradient stops")
	ErrServerNotConfigured   = errors.New("terrain map not plotted yet")
	ErrGdalSpatialRefInvalid = errors.New("gdal spatial ref invalid")
)
