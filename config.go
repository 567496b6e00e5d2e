package terralib

const (
	FILE_EXT_TIF  = ".tif"
	FILE_EXT_TIFF = ".tiff"
	FILE_EXT_ZIP  = ".zip"

	UNIVERSAL_SRID    = 4326
	WEB_MERCATOR_SRID = 3857

	TILE_WIDTH    = 256
	MIN_TILE_ZOOM = 0
	MAX_TILE_ZOOM = 20

	// 高程编码参数，terrain瓦片像素值为 (height + ELEVATION_OFFSET) * ELEVATION_FACTOR
	ELEVATION_FACTOR = 10
	ELEVATION_OFFSET = 10000

	DEFAULT_HOST         = "127.0.0.1"
	DEFAULT_TERRAIN_PORT = 8080
	DEFAULT_SURFACE_PORT = 8081

	TILE_URL_TEMPLATE = "http://%s:%d/{z}/{x}/{y}.png"

	PNG_CONTENT_TYPE = "image/png"
	PNG_SUFFIX       = ".png"

	TERRAIN_LAYER_TYPE = "TerrainLayer"

	TMP_GEOJSON  = "geo_%s.json"
	TMP_WARP_TIF = "warp_%s.tif"

	GTIFF_COMPRESSION = "compress=lzw"
)
