package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math"
	"net/url"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	terralib "github.com/wgdzlh/terralib"
	"github.com/wgdzlh/terralib/utils"
)

func run() error {
	demPath := flag.String("dem", "", "path to the DEM GeoTIFF")
	demURL := flag.String("url", "", "download the DEM dataset (zip or tif) from this url first")
	dataDir := flag.String("data-dir", "data", "directory for downloaded datasets")
	srid := flag.Int("srid", 0, "assign this EPSG code to the raster before loading")
	clipWkt := flag.String("clip", "", "clip the DEM to this WKT polygon (EPSG:4326) before serving")
	colormapName := flag.String("colormap", "", "built-in colormap for surface tiles (viridis, terrain, gray)")
	surfaceURL := flag.String("surface-url", "", "remote basemap tile url template used as texture")
	host := flag.String("host", terralib.DEFAULT_HOST, "host to serve tiles on")
	terrainPort := flag.Int("terrain-port", terralib.DEFAULT_TERRAIN_PORT, "port for terrain tiles")
	surfacePort := flag.Int("surface-port", terralib.DEFAULT_SURFACE_PORT, "port for surface tiles")
	vmin := flag.Float64("vmin", math.NaN(), "lower bound of the colormap range")
	vmax := flag.Float64("vmax", math.NaN(), "upper bound of the colormap range")
	quicklook := flag.String("quicklook", "", "write an overview image of the DEM to this path")
	flag.Parse()

	dem := *demPath
	if *demURL != "" {
		if !utils.IsValidUrl(*demURL) {
			return fmt.Errorf("invalid url: %s", *demURL)
		}
		if err := os.MkdirAll(*dataDir, os.ModePerm); err != nil {
			return err
		}
		u, _ := url.Parse(*demURL)
		name := path.Base(u.Path)
		dst := filepath.Join(*dataDir, name)
		if err := utils.DownloadFile(*demURL, dst); err != nil {
			return err
		}
		if strings.EqualFold(filepath.Ext(name), ".zip") {
			extractDir := filepath.Join(*dataDir, utils.GetFilenameWithoutExt(name))
			if err := os.MkdirAll(extractDir, os.ModePerm); err != nil {
				return err
			}
			tif, err := utils.GetTifInZip(dst, extractDir)
			if err != nil {
				return err
			}
			dem = tif
		} else {
			dem = dst
		}
	}
	if dem == "" {
		return errors.New("either -dem or -url is required")
	}

	g := terralib.NewGdalToolbox(os.TempDir())
	if *srid > 0 {
		if err := g.AssignSrid(dem, *srid); err != nil {
			return err
		}
	}
	if *clipWkt != "" {
		clipped := filepath.Join(os.TempDir(), "clipped_"+filepath.Base(dem))
		if err := g.ClipDEM(dem, *clipWkt, clipped); err != nil {
			return err
		}
		defer os.Remove(clipped)
		dem = clipped
	}

	sp := utils.NewSpinner("loading DEM", 100*time.Millisecond)
	sp.Start()
	grid, err := g.OpenDEM(dem)
	sp.Stop()
	if err != nil {
		return err
	}

	m, err := terralib.NewTerrainMap(grid)
	if err != nil {
		return err
	}
	opts := terralib.PlotOptions{
		SurfaceURL:  *surfaceURL,
		Host:        *host,
		TerrainPort: *terrainPort,
		SurfacePort: *surfacePort,
	}
	if *colormapName != "" {
		if opts.Colormap, err = terralib.NamedColormap(*colormapName); err != nil {
			return err
		}
	}
	if !math.IsNaN(*vmin) && !math.IsNaN(*vmax) {
		opts.Vmin = vmin
		opts.Vmax = vmax
	}
	layer, err := m.Plot(opts)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(layer, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(utils.B2S(b))

	if *quicklook != "" {
		if err = m.SaveQuicklook(*quicklook, 1024); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return m.Serve(ctx)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
