package terralib

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/wgdzlh/terralib/log"

	"go.uber.org/zap"
)

const serverLogTag = "TileServer:"

type tileFunc func(x, y, z int) ([]byte, error)

// 启动terrain瓦片服务（以及配置了色带时的surface瓦片服务），阻塞至ctx取消或
// 任一服务出错，随后优雅关闭
func (m *TerrainMap) Serve(ctx context.Context) (err error) {
	if !m.plotted {
		err = ErrServerNotConfigured
		return
	}
	servers := []*http.Server{
		newTileServer(fmt.Sprintf("%s:%d", m.host, m.terrainPort), "terrain", m.TerrainTile),
	}
	if m.colormap != nil {
		servers = append(servers,
			newTileServer(fmt.Sprintf("%s:%d", m.host, m.surfacePort), "surface", m.SurfaceTile))
	}
	errCh := make(chan error, len(servers))
	for _, s := range servers {
		go func(s *http.Server) {
			log.Info(serverLogTag+"listening", zap.String("addr", s.Addr))
			if e := s.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
				errCh <- e
			}
		}(s)
	}
	select {
	case <-ctx.Done():
	case err = <-errCh:
		log.Error(serverLogTag+"server failed", zap.Error(err))
	}
	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, s := range servers {
		_ = s.Shutdown(shutCtx)
	}
	log.Info(serverLogTag + "stopped")
	return
}

func newTileServer(addr, kind string, tf tileFunc) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{z}/{x}/{y}", tileHandler(kind, tf))
	mux.HandleFunc("OPTIONS /", func(w http.ResponseWriter, r *http.Request) {
		setCorsHeaders(w)
		w.WriteHeader(http.StatusNoContent)
	})
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// 与aiohttp-cors默认配置等价的全放行头
func setCorsHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "*")
	h.Set("Access-Control-Expose-Headers", "*")
}

func tileHandler(kind string, tf tileFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		setCorsHeaders(w)
		z, e1 := strconv.Atoi(r.PathValue("z"))
		x, e2 := strconv.Atoi(r.PathValue("x"))
		y, e3 := strconv.Atoi(strings.TrimSuffix(r.PathValue("y"), PNG_SUFFIX))
		if e1 != nil || e2 != nil || e3 != nil {
			http.Error(w, "bad tile coords", http.StatusBadRequest)
			return
		}
		body, err := tf(x, y, z)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrTileOutOfRange) {
				status = http.StatusNotFound
			}
			log.Warn(serverLogTag+"tile request failed", zap.String("kind", kind),
				zap.String("path", r.URL.Path), zap.Error(err))
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", PNG_CONTENT_TYPE)
		_, _ = w.Write(body)
		log.Info(serverLogTag+"tile served", zap.String("kind", kind),
			zap.Int("z", z), zap.Int("x", x), zap.Int("y", y),
			zap.Duration("cost", time.Since(start)))
	}
}
