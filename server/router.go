package server

import (
	"net/http"

	"github.com/zooyer/dwgdash/metrics"
)

// NewRouter 组装路由和中间件，collector 可为 nil(不采集指标)
func NewRouter(h *Handler, collector *metrics.HTTPCollector) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", h.Root)
	mux.HandleFunc("/api/health", h.Health)
	mux.HandleFunc("/api/upload", h.Upload)
	mux.HandleFunc("/api/files", h.ListFiles)
	mux.HandleFunc("/api/files/", h.FileRoutes)

	var handler http.Handler = withCORS(mux)
	if collector != nil {
		mux.Handle("/metrics", collector.Handler())
		handler = collector.InstrumentHandler(handler)
	}

	return handler
}

// withCORS 前端跨域访问放行
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
