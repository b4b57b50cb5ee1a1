package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/livp123/urlp/internal/config"
	"github.com/livp123/urlp/internal/pipeline"
	"github.com/livp123/urlp/internal/utils/logger"
)

// Server exposes the parser over HTTP: a parse endpoint, a health check
// and the prometheus metrics.
// Server 通过 HTTP 暴露解析器：解析端点、健康检查和 prometheus 指标。
type Server struct {
	config  *config.MetricsConfig
	pipe    *pipeline.Pipeline
	server  *http.Server
	running bool
	mu      sync.RWMutex // Protects running field from concurrent access / 保护 running 字段免受并发访问
}

// NewServer creates a new API server instance.
// NewServer 创建一个新的 API 服务器实例。
func NewServer(pipe *pipeline.Pipeline, cfg *config.MetricsConfig) *Server {
	return &Server{
		pipe:   pipe,
		config: cfg,
	}
}

// isRunning returns whether the server is running (thread-safe).
// isRunning 返回服务器是否正在运行（线程安全）。
func (s *Server) isRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// setRunning sets the running state (thread-safe).
// setRunning 设置运行状态（线程安全）。
func (s *Server) setRunning(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = running
}

// Start starts the HTTP server in the background.
// Start 在后台启动 HTTP 服务器。
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/parse", s.handleParse(ctx))

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.setRunning(true)

	go func() {
		logger.Get(ctx).Infof("[API] Server starting on :%d", s.config.Port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Get(ctx).Errorf("[API] Server error: %v", err)
			s.setRunning(false)
		}
	}()

	return nil
}

// Stop gracefully shuts the server down.
// Stop 优雅地关闭服务器。
func (s *Server) Stop() error {
	s.setRunning(false)
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}
