package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/zooyer/dwgdash/config"
	"github.com/zooyer/dwgdash/convert"
	"github.com/zooyer/dwgdash/logging"
	"github.com/zooyer/dwgdash/metrics"
	"github.com/zooyer/dwgdash/registry"
	"github.com/zooyer/dwgdash/server"
	"log/slog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("配置加载失败", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stdout, nil)).Error("日志初始化失败", "error", err)
		os.Exit(1)
	}

	logger.Info("dwgdash 启动", "port", cfg.Server.Port)

	collector, err := metrics.NewHTTPCollector()
	if err != nil {
		logger.Error("指标初始化失败", "error", err)
		os.Exit(1)
	}

	var (
		reg       = registry.NewMemory(cfg.Upload.TTL)
		converter = convert.New(cfg.Convert.Path, cfg.Convert.Timeout)
		loader    = server.NewLoader(converter, cfg.Upload.Dir)
		handler   = server.NewHandler(reg, loader, logger, cfg.Upload.MaxBytes)
		router    = server.NewRouter(handler, collector)
		srv       = server.New(cfg.Server, logger, router)
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("服务异常退出", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("收到退出信号", "signal", sig.String())
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("停机失败", "error", err)
			os.Exit(1)
		}
	}
}
