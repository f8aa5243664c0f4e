package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gangadhar0424/Warehouse-management-system/internal/app/config"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/modules/mdmodel"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/domains/services/svpredict"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/pkg/logger"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/server/handlers/health"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/server/handlers/predict"
	"github.com/gangadhar0424/Warehouse-management-system/internal/app/server/routers"
)

var configPath = flag.String("config", "config/config.yaml", "配置文件路径")

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化日志
	appLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()

	// 3. 启动时加载模型，之后注册表只读。
	//    单个模型加载失败不阻断启动，对应任务返回 503。
	registry := mdmodel.NewRegistry(ctx, cfg.Models, appLogger)

	// 4. 组装服务与处理器
	predictService := svpredict.NewPredictService(registry, appLogger)
	predictHandler := predict.NewPredictHandler(predictService, appLogger)
	healthHandler := health.NewHealthHandler(registry)

	engine := routers.SetupRoutes(predictHandler, healthHandler, appLogger)

	// 5. 创建 HTTP Server
	addr := fmt.Sprintf(":%s", cfg.GetServerPort())
	server := &http.Server{
		Addr:    addr,
		Handler: engine,
	}

	// 6. 启动 HTTP Server（后台 goroutine）
	serverErrChan := make(chan error, 1)
	go func() {
		appLogger.Infof(ctx, "%s listening on %s", cfg.App.Name, addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	// 7. 优雅停机处理
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		appLogger.Infof(ctx, "Received shutdown signal, gracefully shutting down...")
		gracefulShutdown(ctx, server, appLogger)
	case err := <-serverErrChan:
		appLogger.Errorf(ctx, "HTTP server error: %v", err)
		os.Exit(1)
	}

	served, failed := predictService.Stats()
	appLogger.Infof(ctx, "Application stopped, predictions served=%d failed=%d", served, failed)
}

// gracefulShutdown 优雅停机
func gracefulShutdown(ctx context.Context, server *http.Server, appLogger logger.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf(ctx, "HTTP server shutdown error: %v", err)
	} else {
		appLogger.Infof(ctx, "HTTP server stopped gracefully")
	}
}
