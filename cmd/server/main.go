package main

import (
	"github.com/gin-gonic/gin"
	"github.com/kelvinlyk2002/final-backend/internal/config"
	"github.com/kelvinlyk2002/final-backend/internal/exchange"
	"github.com/kelvinlyk2002/final-backend/internal/logger"
	"github.com/kelvinlyk2002/final-backend/internal/repository"
	"github.com/kelvinlyk2002/final-backend/internal/router"
	"github.com/kelvinlyk2002/final-backend/internal/task"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	level := logger.ParseLogLevel(cfg.Log.Level)
	if cfg.Log.Output == "file" {
		fileLogger, err := logger.NewWithFileRotation(level, cfg.Log.File)
		if err != nil {
			logger.Fatal("Failed to initialize file logger: %v", err)
		}
		logger.SetDefaultLogger(fileLogger)
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := repository.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 初始化汇率客户端
	rates := exchange.NewCoinbaseClient(cfg.Exchange)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, rates, cfg)

	// 启动定时任务
	manager := task.Start(db, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
