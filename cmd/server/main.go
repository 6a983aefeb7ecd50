package main

import (
	"fmt"
	"log"

	"github.com/Kaleidos/Vendora-API/internal/api"
	"github.com/Kaleidos/Vendora-API/internal/config"
	"github.com/Kaleidos/Vendora-API/internal/db"
)

const (
	// Version 项目版本
	Version = "0.1.0"
	// AppName 应用名称
	AppName = "Vendora-API"
)

func main() {
	log.Printf("=== %s v%s ===\n", AppName, Version)
	log.Println("多租户商城供应商管理服务")

	// 加载配置
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatalf("❌ 加载配置失败: %v", err)
	}

	// 初始化数据库
	database, err := db.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("❌ 初始化数据库失败: %v", err)
	}
	defer func() {
		if err := db.CloseDatabase(database); err != nil {
			log.Printf("⚠️ 关闭数据库失败: %v", err)
		}
	}()

	// 自动迁移
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(database); err != nil {
			log.Fatalf("❌ 数据库迁移失败: %v", err)
		}
	}

	// 初始化平台默认国家（库存地点配置依赖）
	if err := db.SeedDefaultCountry(database, &cfg.Platform); err != nil {
		log.Fatalf("❌ 初始化默认国家失败: %v", err)
	}

	// 配置路由并启动服务
	router := api.SetupRouter(database, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("🚀 服务启动: http://localhost%s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("❌ 服务启动失败: %v", err)
	}
}
