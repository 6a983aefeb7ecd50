package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Kaleidos/Vendora-API/internal/config"
	"github.com/Kaleidos/Vendora-API/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDatabase 初始化数据库连接
func InitDatabase(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	// 确保数据目录存在
	dbDir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}

	// 配置 GORM 日志级别
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}

	// 连接数据库
	db, err := gorm.Open(sqlite.Open(cfg.Path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 SQL DB 以配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取 SQL DB 失败: %w", err)
	}

	// 配置连接池参数
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.Printf("✅ 数据库连接成功: %s", cfg.Path)
	log.Printf("📊 连接池配置: MaxOpen=%d, MaxIdle=%d, Lifetime=%s",
		cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)

	return db, nil
}

// AutoMigrate 自动迁移所有数据模型
func AutoMigrate(db *gorm.DB) error {
	log.Println("🔄 开始数据库迁移...")

	// 注册日历关联表，保证 many2many 走显式定义的复合主键表
	if err := db.SetupJoinTable(&models.Vendor{}, "Calendars", &models.VendorCalendar{}); err != nil {
		return fmt.Errorf("注册日历关联表失败: %w", err)
	}

	// 迁移所有模型
	err := db.AutoMigrate(
		&models.Country{},
		&models.Vendor{},
		&models.VendorSlug{},
		&models.StockLocation{},
		&models.Auction{},
		&models.Product{},
		&models.Calendar{},
		&models.VendorCalendar{},
		&models.VendorImage{},
		&models.VendorEvent{},
		&models.AdminToken{},
	)

	if err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}

	log.Println("✅ 数据库迁移完成")
	log.Println("   - countries 表")
	log.Println("   - vendors 表")
	log.Println("   - vendor_slugs 表")
	log.Println("   - stock_locations 表")
	log.Println("   - auctions / products / calendars 表")
	log.Println("   - vendor_images 表")
	log.Println("   - vendor_events 表")
	log.Println("   - admin_tokens 表")

	return nil
}

// SeedDefaultCountry 确保平台默认国家存在（幂等）
func SeedDefaultCountry(db *gorm.DB, cfg *config.PlatformConfig) error {
	var country models.Country
	err := db.Where("iso = ?", cfg.DefaultCountryISO).First(&country).Error
	if err == nil {
		// 已存在，确保 Default 标记正确
		if !country.Default {
			return db.Model(&country).Update("default", true).Error
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("查询默认国家失败: %w", err)
	}

	country = models.Country{
		ISO:     cfg.DefaultCountryISO,
		Name:    cfg.DefaultCountryName,
		Default: true,
	}
	if err := db.Create(&country).Error; err != nil {
		return fmt.Errorf("创建默认国家失败: %w", err)
	}

	log.Printf("✅ 平台默认国家已初始化: %s (%s)", country.Name, country.ISO)
	return nil
}

// CloseDatabase 关闭数据库连接
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("获取 SQL DB 失败: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("关闭数据库失败: %w", err)
	}

	log.Println("👋 数据库连接已关闭")
	return nil
}
