package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`              // 数据库文件路径
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // 最大连接数
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // 连接最大生命周期
	AutoMigrate     bool          `mapstructure:"auto_migrate"`      // 是否自动迁移
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port      int    `mapstructure:"port"`
	LogLevel  string `mapstructure:"log_level"`
	AdminAuth bool   `mapstructure:"admin_auth"` // 是否启用管理端令牌验证
}

// PlatformConfig 平台配置
type PlatformConfig struct {
	DefaultCountryISO  string `mapstructure:"default_country_iso"`  // 平台默认国家 ISO 代码
	DefaultCountryName string `mapstructure:"default_country_name"` // 平台默认国家名称
	VendorProfileImage bool   `mapstructure:"vendor_profile_image"` // 供应商头像能力开关
}

// Config 应用配置
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Platform PlatformConfig `mapstructure:"platform"`
}

// LoadConfig 加载配置（默认值 + .env + 环境变量覆盖）
func LoadConfig(configPath string) (*Config, error) {
	// 加载 .env 文件（不存在时忽略错误）
	_ = godotenv.Load()

	// 默认配置
	config := &Config{
		Server: ServerConfig{
			Port:      8080,
			LogLevel:  "info",
			AdminAuth: false,
		},
		Database: DatabaseConfig{
			Path:            "./data/vendora.db",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: time.Hour,
			AutoMigrate:     true,
		},
		Platform: PlatformConfig{
			DefaultCountryISO:  "US",
			DefaultCountryName: "United States",
			VendorProfileImage: true,
		},
	}

	// 支持环境变量覆盖
	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		config.Database.Path = dbPath
	}

	if port := os.Getenv("SERVER_PORT"); port != "" {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err == nil {
			config.Server.Port = p
		}
	}

	if adminAuth := os.Getenv("ADMIN_AUTH"); adminAuth == "true" {
		config.Server.AdminAuth = true
	}

	if iso := os.Getenv("DEFAULT_COUNTRY_ISO"); iso != "" {
		config.Platform.DefaultCountryISO = iso
	}

	if name := os.Getenv("DEFAULT_COUNTRY_NAME"); name != "" {
		config.Platform.DefaultCountryName = name
	}

	if profileImage := os.Getenv("VENDOR_PROFILE_IMAGE"); profileImage == "false" {
		config.Platform.VendorProfileImage = false
	}

	return config, nil
}
