package db

import (
	"path/filepath"
	"testing"

	"github.com/Kaleidos/Vendora-API/internal/config"
	"github.com/Kaleidos/Vendora-API/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestInitDatabase(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "vendora.db"),
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}

	database, err := InitDatabase(cfg)
	require.NoError(t, err)
	defer CloseDatabase(database)

	// 验证连接可用
	sqlDB, err := database.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}

func TestInitDatabase_CreatesDataDir(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "nested", "dir", "vendora.db"),
	}

	database, err := InitDatabase(cfg)
	require.NoError(t, err)
	defer CloseDatabase(database)
}

func TestAutoMigrate(t *testing.T) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(database))

	// 验证核心表已创建
	tables := []string{
		"countries", "vendors", "vendor_slugs", "stock_locations",
		"auctions", "products", "calendars", "vendor_calendars",
		"vendor_images", "vendor_events", "admin_tokens",
	}
	for _, table := range tables {
		assert.True(t, database.Migrator().HasTable(table), "表 %s 应已创建", table)
	}
}

func TestSeedDefaultCountry(t *testing.T) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(database))

	cfg := &config.PlatformConfig{
		DefaultCountryISO:  "US",
		DefaultCountryName: "United States",
	}

	require.NoError(t, SeedDefaultCountry(database, cfg))

	var country models.Country
	err = database.Where(`"default" = ?`, true).First(&country).Error
	require.NoError(t, err)
	assert.Equal(t, "US", country.ISO)

	// 幂等：重复执行不会产生第二条记录
	require.NoError(t, SeedDefaultCountry(database, cfg))

	var count int64
	database.Model(&models.Country{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
