package models

import (
	"time"

	"gorm.io/gorm"
)

// StockLocation 库存地点
// 供应商创建时自动配置一个同名库存地点，国家取平台默认国家
type StockLocation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	VendorID  uint           `gorm:"not null;index" json:"vendor_id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	CountryID uint           `gorm:"not null" json:"country_id"`
	Default   bool           `gorm:"not null;default:false" json:"default"` // 供应商的默认库存地点
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Country Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

// TableName 指定表名
func (StockLocation) TableName() string {
	return "stock_locations"
}

// Country 国家
// 平台级基础数据，Default 标记平台默认国家
type Country struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	ISO     string `gorm:"type:varchar(2);not null;uniqueIndex" json:"iso"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Default bool   `gorm:"not null;default:false" json:"default"`
}

// TableName 指定表名
func (Country) TableName() string {
	return "countries"
}
