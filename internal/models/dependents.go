package models

import (
	"time"

	"gorm.io/gorm"
)

// Auction 拍卖活动
// 由拍卖子系统维护，供应商核心只在删除守卫中检查其存在性
type Auction struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	VendorID  uint           `gorm:"not null;index" json:"vendor_id"`
	Title     string         `gorm:"type:varchar(255);not null" json:"title"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName 指定表名
func (Auction) TableName() string {
	return "auctions"
}

// Product 商品
// 由商品子系统维护，这里只保留删除守卫需要的最小字段
type Product struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	VendorID  uint           `gorm:"not null;index" json:"vendor_id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// Calendar 营业日历
type Calendar struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Calendar) TableName() string {
	return "calendars"
}

// VendorCalendar 供应商-日历关联表（复合主键）
type VendorCalendar struct {
	VendorID   uint `gorm:"primaryKey" json:"vendor_id"`
	CalendarID uint `gorm:"primaryKey" json:"calendar_id"`
}

// TableName 指定表名
func (VendorCalendar) TableName() string {
	return "vendor_calendars"
}

// VendorImage 供应商图片
// Position 决定图集展示顺序；Profile 标记为头像（需开启对应能力开关）
type VendorImage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	VendorID  uint           `gorm:"not null;index" json:"vendor_id"`
	URL       string         `gorm:"type:varchar(512);not null" json:"url"`
	Alt       string         `gorm:"type:varchar(255)" json:"alt,omitempty"`
	Position  int            `gorm:"not null;default:0" json:"position"`
	Profile   bool           `gorm:"not null;default:false" json:"profile"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName 指定表名
func (VendorImage) TableName() string {
	return "vendor_images"
}
