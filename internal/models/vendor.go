package models

import (
	"time"

	"gorm.io/gorm"
)

// Vendor 供应商模型
// 多租户商城中的入驻商家，拥有独立的标识、审核状态和库存地点
type Vendor struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Name              string         `gorm:"type:varchar(255);not null;index" json:"name"`
	Slug              string         `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	NotificationEmail string         `gorm:"type:varchar(255)" json:"notification_email,omitempty"` // 可选，通知邮箱
	State             string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"state"`
	Priority          int            `gorm:"not null;index" json:"priority"` // 展示排序，非删除供应商间连续且唯一
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"` // 软删除支持

	// 关联关系
	StockLocations []StockLocation `gorm:"foreignKey:VendorID" json:"stock_locations,omitempty"`
	Auctions       []Auction       `gorm:"foreignKey:VendorID" json:"auctions,omitempty"`
	Products       []Product       `gorm:"foreignKey:VendorID" json:"products,omitempty"`
	Calendars      []Calendar      `gorm:"many2many:vendor_calendars" json:"calendars,omitempty"`
	Images         []VendorImage   `gorm:"foreignKey:VendorID" json:"images,omitempty"`
}

// TableName 指定表名
func (Vendor) TableName() string {
	return "vendors"
}

// VendorState 供应商状态常量
const (
	VendorStatePending = "pending" // 待审核（初始状态）
	VendorStateActive  = "active"  // 已激活
	VendorStateBlocked = "blocked" // 已封禁
)

// VendorSlug 供应商 Slug 历史记录
// 每次 slug 变更都保留旧值，保证历史链接仍可解析
type VendorSlug struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VendorID  uint      `gorm:"not null;index" json:"vendor_id"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 指定表名
func (VendorSlug) TableName() string {
	return "vendor_slugs"
}
