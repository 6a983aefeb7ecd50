package models

import "time"

// VendorEvent 供应商审计事件
// 记录供应商生命周期中的关键操作，供管理端追溯
type VendorEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VendorID  uint      `gorm:"not null;index" json:"vendor_id"`
	Type      string    `gorm:"type:varchar(50);not null;index" json:"type"` // created, renamed, activated, etc.
	Message   string    `gorm:"type:text;not null" json:"message"`
	Level     string    `gorm:"type:varchar(20);not null;default:'info'" json:"level"` // info, warning, error
	Metadata  string    `gorm:"type:json" json:"metadata,omitempty"`                   // 额外的元数据（JSON 格式）
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (VendorEvent) TableName() string {
	return "vendor_events"
}

// EventType 事件类型常量
const (
	EventTypeVendorCreated       = "vendor_created"        // 供应商创建
	EventTypeVendorRenamed       = "vendor_renamed"        // 供应商改名
	EventTypeVendorActivated     = "vendor_activated"      // 供应商激活
	EventTypeVendorBlocked       = "vendor_blocked"        // 供应商封禁
	EventTypeVendorDeleted       = "vendor_deleted"        // 供应商删除
	EventTypeVendorDeleteRefused = "vendor_delete_refused" // 删除被依赖校验拒绝
)

// EventLevel 事件级别常量
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)
