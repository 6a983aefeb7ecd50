package models

import "time"

// AdminToken 管理端 API 令牌
// 用于验证管理端对供应商接口的写操作权限
type AdminToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	Token     string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"token"`
	Enabled   bool       `gorm:"default:true;not null" json:"enabled"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName 指定表名
func (AdminToken) TableName() string {
	return "admin_tokens"
}
