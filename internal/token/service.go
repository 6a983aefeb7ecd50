package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/Kaleidos/Vendora-API/internal/models"
)

var (
	// ErrInvalidToken Token 无效
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired Token 已过期
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenDisabled Token 已禁用
	ErrTokenDisabled = errors.New("token disabled")
	// ErrInvalidExpiresAt 过期时间必须是未来时间
	ErrInvalidExpiresAt = errors.New("expires_at must be in the future")
)

// Service 管理端 Token 业务逻辑层
type Service struct {
	repo *Repository
}

// NewService 创建 Service 实例
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// GenerateTokenValue 生成唯一的 Token 值
// 格式: va- + 32 字节 base64 编码 (URLEncoding)
func GenerateTokenValue() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	token := "va-" + base64.URLEncoding.EncodeToString(bytes)
	return token, nil
}

// CreateToken 签发管理端 Token
func (s *Service) CreateToken(name string, expiresAt *time.Time) (*models.AdminToken, error) {
	// 验证过期时间
	if expiresAt != nil && expiresAt.Before(time.Now()) {
		return nil, ErrInvalidExpiresAt
	}

	// 生成唯一 Token 值
	var tokenValue string
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		value, err := GenerateTokenValue()
		if err != nil {
			return nil, err
		}

		// 检查是否已存在
		exists, err := s.repo.CheckValueExists(value)
		if err != nil {
			return nil, err
		}
		if !exists {
			tokenValue = value
			break
		}

		// 如果重试次数用完，返回错误
		if i == maxRetries-1 {
			return nil, ErrTokenValueExists
		}
	}

	// 创建 Token 对象
	token := &models.AdminToken{
		Name:      name,
		Token:     tokenValue,
		Enabled:   true,
		ExpiresAt: expiresAt,
	}

	// 保存到数据库
	if err := s.repo.Create(token); err != nil {
		return nil, err
	}

	return token, nil
}

// ListTokens 获取所有 Token 列表
func (s *Service) ListTokens() ([]*models.AdminToken, error) {
	return s.repo.FindAll()
}

// DisableToken 禁用 Token
func (s *Service) DisableToken(id uint) error {
	return s.repo.UpdateEnabled(id, false)
}

// DeleteToken 删除 Token
func (s *Service) DeleteToken(id uint) error {
	return s.repo.Delete(id)
}

// ValidateToken 验证 Token (用于认证中间件)
// 检查 Token 是否存在、是否启用、是否过期
func (s *Service) ValidateToken(tokenValue string) (*models.AdminToken, error) {
	// 查找 Token
	token, err := s.repo.FindByValue(tokenValue)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	// 检查是否启用
	if !token.Enabled {
		return nil, ErrTokenDisabled
	}

	// 检查是否过期
	if token.ExpiresAt != nil && token.ExpiresAt.Before(time.Now()) {
		return nil, ErrTokenExpired
	}

	return token, nil
}

// MaskToken 脱敏显示 Token
// 格式: va-****{最后4位}
func MaskToken(token string) string {
	if len(token) < 8 {
		return "****"
	}
	last4 := token[len(token)-4:]
	return "va-****" + last4
}
