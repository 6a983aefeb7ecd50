package token

import (
	"strings"
	"testing"
	"time"

	"github.com/Kaleidos/Vendora-API/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) *Service {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = database.AutoMigrate(&models.AdminToken{})
	require.NoError(t, err)

	return NewService(NewRepository(database))
}

func TestGenerateTokenValue(t *testing.T) {
	value, err := GenerateTokenValue()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(value, "va-"))

	// 两次生成不应相同
	other, err := GenerateTokenValue()
	require.NoError(t, err)
	assert.NotEqual(t, value, other)
}

func TestService_CreateToken(t *testing.T) {
	service := setupTestService(t)

	token, err := service.CreateToken("ops", nil)
	require.NoError(t, err)
	assert.NotZero(t, token.ID)
	assert.Equal(t, "ops", token.Name)
	assert.True(t, token.Enabled)
	assert.Nil(t, token.ExpiresAt)
	assert.True(t, strings.HasPrefix(token.Token, "va-"))
}

func TestService_CreateToken_PastExpiresAt(t *testing.T) {
	service := setupTestService(t)

	past := time.Now().Add(-time.Hour)
	_, err := service.CreateToken("ops", &past)
	assert.ErrorIs(t, err, ErrInvalidExpiresAt)
}

func TestService_ValidateToken(t *testing.T) {
	service := setupTestService(t)

	token, err := service.CreateToken("ops", nil)
	require.NoError(t, err)

	validated, err := service.ValidateToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, token.ID, validated.ID)
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	service := setupTestService(t)

	_, err := service.ValidateToken("va-nonexistent")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ValidateToken_Disabled(t *testing.T) {
	service := setupTestService(t)

	token, err := service.CreateToken("ops", nil)
	require.NoError(t, err)

	require.NoError(t, service.DisableToken(token.ID))

	_, err = service.ValidateToken(token.Token)
	assert.ErrorIs(t, err, ErrTokenDisabled)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	service := setupTestService(t)

	future := time.Now().Add(time.Hour)
	token, err := service.CreateToken("ops", &future)
	require.NoError(t, err)

	// 手动回拨过期时间模拟已过期的 Token
	past := time.Now().Add(-time.Minute)
	err = service.repo.db.Model(&models.AdminToken{}).
		Where("id = ?", token.ID).
		Update("expires_at", past).Error
	require.NoError(t, err)

	_, err = service.ValidateToken(token.Token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestService_DeleteToken(t *testing.T) {
	service := setupTestService(t)

	token, err := service.CreateToken("ops", nil)
	require.NoError(t, err)

	require.NoError(t, service.DeleteToken(token.ID))

	tokens, err := service.ListTokens()
	require.NoError(t, err)
	assert.Len(t, tokens, 0)

	assert.ErrorIs(t, service.DeleteToken(token.ID), ErrTokenNotFound)
}

func TestService_DisableToken_NotFound(t *testing.T) {
	service := setupTestService(t)

	assert.ErrorIs(t, service.DisableToken(999), ErrTokenNotFound)
}

func TestMaskToken(t *testing.T) {
	masked := MaskToken("va-abcdefghijklmnop")
	assert.Equal(t, "va-****mnop", masked)

	assert.Equal(t, "****", MaskToken("short"))
}
