package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kaleidos/Vendora-API/internal/models"
	"github.com/Kaleidos/Vendora-API/internal/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *token.Service) {
	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.AdminToken{}))

	tokenService := token.NewService(token.NewRepository(database))

	router := gin.New()
	router.POST("/protected", AdminAuthMiddleware(tokenService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router, tokenService
}

func performAuthRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAdminAuthMiddleware_ValidToken(t *testing.T) {
	router, tokenService := setupAuthRouter(t)

	created, err := tokenService.CreateToken("ops", nil)
	require.NoError(t, err)

	recorder := performAuthRequest(router, "Bearer "+created.Token)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAdminAuthMiddleware_MissingHeader(t *testing.T) {
	router, _ := setupAuthRouter(t)

	recorder := performAuthRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "MISSING_AUTH_HEADER")
}

func TestAdminAuthMiddleware_InvalidFormat(t *testing.T) {
	router, _ := setupAuthRouter(t)

	testCases := []struct {
		name   string
		header string
	}{
		{"no bearer prefix", "va-sometoken"},
		{"wrong scheme", "Basic va-sometoken"},
		{"empty token", "Bearer "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := performAuthRequest(router, tc.header)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "INVALID_AUTH_FORMAT")
		})
	}
}

func TestAdminAuthMiddleware_InvalidToken(t *testing.T) {
	router, _ := setupAuthRouter(t)

	recorder := performAuthRequest(router, "Bearer va-nonexistent")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INVALID_TOKEN")
}

func TestAdminAuthMiddleware_DisabledToken(t *testing.T) {
	router, tokenService := setupAuthRouter(t)

	created, err := tokenService.CreateToken("ops", nil)
	require.NoError(t, err)
	require.NoError(t, tokenService.DisableToken(created.ID))

	recorder := performAuthRequest(router, "Bearer "+created.Token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "TOKEN_DISABLED")
}
