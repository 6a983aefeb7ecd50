package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Kaleidos/Vendora-API/internal/token"
	"github.com/gin-gonic/gin"
)

// TokenHandler 管理端 Token HTTP 处理器
type TokenHandler struct {
	service *token.Service
}

// NewTokenHandler 创建 TokenHandler 实例
func NewTokenHandler(service *token.Service) *TokenHandler {
	return &TokenHandler{service: service}
}

// CreateToken 签发管理端 Token
// @Summary 签发管理端 Token
// @Tags tokens
// @Accept json
// @Produce json
// @Param token body token.CreateTokenRequest true "Token 信息"
// @Success 201 {object} token.TokenDTO
// @Failure 400 {object} ErrorResponse
// @Router /api/tokens [post]
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var req token.CreateTokenRequest

	// 绑定请求体
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "参数验证失败: " + err.Error(),
		})
		return
	}

	// 调用 Service 签发 Token
	tok, err := h.service.CreateToken(req.Name, req.ExpiresAt)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, token.ErrInvalidExpiresAt) {
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	// 返回响应（包含完整 Token，仅此一次）
	c.JSON(http.StatusCreated, token.ToTokenDTO(tok, true))
}

// ListTokens 获取 Token 列表
// @Summary 获取 Token 列表（脱敏显示）
// @Tags tokens
// @Produce json
// @Success 200 {array} token.TokenDTO
// @Router /api/tokens [get]
func (h *TokenHandler) ListTokens(c *gin.Context) {
	tokens, err := h.service.ListTokens()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	// 转换为 DTO（脱敏显示）
	dtos := make([]*token.TokenDTO, len(tokens))
	for i, tok := range tokens {
		dtos[i] = token.ToTokenDTO(tok, false)
	}

	c.JSON(http.StatusOK, dtos)
}

// DisableToken 禁用 Token
// @Summary 禁用 Token
// @Tags tokens
// @Produce json
// @Param id path int true "Token ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/tokens/{id}/disable [post]
func (h *TokenHandler) DisableToken(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "无效的Token ID"})
		return
	}

	if err := h.service.DisableToken(uint(id)); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, token.ErrTokenNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteToken 删除 Token
// @Summary 删除 Token
// @Tags tokens
// @Produce json
// @Param id path int true "Token ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/tokens/{id} [delete]
func (h *TokenHandler) DeleteToken(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "无效的Token ID"})
		return
	}

	if err := h.service.DeleteToken(uint(id)); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, token.ErrTokenNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
