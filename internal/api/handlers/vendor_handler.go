package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Kaleidos/Vendora-API/internal/vendor"
	"github.com/gin-gonic/gin"
)

// VendorHandler 供应商 HTTP 处理器
type VendorHandler struct {
	service *vendor.Service
}

// NewVendorHandler 创建 VendorHandler 实例
func NewVendorHandler(service *vendor.Service) *VendorHandler {
	return &VendorHandler{service: service}
}

// ErrorResponse 错误响应格式
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateVendor 创建供应商
// @Summary 创建供应商
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body vendor.CreateVendorRequest true "供应商信息"
// @Success 201 {object} vendor.VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/vendors [post]
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req vendor.CreateVendorRequest

	// 绑定请求体
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "参数验证失败: " + err.Error(),
		})
		return
	}

	// 调用 Service 创建供应商
	v, err := h.service.CreateVendor(req)
	if err != nil {
		c.JSON(h.getErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, v)
}

// ListVendors 查询供应商列表
// @Summary 查询供应商列表（按展示排序）
// @Tags vendors
// @Produce json
// @Param ids query string false "供应商 ID 集合，逗号分隔"
// @Param state query string false "状态过滤" Enums(pending, active, blocked)
// @Success 200 {array} vendor.VendorListItem
// @Failure 400 {object} ErrorResponse
// @Router /api/vendors [get]
func (h *VendorHandler) ListVendors(c *gin.Context) {
	// 解析 ids 查询参数（逗号分隔）
	var ids []uint
	if idsParam := c.Query("ids"); idsParam != "" {
		for _, part := range strings.Split(idsParam, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "无效的供应商ID集合"})
				return
			}
			ids = append(ids, uint(id))
		}
	}

	items, err := h.service.ListVendors(ids, c.Query("state"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetVendor 根据 ID 获取供应商
// @Summary 获取单个供应商
// @Tags vendors
// @Produce json
// @Param id path int true "供应商ID"
// @Success 200 {object} vendor.VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vendors/{id} [get]
func (h *VendorHandler) GetVendor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	v, err := h.service.GetVendor(id)
	if err != nil {
		c.JSON(h.getErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, v)
}

// GetVendorBySlug 根据 slug 获取供应商
// @Summary 根据 slug 获取供应商（历史 slug 仍可解析）
// @Tags vendors
// @Produce json
// @Param slug path string true "供应商 slug"
// @Success 200 {object} vendor.VendorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vendors/slug/{slug} [get]
func (h *VendorHandler) GetVendorBySlug(c *gin.Context) {
	v, err := h.service.GetVendorBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(h.getErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, v)
}

// RenameVendor 供应商改名
// @Summary 供应商改名
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path int true "供应商ID"
// @Param vendor body vendor.RenameVendorRequest true "新名称"
// @Success 200 {object} vendor.VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/vendors/{id}/name [put]
func (h *VendorHandler) RenameVendor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req vendor.RenameVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "参数验证失败: " + err.Error(),
		})
		return
	}

	v, err := h.service.RenameVendor(id, req.Name)
	if err != nil {
		c.JSON(h.getErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, v)
}

// ActivateVendor 激活供应商
// @Summary 激活供应商
// @Tags vendors
// @Produce json
// @Param id path int true "供应商ID"
// @Success 200 {object} vendor.VendorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vendors/{id}/activate [post]
func (h *VendorHandler) ActivateVendor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	v, err := h.service.ActivateVendor(id)
	if err != nil {
		c.JSON(h.getErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, v)
}

// BlockVendor 封禁供应商
// @Summary 封禁供应商
// @Tags vendors
// @Produce json
// @Param id path int true "供应商ID"
// @Success 200 {object} vendor.VendorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vendors/{id}/block [post]
func (h *VendorHandler) BlockVendor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	v, err := h.service.BlockVendor(id)
	if err != nil {
		c.JSON(h.getErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, v)
}

// UpdateNotificationEmail 更新通知邮箱
// @Summary 更新供应商通知邮箱（空字符串表示清除）
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path int true "供应商ID"
// @Param email body vendor.UpdateNotificationEmailRequest true "通知邮箱"
// @Success 200 {object} vendor.VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vendors/{id}/notification-email [put]
func (h *VendorHandler) UpdateNotificationEmail(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req vendor.UpdateNotificationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "参数验证失败: " + err.Error(),
		})
		return
	}

	v, err := h.service.UpdateNotificationEmail(id, req.NotificationEmail)
	if err != nil {
		c.JSON(h.getErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, v)
}

// ReorderVendor 调整供应商展示排序
// @Summary 调整供应商展示排序
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path int true "供应商ID"
// @Param priority body vendor.ReorderVendorRequest true "目标排名"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vendors/{id}/priority [put]
func (h *VendorHandler) ReorderVendor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req vendor.ReorderVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "参数验证失败: " + err.Error(),
		})
		return
	}

	if err := h.service.ReorderVendor(id, req.Priority); err != nil {
		c.JSON(h.getErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetProfileImage 设置供应商头像
// @Summary 设置供应商头像（需开启能力开关）
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path int true "供应商ID"
// @Param image body vendor.SetProfileImageRequest true "头像信息"
// @Success 200 {object} vendor.VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/vendors/{id}/profile-image [put]
func (h *VendorHandler) SetProfileImage(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req vendor.SetProfileImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "参数验证失败: " + err.Error(),
		})
		return
	}

	v, err := h.service.SetProfileImage(id, req)
	if err != nil {
		c.JSON(h.getErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, v)
}

// DeleteVendor 删除供应商（软删除）
// @Summary 删除供应商
// @Description 供应商仍有关联的拍卖、商品或日历时拒绝删除
// @Tags vendors
// @Produce json
// @Param id path int true "供应商ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/vendors/{id} [delete]
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteVendor(id); err != nil {
		c.JSON(h.getErrorStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID 解析路径中的供应商 ID
func (h *VendorHandler) parseID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "无效的供应商ID"})
		return 0, false
	}
	return uint(id), true
}

// getErrorStatus 根据错误类型映射 HTTP 状态码
func (h *VendorHandler) getErrorStatus(err error) int {
	var conflict *vendor.DependencyConflictError

	switch {
	case errors.Is(err, vendor.ErrVendorNotFound):
		return http.StatusNotFound
	case errors.Is(err, vendor.ErrVendorNameExists),
		errors.Is(err, vendor.ErrVendorSlugExists):
		return http.StatusConflict
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.Is(err, vendor.ErrVendorNameEmpty),
		errors.Is(err, vendor.ErrInvalidVendorName),
		errors.Is(err, vendor.ErrInvalidEmail),
		errors.Is(err, vendor.ErrProfileImageDisabled),
		errors.Is(err, vendor.ErrUnknownTransition):
		return http.StatusBadRequest
	case errors.Is(err, vendor.ErrDefaultCountryMissing):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
