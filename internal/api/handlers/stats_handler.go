package handlers

import (
	"net/http"

	"github.com/Kaleidos/Vendora-API/internal/events"
	"github.com/Kaleidos/Vendora-API/internal/models"
	"github.com/Kaleidos/Vendora-API/internal/stats"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsHandler 统计信息处理器
type StatsHandler struct {
	db               *gorm.DB
	operationCounter *stats.OperationCounter
	eventService     *events.Service
}

// NewStatsHandler 创建统计处理器
func NewStatsHandler(db *gorm.DB, operationCounter *stats.OperationCounter, eventService *events.Service) *StatsHandler {
	return &StatsHandler{
		db:               db,
		operationCounter: operationCounter,
		eventService:     eventService,
	}
}

// SystemStats 系统统计信息响应
type SystemStats struct {
	Vendors      VendorStats      `json:"vendors"`
	Requests     RequestStats     `json:"requests"`
	RecentEvents []Event          `json:"recent_events"`
	Operations   map[string]int64 `json:"operations"`
}

// VendorStats 供应商统计
type VendorStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Active  int `json:"active"`
	Blocked int `json:"blocked"`
}

// RequestStats 请求统计
type RequestStats struct {
	Total      int64   `json:"total"`
	CurrentQPS float64 `json:"current_qps"`
}

// Event 事件日志
type Event struct {
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Message   string `json:"message"`
}

// GetStats 获取系统统计信息
// @Summary 获取系统统计信息
// @Description 获取系统概览统计数据，包括供应商状态分布、请求统计、QPS 等
// @Tags Stats
// @Produce json
// @Success 200 {object} SystemStats
// @Router /api/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	// 查询供应商状态分布（软删除的供应商自动排除）
	var total, pending, active, blocked int64
	h.db.Model(&models.Vendor{}).Count(&total)
	h.db.Model(&models.Vendor{}).Where("state = ?", models.VendorStatePending).Count(&pending)
	h.db.Model(&models.Vendor{}).Where("state = ?", models.VendorStateActive).Count(&active)
	h.db.Model(&models.Vendor{}).Where("state = ?", models.VendorStateBlocked).Count(&blocked)

	// 获取操作统计
	operationStats := h.operationCounter.GetStats()

	// 获取最近事件（最多 10 条）
	recentEventsData, err := h.eventService.GetRecentEvents(10)
	recentEvents := make([]Event, 0, len(recentEventsData))

	if err == nil {
		for _, evt := range recentEventsData {
			recentEvents = append(recentEvents, Event{
				Timestamp: evt.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
				Type:      evt.Type,
				Message:   evt.Message,
			})
		}
	}

	response := SystemStats{
		Vendors: VendorStats{
			Total:   int(total),
			Pending: int(pending),
			Active:  int(active),
			Blocked: int(blocked),
		},
		Requests: RequestStats{
			Total:      operationStats.Total,
			CurrentQPS: operationStats.CurrentQPS,
		},
		RecentEvents: recentEvents,
		Operations:   operationStats.Operations,
	}

	c.JSON(http.StatusOK, response)
}
