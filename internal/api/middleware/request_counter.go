package middleware

import (
	"github.com/Kaleidos/Vendora-API/internal/stats"
	"github.com/gin-gonic/gin"
)

// OperationCounterMiddleware 操作计数中间件
// 按 "方法 路由" 维度统计所有通过的请求
func OperationCounterMiddleware(counter *stats.OperationCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 先完成路由匹配和处理，FullPath 此后才可用
		c.Next()

		operation := c.Request.Method + " " + c.FullPath()
		counter.Increment(operation)
	}
}
