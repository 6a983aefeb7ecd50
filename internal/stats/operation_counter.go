package stats

import (
	"sync"
	"sync/atomic"
	"time"
)

// OperationCounter 操作计数器
// 按操作名维护累计计数，并用时间窗口滑动统计整体 QPS
type OperationCounter struct {
	totalOperations int64 // 总操作数（原子操作）

	// 按操作名的累计计数
	operationsMutex sync.RWMutex
	operations      map[string]int64

	// 时间窗口统计（用于 QPS 计算）
	windowMutex    sync.RWMutex
	currentWindow  *timeWindow
	previousWindow *timeWindow
	windowDuration time.Duration
}

// timeWindow 时间窗口
type timeWindow struct {
	count     int64
	startTime time.Time
}

// NewOperationCounter 创建操作计数器
func NewOperationCounter(windowDuration time.Duration) *OperationCounter {
	if windowDuration == 0 {
		windowDuration = 60 * time.Second // 默认 60 秒窗口
	}

	counter := &OperationCounter{
		operations:     make(map[string]int64),
		windowDuration: windowDuration,
		currentWindow: &timeWindow{
			startTime: time.Now(),
		},
		previousWindow: &timeWindow{
			startTime: time.Now().Add(-windowDuration),
		},
	}

	// 启动后台协程，定期滚动时间窗口
	go counter.rotateWindows()

	return counter
}

// Increment 增加指定操作的计数
func (oc *OperationCounter) Increment(operation string) {
	// 增加总计数（原子操作）
	atomic.AddInt64(&oc.totalOperations, 1)

	// 增加操作维度计数
	oc.operationsMutex.Lock()
	oc.operations[operation]++
	oc.operationsMutex.Unlock()

	// 增加当前窗口计数
	oc.windowMutex.Lock()
	oc.currentWindow.count++
	oc.windowMutex.Unlock()
}

// GetTotal 获取总操作数
func (oc *OperationCounter) GetTotal() int64 {
	return atomic.LoadInt64(&oc.totalOperations)
}

// GetOperationTotals 获取各操作的累计计数（返回副本）
func (oc *OperationCounter) GetOperationTotals() map[string]int64 {
	oc.operationsMutex.RLock()
	defer oc.operationsMutex.RUnlock()

	totals := make(map[string]int64, len(oc.operations))
	for operation, count := range oc.operations {
		totals[operation] = count
	}
	return totals
}

// GetQPS 获取当前 QPS（每秒操作数）
// 基于滑动时间窗口计算
func (oc *OperationCounter) GetQPS() float64 {
	oc.windowMutex.RLock()
	defer oc.windowMutex.RUnlock()

	now := time.Now()

	// 计算当前窗口已经过去的时间
	currentElapsed := now.Sub(oc.currentWindow.startTime).Seconds()
	if currentElapsed == 0 {
		currentElapsed = 1 // 避免除零
	}

	// 当前窗口的 QPS
	currentQPS := float64(oc.currentWindow.count) / currentElapsed

	// 如果当前窗口时间很短，结合上一个窗口的数据
	if currentElapsed < oc.windowDuration.Seconds() {
		prevWeight := (oc.windowDuration.Seconds() - currentElapsed) / oc.windowDuration.Seconds()
		prevQPS := float64(oc.previousWindow.count) / oc.windowDuration.Seconds()

		// 加权平均
		return currentQPS*(1-prevWeight) + prevQPS*prevWeight
	}

	return currentQPS
}

// rotateWindows 定期滚动时间窗口
func (oc *OperationCounter) rotateWindows() {
	ticker := time.NewTicker(oc.windowDuration)
	defer ticker.Stop()

	for range ticker.C {
		oc.windowMutex.Lock()

		// 将当前窗口变为前一个窗口
		oc.previousWindow = oc.currentWindow

		// 创建新的当前窗口
		oc.currentWindow = &timeWindow{
			startTime: time.Now(),
			count:     0,
		}

		oc.windowMutex.Unlock()
	}
}

// GetStats 获取统计信息
func (oc *OperationCounter) GetStats() OperationStats {
	return OperationStats{
		Total:      oc.GetTotal(),
		CurrentQPS: oc.GetQPS(),
		Operations: oc.GetOperationTotals(),
	}
}

// OperationStats 操作统计信息
type OperationStats struct {
	Total      int64            `json:"total"`
	CurrentQPS float64          `json:"current_qps"`
	Operations map[string]int64 `json:"operations"`
}
