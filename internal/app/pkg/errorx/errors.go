package errorx

import "errors"

// 业务错误定义
var (
	// ErrModelUnavailable 模型启动时加载失败，该任务整个进程生命周期内不可用
	ErrModelUnavailable = errors.New("model not loaded")
	// ErrUnknownTask 未知的预测任务
	ErrUnknownTask = errors.New("unknown prediction task")
)
