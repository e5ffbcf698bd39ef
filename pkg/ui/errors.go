package ui

import "errors"

var (
	// ErrMissingTarget 启用的通道没有可驱动的目标
	ErrMissingTarget = errors.New("missing transition target")
	// ErrMissingVisualData 可达状态缺少视觉数据
	ErrMissingVisualData = errors.New("missing visual data")
	// ErrNotInitialized 操作需要先 Initialize
	ErrNotInitialized = errors.New("button not initialized")

	// ErrTabCountMismatch 标签按钮与内容数量不一致
	ErrTabCountMismatch = errors.New("number of tab buttons does not match tab contents")
	// ErrTabIndexOutOfRange 标签索引越界
	ErrTabIndexOutOfRange = errors.New("tab index out of range")
)
