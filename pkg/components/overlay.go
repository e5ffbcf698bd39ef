package components

// OverlayComponent 标记属于弹窗层的实体
// 存在弹窗层按钮时，PointerSystem 只对弹窗层做命中检测（模态）
type OverlayComponent struct{}
