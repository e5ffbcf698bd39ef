package components

import (
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/decker502/sadui/pkg/ui/popup"
)

// PopupComponent 弹窗面板：标题 + 内容列
// 响应按钮是独立的按钮实体，记录在 ButtonEntities 中以便统一销毁
type PopupComponent struct {
	Title    string
	Contents []popup.Content
	Width    float64
	Height   float64

	// ButtonEntities 弹窗拥有的按钮实体ID
	ButtonEntities []ecs.EntityID
}
