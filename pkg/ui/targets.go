package ui

import "github.com/decker502/sadui/pkg/types"

// ImageTarget 颜色 + 精灵目标，由 ColorTint 和 SpriteSwap 驱动
type ImageTarget interface {
	Color() types.Color
	SetColor(c types.Color)
	Sprite() string
	SetSprite(id string)
}

// TextTarget 文本目标，由 TextSwap 和 TextColorTint 驱动
type TextTarget interface {
	Text() string
	SetText(s string)
	TextColor() types.Color
	SetTextColor(c types.Color)
}

// AnimatorTarget 接收动画触发器
type AnimatorTarget interface {
	SetTrigger(hash int32)
}

// Targets 按钮可驱动的目标集合，只需设置启用通道用到的那些
type Targets struct {
	Image    ImageTarget
	Text     TextTarget
	Animator AnimatorTarget
}

// TargetResolver 初始化时查找缺失的目标，类似宿主在同一节点上查找组件
type TargetResolver interface {
	ResolveImage() (ImageTarget, bool)
	ResolveText() (TextTarget, bool)
	ResolveAnimator() (AnimatorTarget, bool)
}
