// Package popup 模态弹窗的构建与显示：标题、一列内容和一排响应按钮
package popup

// ContentType 弹窗如何排布一项内容
type ContentType int

const (
	ContentString ContentType = iota
	ContentSprite
	ContentSpacer
	ContentOther
)

func (t ContentType) String() string {
	switch t {
	case ContentString:
		return "string"
	case ContentSprite:
		return "sprite"
	case ContentSpacer:
		return "spacer"
	case ContentOther:
		return "other"
	default:
		return "unknown"
	}
}

// Content 弹窗正文中的一项，只有与 Type 对应的字段有意义
type Content struct {
	Type ContentType

	Text         string
	Sprite       string // sprite id
	SpacerHeight float64
	Other        any
}

// ButtonData 响应按钮描述
type ButtonData struct {
	HasTitle bool
	Title    string
	Callback func()
}

// Data 构建弹窗所需的全部数据
type Data struct {
	HasTitle bool
	Title    string

	Contents []Content
	Buttons  []ButtonData

	// DestroySelfDelay > 0 时置位
	ShouldDestroySelf bool
	DestroySelfDelay  float64
}
