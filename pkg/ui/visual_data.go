package ui

import (
	"github.com/decker502/sadui/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultTransitionDuration 新建 VisualData 的着色时长
const DefaultTransitionDuration = 0.1

// VisualData 单个 ButtonState 的视觉数据
type VisualData struct {
	// 颜色着色
	Color                   types.Color `yaml:"color"`
	ColorTransitionDuration float64     `yaml:"color_duration"`

	// 精灵切换，为空表示沿用 Normal 状态的精灵
	Sprite string `yaml:"sprite,omitempty"`

	// 动画，触发器为空时该状态不触发
	TransitionTrigger string `yaml:"trigger,omitempty"`
	triggerHash       int32

	// 文本切换
	Text string `yaml:"text,omitempty"`

	// 文本颜色着色
	TextColor                   types.Color `yaml:"text_color"`
	TextColorTransitionDuration float64     `yaml:"text_color_duration"`
}

// NewVisualData 默认数据：白色着色、黑色文本，两种颜色过渡都是 0.1 秒
func NewVisualData(trigger string) *VisualData {
	vd := &VisualData{
		Color:                       types.White,
		ColorTransitionDuration:     DefaultTransitionDuration,
		TransitionTrigger:           trigger,
		TextColor:                   types.Black,
		TextColorTransitionDuration: DefaultTransitionDuration,
	}
	vd.CalculateTriggerHash()
	return vd
}

// UnmarshalYAML 在 NewVisualData 的默认值上解码
// 省略的字段保留默认值，显式写 0 的时长仍为 0
func (vd *VisualData) UnmarshalYAML(value *yaml.Node) error {
	type plain VisualData
	p := plain(*NewVisualData(""))
	if err := value.Decode(&p); err != nil {
		return err
	}
	*vd = VisualData(p)
	vd.CalculateTriggerHash()
	return nil
}

// CalculateTriggerHash 刷新缓存的触发器ID
// 读入数据后调用；SetTransitionTrigger 会自行调用
func (vd *VisualData) CalculateTriggerHash() {
	vd.triggerHash = types.TriggerHash(vd.TransitionTrigger)
}

// TriggerHash 返回缓存的触发器ID
func (vd *VisualData) TriggerHash() int32 {
	return vd.triggerHash
}

// SetTransitionTrigger 同时修改触发器名和ID
func (vd *VisualData) SetTransitionTrigger(name string) {
	vd.TransitionTrigger = name
	vd.CalculateTriggerHash()
}

// VisualMap 按钮各状态的视觉布局
type VisualMap = types.OrderedMap[ButtonState, *VisualData]

// NewVisualMap 返回空布局
func NewVisualMap() *VisualMap {
	return types.NewOrderedMap[ButtonState, *VisualData]()
}

// DefaultVisuals 为 Normal、Highlighted、Pressed、Disabled 填入默认数据，触发器为状态名
func DefaultVisuals() *VisualMap {
	m := NewVisualMap()
	for _, s := range PointerStates {
		m.Set(s, NewVisualData(s.String()))
	}
	m.SnapshotToOrdered()
	return m
}
