package ui

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ButtonState 按钮的交互状态
type ButtonState int

const (
	// StateNormal 空闲
	StateNormal ButtonState = iota
	// StateHighlighted 指针悬停在按钮上
	StateHighlighted
	// StatePressed 指针悬停且按下
	StatePressed
	// StateSelected 只能由外部设置，例如 TabController
	StateSelected
	// StateDisabled 按钮不可交互
	StateDisabled
)

// AllButtonStates 按声明顺序列出所有状态
var AllButtonStates = []ButtonState{StateNormal, StateHighlighted, StatePressed, StateSelected, StateDisabled}

// PointerStates DetermineState 可能产生的状态
var PointerStates = []ButtonState{StateNormal, StateHighlighted, StatePressed, StateDisabled}

func (s ButtonState) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateHighlighted:
		return "Highlighted"
	case StatePressed:
		return "Pressed"
	case StateSelected:
		return "Selected"
	case StateDisabled:
		return "Disabled"
	default:
		return fmt.Sprintf("ButtonState(%d)", int(s))
	}
}

// ParseButtonState 按名称解析状态，不区分大小写
func ParseButtonState(name string) (ButtonState, error) {
	for _, s := range AllButtonStates {
		if strings.EqualFold(s.String(), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown button state %q", name)
}

// MarshalYAML 写出状态名
func (s ButtonState) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML 读入状态名
func (s *ButtonState) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseButtonState(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
