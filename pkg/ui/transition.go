package ui

import (
	"fmt"
	"strings"
)

// TransitionType 按钮可驱动的视觉通道
// 取值为位标志，可任意组合
type TransitionType int

const (
	TransitionColorTint     TransitionType = 1 << iota // 00001
	TransitionSpriteSwap                               // 00010
	TransitionAnimation                                // 00100
	TransitionTextSwap                                 // 01000
	TransitionTextColorTint                            // 10000
)

// AllTransitions 按位序列出所有通道
var AllTransitions = []TransitionType{
	TransitionColorTint,
	TransitionSpriteSwap,
	TransitionAnimation,
	TransitionTextSwap,
	TransitionTextColorTint,
}

var transitionNames = map[TransitionType]string{
	TransitionColorTint:     "color_tint",
	TransitionSpriteSwap:    "sprite_swap",
	TransitionAnimation:     "animation",
	TransitionTextSwap:      "text_swap",
	TransitionTextColorTint: "text_color_tint",
}

func (t TransitionType) String() string {
	if name, ok := transitionNames[t]; ok {
		return name
	}
	var parts []string
	for _, tt := range AllTransitions {
		if t&tt != 0 {
			parts = append(parts, transitionNames[tt])
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseTransitions 把通道名合并为位掩码
func ParseTransitions(names []string) (TransitionType, error) {
	var mask TransitionType
	for _, name := range names {
		found := false
		for t, n := range transitionNames {
			if strings.EqualFold(n, strings.TrimSpace(name)) {
				mask |= t
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown transition %q", name)
		}
	}
	return mask, nil
}

// TransitionSet 启用通道的集合，由位掩码编译一次，每帧检查只查集合
type TransitionSet struct {
	mask    TransitionType
	enabled map[TransitionType]struct{}
}

// NewTransitionSet 把 mask 编译为集合
func NewTransitionSet(mask TransitionType) TransitionSet {
	set := TransitionSet{
		mask:    mask,
		enabled: make(map[TransitionType]struct{}, len(AllTransitions)),
	}
	for _, t := range AllTransitions {
		if mask&t != 0 {
			set.enabled[t] = struct{}{}
		}
	}
	return set
}

// IsEnabled channel 是否在集合中
func (s TransitionSet) IsEnabled(channel TransitionType) bool {
	_, ok := s.enabled[channel]
	return ok
}

// AnyEnabled 是否至少启用了一个通道
func (s TransitionSet) AnyEnabled() bool {
	return len(s.enabled) > 0
}

// Mask 返回编译集合所用的位掩码
func (s TransitionSet) Mask() TransitionType {
	return s.mask
}
