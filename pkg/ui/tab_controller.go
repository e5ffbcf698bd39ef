package ui

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// TabContent 标签选中时显示的面板
type TabContent interface {
	SetActive(active bool)
}

// TabController 把按钮和内容配对，始终只显示一个标签
// 显示中的标签按钮为 Selected、冻结且不可交互；其余按钮可交互且未冻结
type TabController struct {
	buttons      []*Button
	contents     []TabContent
	currentIndex int
	log          *logrus.Entry
}

// NewTabController 绑定按钮并显示默认标签
// 按钮必须已经 Initialize，且带有 Selected 视觉数据
func NewTabController(buttons []*Button, contents []TabContent, defaultIndex int) (*TabController, error) {
	if len(buttons) != len(contents) {
		return nil, fmt.Errorf("%d buttons, %d contents: %w", len(buttons), len(contents), ErrTabCountMismatch)
	}
	if defaultIndex < 0 || defaultIndex >= len(buttons) {
		return nil, fmt.Errorf("default tab %d of %d: %w", defaultIndex, len(buttons), ErrTabIndexOutOfRange)
	}
	for _, b := range buttons {
		if _, ok := b.Visuals().Get(StateSelected); !ok {
			return nil, fmt.Errorf("tab button %q, state %s: %w", b.Name(), StateSelected, ErrMissingVisualData)
		}
	}

	tc := &TabController{
		buttons:  buttons,
		contents: contents,
		log:      logrus.WithField("component", "tabs"),
	}

	for i, b := range buttons {
		index := i
		b.OnClick(func(*Button) {
			if err := tc.SwitchTab(index); err != nil {
				tc.log.WithError(err).Error("switch tab failed")
			}
		})
	}

	for i := range buttons {
		tc.hideTab(i)
	}
	tc.showTab(defaultIndex)
	return tc, nil
}

// SwitchTab 隐藏当前标签并显示 targetIndex
func (tc *TabController) SwitchTab(targetIndex int) error {
	if targetIndex < 0 || targetIndex >= len(tc.buttons) {
		return fmt.Errorf("tab %d of %d: %w", targetIndex, len(tc.buttons), ErrTabIndexOutOfRange)
	}
	tc.hideTab(tc.currentIndex)
	tc.showTab(targetIndex)
	tc.log.WithField("tab", targetIndex).Debug("switched tab")
	return nil
}

// CurrentIndex 当前显示的标签索引
func (tc *TabController) CurrentIndex() int {
	return tc.currentIndex
}

// Len 标签数量
func (tc *TabController) Len() int {
	return len(tc.buttons)
}

func (tc *TabController) hideTab(index int) {
	tc.contents[index].SetActive(false)

	b := tc.buttons[index]
	b.SetState(StateNormal, false)
	b.SetInteractable(true)
	b.SetFrozen(false)
}

func (tc *TabController) showTab(index int) {
	tc.contents[index].SetActive(true)

	b := tc.buttons[index]
	b.SetState(StateSelected, true)
	b.SetFrozen(true)
	b.SetInteractable(false)

	tc.currentIndex = index
}
