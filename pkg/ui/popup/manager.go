package popup

import (
	"github.com/decker502/sadui/pkg/tween"
	"github.com/sirupsen/logrus"
)

// Popup 显示中的弹窗实例
type Popup interface {
	// Construct 按 data 构建弹窗控件
	Construct(data Data)
	// Destroy 释放弹窗，最多调用一次
	Destroy()
}

// Constructor 创建空的弹窗实例
type Constructor func() Popup

// Manager 最多持有一个活动弹窗
type Manager struct {
	defaultConstructor Constructor
	scheduler          *tween.Scheduler

	active       Popup
	pendingClose *tween.Handle

	onShow []func(Popup)
	onHide []func()

	log *logrus.Entry
}

// NewManager 用 defaultConstructor 构建弹窗，在 scheduler 上安排延迟销毁
func NewManager(defaultConstructor Constructor, scheduler *tween.Scheduler) *Manager {
	return &Manager{
		defaultConstructor: defaultConstructor,
		scheduler:          scheduler,
		log:                logrus.WithField("component", "popup"),
	}
}

// OnShow 订阅弹窗显示
func (m *Manager) OnShow(fn func(Popup)) {
	m.onShow = append(m.onShow, fn)
}

// OnHide 订阅弹窗销毁
func (m *Manager) OnHide(fn func()) {
	m.onHide = append(m.onHide, fn)
}

// ActivePopup 返回显示中的弹窗，没有时返回 nil
func (m *Manager) ActivePopup() Popup {
	return m.active
}

// DisplayPopup 用默认构造器显示 data
func (m *Manager) DisplayPopup(data Data) Popup {
	return m.DisplayPopupWith(m.defaultConstructor, data)
}

// DisplayPopupWith 用 ctor 构建的弹窗替换当前弹窗
func (m *Manager) DisplayPopupWith(ctor Constructor, data Data) Popup {
	if m.active != nil {
		m.DestroyCurrentPopup()
	}

	p := ctor()
	p.Construct(data)
	m.active = p
	m.log.WithFields(logrus.Fields{
		"title":    data.Title,
		"contents": len(data.Contents),
		"buttons":  len(data.Buttons),
	}).Debug("popup displayed")

	for _, fn := range m.onShow {
		fn(p)
	}

	if data.ShouldDestroySelf {
		m.DestroyCurrentPopupAfter(data.DestroySelfDelay)
	}
	return p
}

// DestroyCurrentPopup 销毁当前弹窗（如果有）
func (m *Manager) DestroyCurrentPopup() {
	if m.active == nil {
		return
	}
	m.pendingClose.Cancel()
	m.pendingClose = nil

	p := m.active
	m.active = nil
	p.Destroy()
	m.log.Debug("popup destroyed")

	for _, fn := range m.onHide {
		fn()
	}
}

// DestroyCurrentPopupAfter 经过 delay 秒缩放时间后销毁当前弹窗
// 期间替换弹窗会取消这次销毁
func (m *Manager) DestroyCurrentPopupAfter(delay float64) {
	if m.active == nil {
		return
	}
	if delay <= 0 {
		m.DestroyCurrentPopup()
		return
	}

	m.pendingClose.Cancel()
	target := m.active
	m.pendingClose = tween.Delay(m.scheduler, delay, func() {
		if m.active == target {
			m.pendingClose = nil
			m.DestroyCurrentPopup()
		}
	})
}
