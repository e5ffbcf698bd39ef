// Package ui 交互按钮：指针驱动的状态跟踪、每个状态的视觉数据
// 以及状态之间的平滑过渡
package ui

import (
	"fmt"

	"github.com/decker502/sadui/pkg/tween"
	"github.com/sirupsen/logrus"
)

// Config 按钮的编辑配置
type Config struct {
	Name         string
	Interactable bool
	// Frozen 冻结的按钮照常跟踪状态，但不再推送视觉
	Frozen          bool
	Transitions     TransitionType
	IgnoreTimeScale bool
	Visuals         *VisualMap
}

// Button 跟踪指针状态，并用当前状态的视觉数据驱动各个目标
//
// 生命周期：NewButton -> Initialize -> 指针事件 / 开关 -> Teardown
// 所有方法都必须在游戏循环 goroutine 中调用
type Button struct {
	name string

	interactable    bool
	frozen          bool
	transitionMask  TransitionType
	transitions     TransitionSet
	ignoreTimeScale bool

	targets  Targets
	resolver TargetResolver
	visuals  *VisualMap

	colorRunner     *tween.Runner
	textColorRunner *tween.Runner

	state   ButtonState
	hovered bool
	pressed bool
	ready   bool
	onClick []func(*Button)
	log     *logrus.Entry
}

// NewButton 创建按钮，Initialize 之前不会访问目标
func NewButton(cfg Config, targets Targets, scheduler *tween.Scheduler) *Button {
	visuals := cfg.Visuals
	if visuals == nil {
		visuals = DefaultVisuals()
	}
	return &Button{
		name:            cfg.Name,
		interactable:    cfg.Interactable,
		frozen:          cfg.Frozen,
		transitionMask:  cfg.Transitions,
		ignoreTimeScale: cfg.IgnoreTimeScale,
		targets:         targets,
		visuals:         visuals,
		colorRunner:     tween.NewRunner(scheduler),
		textColorRunner: tween.NewRunner(scheduler),
		log:             logrus.WithFields(logrus.Fields{"component": "button", "button": cfg.Name}),
	}
}

// SetResolver 设置 Initialize 查找缺失目标的来源
func (b *Button) SetResolver(r TargetResolver) {
	b.resolver = r
}

// Initialize 编译启用的过渡通道、刷新触发器ID、解析目标，并应用初始状态的视觉
//
// 启用的通道没有目标时返回 ErrMissingTarget；
// 指针可达的状态缺少视觉数据时返回 ErrMissingVisualData
func (b *Button) Initialize() error {
	b.transitions = NewTransitionSet(b.transitionMask)

	if err := b.initializeVisualData(); err != nil {
		return err
	}
	if err := b.fetchTargets(); err != nil {
		return err
	}

	b.ready = true
	b.SetState(b.DetermineState(), true)

	b.log.WithField("transitions", b.transitionMask.String()).Info("initialized")
	return nil
}

// Teardown 取消进行中的过渡，再次 Initialize 之前不再写入目标
func (b *Button) Teardown() {
	b.colorRunner.Stop()
	b.textColorRunner.Stop()
	b.ready = false
	b.log.Debug("torn down")
}

// Reconfigure 切换到新的过渡掩码，并重新应用当前状态的视觉
func (b *Button) Reconfigure(mask TransitionType) error {
	b.transitionMask = mask
	b.transitions = NewTransitionSet(mask)

	if !b.transitions.IsEnabled(TransitionColorTint) {
		b.colorRunner.Stop()
	}
	if !b.transitions.IsEnabled(TransitionTextColorTint) {
		b.textColorRunner.Stop()
	}

	if !b.ready {
		return nil
	}
	if err := b.fetchTargets(); err != nil {
		b.ready = false
		return err
	}
	b.updateVisuals(true)
	return nil
}

func (b *Button) initializeVisualData() error {
	for _, s := range PointerStates {
		if vd, ok := b.visuals.Get(s); !ok || vd == nil {
			return fmt.Errorf("button %q, state %s: %w", b.name, s, ErrMissingVisualData)
		}
	}
	b.visuals.Range(func(_ ButtonState, vd *VisualData) bool {
		if vd != nil {
			vd.CalculateTriggerHash()
		}
		return true
	})
	return nil
}

func (b *Button) fetchTargets() error {
	if b.IsTransitionEnabled(TransitionColorTint) || b.IsTransitionEnabled(TransitionSpriteSwap) {
		if b.targets.Image == nil && b.resolver != nil {
			b.targets.Image, _ = b.resolver.ResolveImage()
		}
		if b.targets.Image == nil {
			return fmt.Errorf("button %q: target image required: %w", b.name, ErrMissingTarget)
		}
	}

	if b.IsTransitionEnabled(TransitionAnimation) {
		if b.targets.Animator == nil && b.resolver != nil {
			b.targets.Animator, _ = b.resolver.ResolveAnimator()
		}
		if b.targets.Animator == nil {
			return fmt.Errorf("button %q: target animator required: %w", b.name, ErrMissingTarget)
		}
	}

	if b.IsTransitionEnabled(TransitionTextSwap) || b.IsTransitionEnabled(TransitionTextColorTint) {
		if b.targets.Text == nil && b.resolver != nil {
			b.targets.Text, _ = b.resolver.ResolveText()
		}
		if b.targets.Text == nil {
			return fmt.Errorf("button %q: target text required: %w", b.name, ErrMissingTarget)
		}
	}
	return nil
}

// ===== 外部开关 =====

// SetInteractable 启用或禁用按钮，并重新计算状态
func (b *Button) SetInteractable(interactable bool) {
	b.interactable = interactable
	b.updateState()
}

// SetFrozen 冻结或解冻视觉更新，解冻时立即重新应用当前状态的视觉
func (b *Button) SetFrozen(frozen bool) {
	b.frozen = frozen
	if !frozen {
		b.updateVisuals(false)
	}
}

func (b *Button) Freeze()   { b.SetFrozen(true) }
func (b *Button) Unfreeze() { b.SetFrozen(false) }

func (b *Button) IsInteractable() bool { return b.interactable }
func (b *Button) IsFrozen() bool       { return b.frozen }
func (b *Button) IsHovered() bool      { return b.hovered }
func (b *Button) IsPressed() bool      { return b.pressed }
func (b *Button) Name() string         { return b.name }

// IsTransitionEnabled 通道是否启用
func (b *Button) IsTransitionEnabled(channel TransitionType) bool {
	return b.transitions.IsEnabled(channel)
}

// IsAnyTransitionEnabled 是否有任一通道启用
func (b *Button) IsAnyTransitionEnabled() bool {
	return b.transitions.AnyEnabled()
}

// OnClick 订阅点击通知
func (b *Button) OnClick(fn func(*Button)) {
	b.onClick = append(b.onClick, fn)
}

// Visuals 返回按钮读取的各状态视觉布局
func (b *Button) Visuals() *VisualMap {
	return b.visuals
}

// SetVisualData 替换某个状态的视觉数据并刷新触发器ID
// state 为当前状态时重新应用视觉；vd 为 nil 时返回 ErrMissingVisualData
func (b *Button) SetVisualData(state ButtonState, vd *VisualData) error {
	if vd == nil {
		return fmt.Errorf("button %q, state %s: %w", b.name, state, ErrMissingVisualData)
	}
	vd.CalculateTriggerHash()
	b.visuals.Set(state, vd)
	if state == b.state {
		b.updateVisuals(false)
	}
	return nil
}

// ===== 状态 =====

// State 返回当前状态
func (b *Button) State() ButtonState { return b.state }

// DetermineState 根据指针标志推导状态，永远不会返回 StateSelected
func (b *Button) DetermineState() ButtonState {
	if !b.interactable {
		return StateDisabled
	}
	if b.hovered {
		if b.pressed {
			return StatePressed
		}
		return StateHighlighted
	}
	return StateNormal
}

// SetState 设置状态
//
// 与当前状态相同且未 forceApply 时不做任何事；forceApply 同时绕过冻结
func (b *Button) SetState(state ButtonState, forceApply bool) {
	if b.state == state && !forceApply {
		return
	}
	if b.state != state {
		b.log.WithFields(logrus.Fields{"from": b.state, "to": state}).Debug("state changed")
	}
	b.state = state
	b.updateVisuals(forceApply)
}

func (b *Button) updateState() {
	b.SetState(b.DetermineState(), false)
}

// ===== 视觉 =====

func (b *Button) updateVisuals(force bool) {
	if !b.ready {
		return
	}
	if b.frozen && !force {
		return
	}

	vd, ok := b.visuals.Get(b.state)
	if !ok || vd == nil {
		b.log.WithField("state", b.state).Warn("no visual data for state, visuals not applied")
		return
	}
	b.applyVisuals(vd)
}

// ApplyVisuals 把 vd 推送到每个启用的通道
func (b *Button) ApplyVisuals(vd *VisualData) error {
	if !b.ready {
		return ErrNotInitialized
	}
	if vd == nil {
		return fmt.Errorf("button %q: %w", b.name, ErrMissingVisualData)
	}
	b.applyVisuals(vd)
	return nil
}

func (b *Button) applyVisuals(vd *VisualData) {
	if b.IsTransitionEnabled(TransitionColorTint) {
		b.startColorTint(vd)
	}
	if b.IsTransitionEnabled(TransitionSpriteSwap) {
		b.setSprite(vd)
	}
	if b.IsTransitionEnabled(TransitionAnimation) {
		b.triggerAnimation(vd)
	}
	if b.IsTransitionEnabled(TransitionTextSwap) {
		b.targets.Text.SetText(vd.Text)
	}
	if b.IsTransitionEnabled(TransitionTextColorTint) {
		b.startTextColorTint(vd)
	}
}

func (b *Button) startColorTint(vd *VisualData) {
	img := b.targets.Image
	tween.StartColorTransition(b.colorRunner, img.Color, img.SetColor,
		vd.Color, vd.ColorTransitionDuration, b.ignoreTimeScale)
}

func (b *Button) startTextColorTint(vd *VisualData) {
	txt := b.targets.Text
	tween.StartColorTransition(b.textColorRunner, txt.TextColor, txt.SetTextColor,
		vd.TextColor, vd.TextColorTransitionDuration, b.ignoreTimeScale)
}

func (b *Button) setSprite(vd *VisualData) {
	sprite := vd.Sprite
	if sprite == "" {
		if normal, ok := b.visuals.Get(StateNormal); ok && normal != nil {
			sprite = normal.Sprite
		}
	}
	b.targets.Image.SetSprite(sprite)
}

func (b *Button) triggerAnimation(vd *VisualData) {
	if vd.TransitionTrigger == "" {
		return
	}
	b.targets.Animator.SetTrigger(vd.TriggerHash())
}

// ===== 指针事件 =====

func (b *Button) PointerEnter() {
	b.hovered = true
	b.updateState()
}

func (b *Button) PointerExit() {
	b.hovered = false
	b.updateState()
}

func (b *Button) PointerDown() {
	b.pressed = true
	b.updateState()
}

// PointerUp 松开按键
// 在可交互的按钮上松开即为点击，监听者在重新计算状态之前执行
func (b *Button) PointerUp() {
	b.pressed = false

	if !b.interactable {
		return
	}

	if b.hovered {
		b.log.Debug("clicked")
		for _, fn := range b.onClick {
			fn(b)
		}
	}

	b.updateState()
}

