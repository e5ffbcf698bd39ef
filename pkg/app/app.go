// Package app 承载一个按钮布局：持有时钟、ECS 世界和各个系统，
// 连接标签页和弹窗行为，并作为 ebiten.Game 运行
package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/config"
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/decker502/sadui/pkg/entities"
	"github.com/decker502/sadui/pkg/game"
	"github.com/decker502/sadui/pkg/input"
	"github.com/decker502/sadui/pkg/systems"
	"github.com/decker502/sadui/pkg/tween"
	"github.com/decker502/sadui/pkg/ui"
	"github.com/decker502/sadui/pkg/ui/popup"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

var background = color.RGBA{R: 30, G: 33, B: 40, A: 255}

// Options App 的构建参数
type Options struct {
	Layout   *config.LayoutConfig
	Provider input.PointerProvider
	// Store 持久化按钮视觉数据，nil 时不加载也不保存
	Store *game.LayoutStore
	// ReadFile 读取布局引用的 PNG 精灵
	ReadFile FileReader
}

// App 运行一个按钮布局
type App struct {
	layout *config.LayoutConfig
	store  *game.LayoutStore

	entityManager *ecs.EntityManager
	clock         *tween.Clock
	scheduler     *tween.Scheduler
	assets        entities.Assets

	pointerSystem   *systems.PointerSystem
	animationSystem *systems.AnimationSystem
	facingSystem    *systems.FacingSystem
	buttonRender    *systems.ButtonRenderSystem
	panelRender     *systems.PanelRenderSystem

	buttons map[string]ecs.EntityID
	tabs    *ui.TabController
	popups  *popup.Manager

	paused bool
	quit   bool
	closed bool
	log    *logrus.Entry
}

// New 按 opts.Layout 构建世界：精灵、动画片段、每个按钮一个实体
// （已保存的视觉数据覆盖布局文件）、标签页和弹窗管理器
func New(opts Options) (*App, error) {
	if opts.Layout == nil {
		return nil, fmt.Errorf("layout is required")
	}
	if opts.Provider == nil {
		return nil, input.ErrNoInputSystem
	}

	sprites, err := BuildSprites(opts.Layout.Sprites, opts.ReadFile)
	if err != nil {
		return nil, err
	}
	face, err := NewFontFace(opts.Layout.Font.Size)
	if err != nil {
		return nil, err
	}

	clock := tween.NewClock()
	em := ecs.NewEntityManager()
	a := &App{
		layout:        opts.Layout,
		store:         opts.Store,
		entityManager: em,
		clock:         clock,
		scheduler:     tween.NewScheduler(clock),
		assets: entities.Assets{
			Sprites: sprites,
			Insets:  BuildInsets(opts.Layout.Sprites),
			Clips:   BuildClips(opts.Layout.Clips, sprites),
			Face:    face,
		},
		pointerSystem:   systems.NewPointerSystem(em, opts.Provider),
		animationSystem: systems.NewAnimationSystem(em),
		facingSystem:    systems.NewFacingSystem(em, opts.Provider),
		buttonRender:    systems.NewButtonRenderSystem(em),
		panelRender:     systems.NewPanelRenderSystem(em, face, sprites),
		buttons:         make(map[string]ecs.EntityID),
		log:             logrus.WithFields(logrus.Fields{"component": "app", "layout": opts.Layout.Name}),
	}

	a.popups = popup.NewManager(entities.NewPopupConstructor(em, a.scheduler, a.assets, a.popupLayout(), func() {
		a.popups.DestroyCurrentPopup()
	}), a.scheduler)

	for i := range a.layout.Buttons {
		if err := a.createButton(&a.layout.Buttons[i]); err != nil {
			return nil, err
		}
	}
	if err := a.createTabs(); err != nil {
		return nil, err
	}

	a.log.WithField("buttons", len(a.buttons)).Info("layout loaded")
	return a, nil
}

func (a *App) popupLayout() entities.PopupLayout {
	size := a.layout.Font.Size
	return entities.PopupLayout{
		ScreenWidth:  float64(a.layout.Screen.Width),
		ScreenHeight: float64(a.layout.Screen.Height),
		Width:        float64(a.layout.Screen.Width) / 2,
		LineHeight:   size * 1.4,
		ButtonWidth:  size * 5,
		ButtonHeight: size * 2,
	}
}

func (a *App) createButton(cfg *config.ButtonConfig) error {
	a.applySavedLayout(cfg)

	entity, err := entities.NewButtonEntity(a.entityManager, a.scheduler, cfg, a.assets)
	if err != nil {
		return err
	}
	a.buttons[cfg.Name] = entity

	if cfg.Action != config.ActionNone {
		button, _ := entities.ButtonOf(a.entityManager, entity)
		name := cfg.Name
		button.OnClick(func(*ui.Button) { a.runAction(name) })
	}
	return nil
}

// applySavedLayout 用持久化的视觉数据覆盖布局文件中的配置
func (a *App) applySavedLayout(cfg *config.ButtonConfig) {
	if a.store == nil {
		return
	}
	saved, ok, err := a.store.Load(cfg.Name)
	if err != nil {
		a.log.WithError(err).WithField("button", cfg.Name).Warn("ignoring saved layout")
		return
	}
	if !ok {
		return
	}
	if saved.Transitions != nil {
		cfg.Transitions = saved.Transitions
	}
	if saved.Visuals != nil {
		cfg.Visuals = saved.Visuals
	}
	a.log.WithField("button", cfg.Name).Debug("saved layout applied")
}

func (a *App) createTabs() error {
	tabs := a.layout.Tabs
	if tabs == nil {
		return nil
	}

	buttons := make([]*ui.Button, 0, len(tabs.Buttons))
	for _, name := range tabs.Buttons {
		button, ok := entities.ButtonOf(a.entityManager, a.buttons[name])
		if !ok {
			return fmt.Errorf("unknown tab button %q", name)
		}
		buttons = append(buttons, button)
	}

	contents := make([]ui.TabContent, 0, len(tabs.Contents))
	for _, tc := range tabs.Contents {
		entity := a.entityManager.CreateEntity()
		ecs.AddComponent(a.entityManager, entity, &components.PositionComponent{X: tc.X, Y: tc.Y})
		content := &components.TabContentComponent{
			Title:  tc.Title,
			Lines:  tc.Lines,
			Width:  tc.Width,
			Height: tc.Height,
		}
		ecs.AddComponent(a.entityManager, entity, content)
		contents = append(contents, content)
	}

	controller, err := ui.NewTabController(buttons, contents, tabs.Default)
	if err != nil {
		return err
	}
	a.tabs = controller
	return nil
}

// Step 按 realDelta 秒真实时间推进整个世界，Close 之后不再推进
func (a *App) Step(realDelta float64) {
	if a.closed {
		return
	}
	a.clock.Advance(realDelta)
	a.pointerSystem.Update(a.clock.DeltaTime())
	a.scheduler.Update()
	a.animationSystem.Update(a.clock.DeltaTime())
	a.facingSystem.Update(a.clock.DeltaTime())
	a.entityManager.RemoveMarkedEntities()
}

// Close 拆除所有按钮并取消调度中的过渡和延时任务
// 宿主循环退出后调用，重复调用无效果
func (a *App) Close() {
	if a.closed {
		return
	}
	a.popups.DestroyCurrentPopup()
	for _, entity := range a.buttons {
		entities.DestroyButtonEntity(a.entityManager, entity)
	}
	a.scheduler.CancelAll()
	a.entityManager.RemoveMarkedEntities()
	a.closed = true
	a.log.Info("closed")
}

// Closed 是否已经 Close
func (a *App) Closed() bool { return a.closed }

// Update 实现 ebiten.Game
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && a.popups.ActivePopup() != nil {
		a.popups.DestroyCurrentPopup()
	}

	a.Step(1.0 / float64(ebiten.TPS()))

	if a.quit {
		return ebiten.Termination
	}
	return nil
}

// Draw 实现 ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	a.panelRender.DrawTabs(screen)
	a.buttonRender.Draw(screen)
	a.panelRender.DrawPopups(screen)
	a.buttonRender.DrawOverlay(screen)

	if a.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED (P)", 8, a.layout.Screen.Height-20)
	}
}

// Layout 实现 ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.layout.Screen.Width, a.layout.Screen.Height
}

// TogglePause 在 0 和 1 之间切换时间缩放
// ignore_time_scale 的按钮暂停时仍继续着色动画
func (a *App) TogglePause() {
	a.paused = !a.paused
	if a.paused {
		a.clock.SetTimeScale(0)
	} else {
		a.clock.SetTimeScale(1)
	}
	a.log.WithField("paused", a.paused).Info("time scale changed")
}

// Paused 时间缩放是否为 0
func (a *App) Paused() bool { return a.paused }

// Quit 是否执行过退出动作
func (a *App) Quit() bool { return a.quit }

// Button 返回指定名称按钮的状态机
func (a *App) Button(name string) (*ui.Button, bool) {
	entity, ok := a.buttons[name]
	if !ok {
		return nil, false
	}
	return entities.ButtonOf(a.entityManager, entity)
}

// Tabs 返回标签控制器，布局没有标签页时返回 nil
func (a *App) Tabs() *ui.TabController { return a.tabs }

// Popups 返回弹窗管理器
func (a *App) Popups() *popup.Manager { return a.popups }

// EntityManager 向其他渲染器暴露 ECS 世界
func (a *App) EntityManager() *ecs.EntityManager { return a.entityManager }

// Config 返回构建 App 所用的布局
func (a *App) Config() *config.LayoutConfig { return a.layout }
