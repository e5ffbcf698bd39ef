package entities

import (
	"fmt"

	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/config"
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/decker502/sadui/pkg/tween"
	"github.com/decker502/sadui/pkg/types"
	"github.com/decker502/sadui/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
)

// Assets 按钮实体共享的资源
type Assets struct {
	// Sprites 精灵ID -> 图片
	Sprites map[string]*ebiten.Image
	// Insets 精灵ID -> 九宫格边长
	Insets map[string]float64
	// Clips 触发器哈希 -> 动画片段
	Clips map[int32]*components.AnimationClip
	// Face 按钮文字字体，nil 时不绘制文字
	Face *text.GoTextFace
}

// NewButtonEntity 根据布局配置创建按钮实体
//
// 实体拥有 Position / Image / Text / Animator / Button 组件，
// 前三个表面组件同时作为 ui.Button 的驱动目标。
// 按钮在返回前已经 Initialize，初始状态的视觉数据已写入组件。
//
// 参数：
//   - em: 实体管理器
//   - scheduler: 颜色过渡使用的调度器
//   - cfg: 按钮配置（已通过布局验证）
//   - assets: 共享资源
//
// 返回：
//   - 按钮实体ID
//   - 错误信息（初始化失败时实体已被销毁）
func NewButtonEntity(em *ecs.EntityManager, scheduler *tween.Scheduler, cfg *config.ButtonConfig, assets Assets) (ecs.EntityID, error) {
	uiCfg, err := cfg.ToUIConfig()
	if err != nil {
		return 0, err
	}

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: cfg.X, Y: cfg.Y})

	image := &components.ImageComponent{
		Tint:     cfg.Color,
		SpriteID: cfg.Sprite,
		Sprites:  assets.Sprites,
		Insets:   assets.Insets,
	}
	ecs.AddComponent(em, entity, image)

	label := &components.TextComponent{
		Content: cfg.Text,
		Tint:    types.White,
		Face:    assets.Face,
	}
	ecs.AddComponent(em, entity, label)

	animator := &components.AnimatorComponent{Clips: assets.Clips}
	ecs.AddComponent(em, entity, animator)
	if cfg.FacePointer {
		ecs.AddComponent(em, entity, &components.FacingComponent{})
	}

	button := ui.NewButton(uiCfg, ui.Targets{
		Image:    image,
		Text:     label,
		Animator: animator,
	}, scheduler)

	if err := button.Initialize(); err != nil {
		em.DestroyEntity(entity)
		return 0, fmt.Errorf("failed to initialize button %q: %w", cfg.Name, err)
	}

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Button: button,
		Width:  cfg.Width,
		Height: cfg.Height,
	})

	logrus.WithFields(logrus.Fields{
		"component": "entities",
		"entity":    entity,
		"button":    cfg.Name,
	}).Debug("button entity created")

	return entity, nil
}

// ButtonOf 返回实体上的按钮状态机
func ButtonOf(em *ecs.EntityManager, entity ecs.EntityID) (*ui.Button, bool) {
	comp, ok := ecs.GetComponent[*components.ButtonComponent](em, entity)
	if !ok {
		return nil, false
	}
	return comp.Button, true
}

// DestroyButtonEntity 停止按钮的过渡并标记实体删除
func DestroyButtonEntity(em *ecs.EntityManager, entity ecs.EntityID) {
	if button, ok := ButtonOf(em, entity); ok {
		button.Teardown()
	}
	em.DestroyEntity(entity)
}
