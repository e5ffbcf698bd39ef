package app

import (
	"github.com/decker502/sadui/pkg/config"
	"github.com/decker502/sadui/pkg/game"
	"github.com/decker502/sadui/pkg/ui/popup"
	"github.com/sirupsen/logrus"
)

// savedNoticeDelay 保存提示弹窗的自动关闭时间（秒）
const savedNoticeDelay = 1.5

// runAction 执行按钮配置的演示动作
func (a *App) runAction(buttonName string) {
	cfg, ok := a.layout.Button(buttonName)
	if !ok {
		return
	}
	a.log.WithFields(logrus.Fields{"button": buttonName, "action": cfg.Action}).Debug("action")

	switch cfg.Action {
	case config.ActionPopup:
		a.popups.DisplayPopup(PopupData(cfg.Popup))
	case config.ActionPause:
		a.TogglePause()
	case config.ActionSave:
		a.SaveLayout()
	case config.ActionQuit:
		a.quit = true
	}
}

// PopupData 把布局中的弹窗配置转换为弹窗数据
func PopupData(pc *config.PopupConfig) popup.Data {
	factory := popup.NewDataFactory()
	if pc == nil {
		return factory.Build()
	}

	factory.AddTitle(pc.Title).AddStringContent(pc.Lines...)
	if len(pc.Sprites) > 0 {
		factory.AddContentSpacer(4).AddSpriteContent(pc.Sprites...)
	}
	for _, title := range pc.Buttons {
		factory.AddButton(title, nil)
	}
	return factory.AddDestroySelfAfterDelay(pc.DestroyAfter).Build()
}

// SaveLayout 持久化每个按钮当前的过渡通道和视觉数据，并弹出提示
func (a *App) SaveLayout() {
	if a.store == nil {
		a.log.Warn("no layout store, save skipped")
		return
	}

	saved := 0
	for i := range a.layout.Buttons {
		cfg := &a.layout.Buttons[i]
		button, ok := a.Button(cfg.Name)
		if !ok {
			continue
		}
		err := a.store.Save(cfg.Name, &game.SavedButtonLayout{
			Transitions: cfg.Transitions,
			Visuals:     button.Visuals(),
		})
		if err != nil {
			a.log.WithError(err).WithField("button", cfg.Name).Error("failed to save button layout")
			continue
		}
		saved++
	}

	a.log.WithFields(logrus.Fields{
		"saved":      saved,
		"persistent": a.store.Persistent(),
	}).Info("layout saved")

	notice := popup.NewDataFactory().
		AddTitle("Layout saved").
		AddDestroySelfAfterDelay(savedNoticeDelay)
	if !a.store.Persistent() {
		notice.AddStringContent("storage unavailable, kept in memory")
	}
	a.popups.DisplayPopup(notice.Build())
}
