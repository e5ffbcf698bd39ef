package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/decker502/sadui/pkg/types"
	"github.com/decker502/sadui/pkg/ui"
	"gopkg.in/yaml.v3"
)

// LayoutConfig 按钮布局文件
// 描述一屏按钮：精灵、动画片段、按钮本身以及可选的标签页
type LayoutConfig struct {
	Name    string         `yaml:"name"`    // 布局名称，用作持久化的命名空间
	Screen  ScreenConfig   `yaml:"screen"`  // 窗口尺寸
	Font    FontConfig     `yaml:"font"`    // 文字字号
	Sprites []SpriteConfig `yaml:"sprites"` // 精灵定义，按钮和视觉数据通过 ID 引用
	Clips   []ClipConfig   `yaml:"clips"`   // 动画片段，按触发器名称匹配
	Buttons []ButtonConfig `yaml:"buttons"` // 按钮列表（绘制顺序即列表顺序）
	Tabs    *TabsConfig    `yaml:"tabs"`    // 标签页（可选）
}

// ScreenConfig 窗口配置
type ScreenConfig struct {
	Width  int    `yaml:"width"`  // 默认 640
	Height int    `yaml:"height"` // 默认 480
	Title  string `yaml:"title"`  // 默认使用布局名称
}

// FontConfig 字体配置
type FontConfig struct {
	Size float64 `yaml:"size"` // 默认 18
}

// SpriteConfig 精灵定义
// Path 非空时从数据目录加载 PNG，否则生成 Width×Height 的纯色图
type SpriteConfig struct {
	ID     string      `yaml:"id"`
	Path   string      `yaml:"path"`
	Fill   types.Color `yaml:"fill"`
	Border types.Color `yaml:"border"`
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	// Slice 九宫格四角边长（像素），0 表示整体拉伸
	Slice int `yaml:"slice"`
}

// ClipConfig 动画片段：帧为精灵 ID 列表
type ClipConfig struct {
	Trigger    string   `yaml:"trigger"`     // 触发器名称，如 "Pressed"
	Frames     []string `yaml:"frames"`      // 精灵 ID 列表
	FrameSpeed float64  `yaml:"frame_speed"` // 每帧时长（秒），默认 0.08
	Loop       bool     `yaml:"loop"`
}

// ButtonConfig 单个按钮
type ButtonConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Interactable 未配置时为 true
	Interactable    *bool    `yaml:"interactable"`
	Frozen          bool     `yaml:"frozen"`
	IgnoreTimeScale bool     `yaml:"ignore_time_scale"`
	// FacePointer 动画帧始终朝向指针
	FacePointer     bool     `yaml:"face_pointer"`
	Transitions     []string `yaml:"transitions"` // color_tint / sprite_swap / animation / text_swap / text_color_tint

	// 初始外观（Initialize 会立刻用 Normal 的视觉数据覆盖启用的通道）
	Sprite string      `yaml:"sprite"`
	Text   string      `yaml:"text"`
	Color  types.Color `yaml:"color"`

	// Visuals 每个状态的视觉数据，未配置时使用默认四个状态
	Visuals *ui.VisualMap `yaml:"visuals"`

	// Action 点击后执行的演示动作：popup / pause / save / quit，空表示无
	Action string       `yaml:"action"`
	Popup  *PopupConfig `yaml:"popup"`
}

// PopupConfig 点击按钮后弹出的窗口
type PopupConfig struct {
	Title        string   `yaml:"title"`
	Lines        []string `yaml:"lines"`
	Sprites      []string `yaml:"sprites"`
	Buttons      []string `yaml:"buttons"`       // 响应按钮标题，默认 ["OK"]
	DestroyAfter float64  `yaml:"destroy_after"` // 自动关闭延迟（秒），0 表示不自动关闭
}

// TabsConfig 标签页：按钮名称与内容一一对应
type TabsConfig struct {
	Buttons  []string           `yaml:"buttons"`
	Contents []TabContentConfig `yaml:"contents"`
	Default  int                `yaml:"default"`
}

// TabContentConfig 标签页内容面板
type TabContentConfig struct {
	Title  string   `yaml:"title"`
	Lines  []string `yaml:"lines"`
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
}

// 有效的演示动作
const (
	ActionNone  = ""
	ActionPopup = "popup"
	ActionPause = "pause"
	ActionSave  = "save"
	ActionQuit  = "quit"
)

const (
	defaultScreenWidth  = 640
	defaultScreenHeight = 480
	defaultFontSize     = 18
	defaultFrameSpeed   = 0.08
)

// LoadLayoutConfig 从YAML文件加载布局配置
// 参数：
//
//	path - 布局文件路径
//
// 返回：
//
//	*LayoutConfig - 已应用默认值并通过验证的布局
//	error - 读取、解析或验证失败
func LoadLayoutConfig(path string) (*LayoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}
	return ParseLayoutConfig(data, path)
}

// LoadLayoutConfigFS 从文件系统（通常是嵌入的数据目录）加载布局配置
func LoadLayoutConfigFS(fsys fs.FS, path string) (*LayoutConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", path, err)
	}
	return ParseLayoutConfig(data, path)
}

// ParseLayoutConfig 解析布局数据，source 只用于错误信息
func ParseLayoutConfig(data []byte, source string) (*LayoutConfig, error) {
	var cfg LayoutConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML from %s: %w", source, err)
	}

	applyLayoutDefaults(&cfg)

	if err := validateLayoutConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid layout config in %s: %w", source, err)
	}
	return &cfg, nil
}

// applyLayoutDefaults 为缺失的可选字段设置默认值
func applyLayoutDefaults(cfg *LayoutConfig) {
	if cfg.Screen.Width == 0 {
		cfg.Screen.Width = defaultScreenWidth
	}
	if cfg.Screen.Height == 0 {
		cfg.Screen.Height = defaultScreenHeight
	}
	if cfg.Screen.Title == "" {
		cfg.Screen.Title = cfg.Name
	}
	if cfg.Font.Size == 0 {
		cfg.Font.Size = defaultFontSize
	}

	for i := range cfg.Sprites {
		if cfg.Sprites[i].Path == "" && cfg.Sprites[i].Fill == (types.Color{}) {
			cfg.Sprites[i].Fill = types.White
		}
	}

	for i := range cfg.Clips {
		if cfg.Clips[i].FrameSpeed == 0 {
			cfg.Clips[i].FrameSpeed = defaultFrameSpeed
		}
	}

	for i := range cfg.Buttons {
		b := &cfg.Buttons[i]
		if b.Interactable == nil {
			interactable := true
			b.Interactable = &interactable
		}
		if b.Visuals == nil || b.Visuals.Len() == 0 {
			b.Visuals = ui.DefaultVisuals()
		}
		// 未写颜色的按钮（零值为全透明黑）使用白色底
		if b.Color == (types.Color{}) {
			b.Color = types.White
		}
		if b.Popup != nil && len(b.Popup.Buttons) == 0 {
			b.Popup.Buttons = []string{"OK"}
		}
	}
}

// validateLayoutConfig 验证布局配置的完整性和合法性
func validateLayoutConfig(cfg *LayoutConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("layout name is required")
	}
	if cfg.Screen.Width < 0 || cfg.Screen.Height < 0 {
		return fmt.Errorf("screen size cannot be negative")
	}

	sprites := make(map[string]bool, len(cfg.Sprites))
	for i, s := range cfg.Sprites {
		if s.ID == "" {
			return fmt.Errorf("sprite %d: id is required", i)
		}
		if sprites[s.ID] {
			return fmt.Errorf("sprite %d: duplicate id %q", i, s.ID)
		}
		if s.Slice < 0 {
			return fmt.Errorf("sprite %q: slice cannot be negative", s.ID)
		}
		if s.Path == "" && (s.Width <= 0 || s.Height <= 0) {
			return fmt.Errorf("sprite %q: generated sprites need a positive width and height", s.ID)
		}
		sprites[s.ID] = true
	}

	for i, c := range cfg.Clips {
		if c.Trigger == "" {
			return fmt.Errorf("clip %d: trigger is required", i)
		}
		if len(c.Frames) == 0 {
			return fmt.Errorf("clip %q: at least one frame is required", c.Trigger)
		}
		if c.FrameSpeed < 0 {
			return fmt.Errorf("clip %q: frame_speed cannot be negative", c.Trigger)
		}
		for _, f := range c.Frames {
			if !sprites[f] {
				return fmt.Errorf("clip %q: unknown sprite %q", c.Trigger, f)
			}
		}
	}

	if len(cfg.Buttons) == 0 {
		return fmt.Errorf("at least one button is required")
	}
	names := make(map[string]bool, len(cfg.Buttons))
	for i := range cfg.Buttons {
		b := &cfg.Buttons[i]
		if err := validateButton(b, sprites); err != nil {
			return fmt.Errorf("button %d (%s): %w", i, b.Name, err)
		}
		if names[b.Name] {
			return fmt.Errorf("button %d: duplicate name %q", i, b.Name)
		}
		names[b.Name] = true
	}

	if cfg.Tabs != nil {
		if err := validateTabs(cfg.Tabs, names); err != nil {
			return fmt.Errorf("tabs: %w", err)
		}
	}
	return nil
}

func validateButton(b *ButtonConfig, sprites map[string]bool) error {
	if b.Name == "" {
		return fmt.Errorf("name is required")
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %gx%g", b.Width, b.Height)
	}
	if _, err := ui.ParseTransitions(b.Transitions); err != nil {
		return err
	}
	if b.Sprite != "" && !sprites[b.Sprite] {
		return fmt.Errorf("unknown sprite %q", b.Sprite)
	}

	var visualErr error
	b.Visuals.Range(func(state ui.ButtonState, vd *ui.VisualData) bool {
		if vd == nil {
			visualErr = fmt.Errorf("visuals[%s]: value is required", state)
			return false
		}
		if vd.Sprite != "" && !sprites[vd.Sprite] {
			visualErr = fmt.Errorf("visuals[%s]: unknown sprite %q", state, vd.Sprite)
			return false
		}
		if vd.ColorTransitionDuration < 0 || vd.TextColorTransitionDuration < 0 {
			visualErr = fmt.Errorf("visuals[%s]: durations cannot be negative", state)
			return false
		}
		return true
	})
	if visualErr != nil {
		return visualErr
	}

	switch b.Action {
	case ActionNone, ActionPause, ActionSave, ActionQuit:
	case ActionPopup:
		if b.Popup == nil {
			return fmt.Errorf("action popup needs a popup block")
		}
		for _, s := range b.Popup.Sprites {
			if !sprites[s] {
				return fmt.Errorf("popup: unknown sprite %q", s)
			}
		}
	default:
		return fmt.Errorf("action must be one of: popup, pause, save, quit, got %q", b.Action)
	}
	return nil
}

func validateTabs(tabs *TabsConfig, buttons map[string]bool) error {
	if len(tabs.Buttons) != len(tabs.Contents) {
		return fmt.Errorf("%d buttons but %d contents: %w", len(tabs.Buttons), len(tabs.Contents), ui.ErrTabCountMismatch)
	}
	if tabs.Default < 0 || tabs.Default >= len(tabs.Buttons) {
		return fmt.Errorf("default %d of %d: %w", tabs.Default, len(tabs.Buttons), ui.ErrTabIndexOutOfRange)
	}
	for _, name := range tabs.Buttons {
		if !buttons[name] {
			return fmt.Errorf("unknown button %q", name)
		}
	}
	return nil
}

// ToUIConfig 转换为 ui.Button 的配置
func (b *ButtonConfig) ToUIConfig() (ui.Config, error) {
	mask, err := ui.ParseTransitions(b.Transitions)
	if err != nil {
		return ui.Config{}, fmt.Errorf("button %q: %w", b.Name, err)
	}
	interactable := true
	if b.Interactable != nil {
		interactable = *b.Interactable
	}
	return ui.Config{
		Name:            b.Name,
		Interactable:    interactable,
		Frozen:          b.Frozen,
		Transitions:     mask,
		IgnoreTimeScale: b.IgnoreTimeScale,
		Visuals:         b.Visuals,
	}, nil
}

// Button 按名称查找按钮配置
func (cfg *LayoutConfig) Button(name string) (*ButtonConfig, bool) {
	for i := range cfg.Buttons {
		if cfg.Buttons[i].Name == name {
			return &cfg.Buttons[i], true
		}
	}
	return nil, false
}
