package app

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/config"
	"github.com/decker502/sadui/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// FileReader 读取数据文件（embedded.ReadFile 或测试替身）
type FileReader func(path string) ([]byte, error)

// BuildSprites 根据布局中的精灵定义生成图片
// Path 非空时解码 PNG，否则生成纯色图（可带 1 像素边框）
func BuildSprites(sprites []config.SpriteConfig, read FileReader) (map[string]*ebiten.Image, error) {
	result := make(map[string]*ebiten.Image, len(sprites))
	for _, sc := range sprites {
		if sc.Path != "" {
			img, err := loadPNG(sc.Path, read)
			if err != nil {
				return nil, fmt.Errorf("sprite %q: %w", sc.ID, err)
			}
			result[sc.ID] = img
			continue
		}
		result[sc.ID] = solidSprite(sc)
	}
	return result, nil
}

func loadPNG(path string, read FileReader) (*ebiten.Image, error) {
	if read == nil {
		return nil, fmt.Errorf("no file reader for %s", path)
	}
	data, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func solidSprite(sc config.SpriteConfig) *ebiten.Image {
	img := ebiten.NewImage(sc.Width, sc.Height)
	img.Fill(sc.Fill)
	if sc.Border != types.Clear {
		vector.StrokeRect(img, 0.5, 0.5, float32(sc.Width)-1, float32(sc.Height)-1, 1, sc.Border, false)
	}
	return img
}

// BuildInsets 收集设置了九宫格边长的精灵
func BuildInsets(sprites []config.SpriteConfig) map[string]float64 {
	result := make(map[string]float64)
	for _, sc := range sprites {
		if sc.Slice > 0 {
			result[sc.ID] = float64(sc.Slice)
		}
	}
	return result
}

// BuildClips 把动画片段配置转换为以触发器哈希为键的片段表
func BuildClips(clips []config.ClipConfig, sprites map[string]*ebiten.Image) map[int32]*components.AnimationClip {
	result := make(map[int32]*components.AnimationClip, len(clips))
	for _, cc := range clips {
		frames := make([]*ebiten.Image, 0, len(cc.Frames))
		for _, id := range cc.Frames {
			if img, ok := sprites[id]; ok {
				frames = append(frames, img)
			}
		}
		result[types.TriggerHash(cc.Trigger)] = &components.AnimationClip{
			Name:       cc.Trigger,
			Frames:     frames,
			FrameSpeed: cc.FrameSpeed,
			IsLooping:  cc.Loop,
		}
	}
	return result
}

// NewFontFace 使用内置的 Go Regular 字体创建字体
func NewFontFace(size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}
