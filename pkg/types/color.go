package types

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color 非预乘的 RGBA 颜色，各分量取值 [0, 1]
type Color struct {
	R, G, B, A float64
}

var (
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Black = Color{A: 1}
	Gray  = Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	Clear = Color{}
)

// RGB 返回不透明颜色
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// ParseHexColor 解析 "#rrggbb"、"#rgb" 或 "#rrggbbaa"
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// Hex 格式化为 "#rrggbb"，非不透明时为 "#rrggbbaa"
func (c Color) Hex() string {
	h := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	if c.A >= 1 {
		return h
	}
	return fmt.Sprintf("%s%02x", h, uint8(math.Round(clamp01(c.A)*255)))
}

// Lerp 从 c 到 to 线性插值，t 限制在 [0, 1]
func (c Color) Lerp(to Color, t float64) Color {
	t = clamp01(t)
	rgb := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendRgb(colorful.Color{R: to.R, G: to.G, B: to.B}, t)
	return Color{R: rgb.R, G: rgb.G, B: rgb.B, A: c.A + (to.A-c.A)*t}
}

// RGBA 实现 color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{
		R: uint16(math.Round(clamp01(c.R) * 0xffff)),
		G: uint16(math.Round(clamp01(c.G) * 0xffff)),
		B: uint16(math.Round(clamp01(c.B) * 0xffff)),
		A: uint16(math.Round(clamp01(c.A) * 0xffff)),
	}.RGBA()
}

// MarshalYAML 写出十六进制形式
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}

// UnmarshalYAML 读入十六进制形式
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
