package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
//
// 优先在空格处断行；单个单词超宽时按字符强制断行。
// font 为 nil 或 maxWidth <= 0 时原样返回一行。
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if MeasureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if MeasureTextWidth(candidate, font) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if MeasureTextWidth(word, font) <= maxWidth {
			current = word
			continue
		}

		// 超长单词：逐字符切分，最后一段留给后续单词拼接
		pieces := breakWord(word, font, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func breakWord(word string, font *text.GoTextFace, maxWidth float64) []string {
	var pieces []string
	current := ""
	for _, r := range word {
		candidate := current + string(r)
		if current != "" && MeasureTextWidth(candidate, font) > maxWidth {
			pieces = append(pieces, current)
			candidate = string(r)
		}
		current = candidate
	}
	return append(pieces, current)
}

// MeasureTextWidth 测量文本宽度（像素）
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
