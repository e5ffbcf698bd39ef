package components

// TabContentComponent 标签页内容面板，实现 ui.TabContent
// 渲染系统只绘制 Active 的面板
type TabContentComponent struct {
	Title  string
	Lines  []string
	Width  float64
	Height float64
	Active bool
}

func (c *TabContentComponent) SetActive(active bool) { c.Active = active }
