package popup

// DataFactory 链式调用组装 Data：
//
//	data := popup.NewDataFactory().
//		AddTitle("Saved").
//		AddStringContent("Layout written.").
//		AddButton("OK", nil).
//		Build()
type DataFactory struct {
	title            string
	contents         []Content
	buttons          []ButtonData
	destroySelfDelay float64
}

func NewDataFactory() *DataFactory {
	return &DataFactory{}
}

func (f *DataFactory) AddTitle(title string) *DataFactory {
	f.title = title
	return f
}

func (f *DataFactory) AddStringContent(texts ...string) *DataFactory {
	for _, s := range texts {
		f.contents = append(f.contents, Content{Type: ContentString, Text: s})
	}
	return f
}

func (f *DataFactory) AddSpriteContent(sprites ...string) *DataFactory {
	for _, id := range sprites {
		f.contents = append(f.contents, Content{Type: ContentSprite, Sprite: id})
	}
	return f
}

func (f *DataFactory) AddContentSpacer(heights ...float64) *DataFactory {
	for _, h := range heights {
		f.contents = append(f.contents, Content{Type: ContentSpacer, SpacerHeight: h})
	}
	return f
}

func (f *DataFactory) AddOtherContent(others ...any) *DataFactory {
	for _, o := range others {
		f.contents = append(f.contents, Content{Type: ContentOther, Other: o})
	}
	return f
}

// AddButtons 追加按钮，按每个按钮的标题重新计算 HasTitle
func (f *DataFactory) AddButtons(buttons ...ButtonData) *DataFactory {
	for _, b := range buttons {
		f.AddButton(b.Title, b.Callback)
	}
	return f
}

func (f *DataFactory) AddButton(title string, callback func()) *DataFactory {
	f.buttons = append(f.buttons, ButtonData{
		HasTitle: title != "",
		Title:    title,
		Callback: callback,
	})
	return f
}

// AddDestroySelfAfterDelay 弹窗显示 delay 秒后自行关闭，delay <= 0 时关闭该功能
func (f *DataFactory) AddDestroySelfAfterDelay(delay float64) *DataFactory {
	f.destroySelfDelay = delay
	return f
}

// Build 返回组装好的 Data，返回的切片是副本，工厂可以继续使用
func (f *DataFactory) Build() Data {
	return Data{
		HasTitle:          f.title != "",
		Title:             f.title,
		Contents:          append([]Content(nil), f.contents...),
		Buttons:           append([]ButtonData(nil), f.buttons...),
		ShouldDestroySelf: f.destroySelfDelay > 0,
		DestroySelfDelay:  f.destroySelfDelay,
	}
}
