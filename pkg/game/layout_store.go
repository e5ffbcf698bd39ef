package game

import (
	"fmt"

	"github.com/decker502/sadui/pkg/ui"
	"github.com/quasilyte/gdata/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// SavedButtonLayout 持久化的单个按钮外观
// Visuals 在写入前由 OrderedMap 快照为有序列表，读取后重建映射
type SavedButtonLayout struct {
	Transitions []string      `yaml:"transitions"`
	Visuals     *ui.VisualMap `yaml:"visuals"`
}

// LayoutStore 布局存储
// 负责按钮视觉布局的保存、加载和删除，每个布局一个 gdata 对象，
// 每个按钮一个属性
type LayoutStore struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	object       string

	// 降级模式下的内存存储，保存序列化后的数据以保持相同的读写路径
	memory map[string][]byte

	log *logrus.Entry
}

// NewLayoutStore 创建布局存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//   - layoutName: 布局名称，作为 gdata 对象键
func NewLayoutStore(gdataManager *gdata.Manager, layoutName string) *LayoutStore {
	ls := &LayoutStore{
		gdataManager: gdataManager,
		object:       "layout_" + layoutName,
		memory:       make(map[string][]byte),
		log:          logrus.WithFields(logrus.Fields{"component": "layout-store", "layout": layoutName}),
	}
	if gdataManager == nil {
		ls.log.Warn("persistent storage unavailable, layouts are kept in memory")
	}
	return ls
}

// Persistent 报告是否写入磁盘
func (ls *LayoutStore) Persistent() bool {
	return ls.gdataManager != nil
}

// Save 保存按钮布局
func (ls *LayoutStore) Save(buttonName string, layout *SavedButtonLayout) error {
	data, err := yaml.Marshal(layout)
	if err != nil {
		return fmt.Errorf("failed to marshal layout of %s: %w", buttonName, err)
	}

	if ls.gdataManager == nil {
		ls.memory[buttonName] = data
		return nil
	}
	if err := ls.gdataManager.SaveObjectProp(ls.object, buttonName, data); err != nil {
		return fmt.Errorf("failed to save layout of %s: %w", buttonName, err)
	}

	ls.log.WithField("button", buttonName).Info("layout saved")
	return nil
}

// Load 加载按钮布局
//
// 返回：
//   - *SavedButtonLayout: 布局，不存在时为 nil
//   - bool: 是否存在
//   - error: 读取或反序列化失败
func (ls *LayoutStore) Load(buttonName string) (*SavedButtonLayout, bool, error) {
	data, ok, err := ls.read(buttonName)
	if err != nil || !ok {
		return nil, ok, err
	}

	var layout SavedButtonLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, true, fmt.Errorf("failed to unmarshal layout of %s: %w", buttonName, err)
	}
	if layout.Visuals == nil {
		layout.Visuals = ui.NewVisualMap()
	}

	ls.log.WithFields(logrus.Fields{"button": buttonName, "states": layout.Visuals.Len()}).Info("layout loaded")
	return &layout, true, nil
}

// Exists 检查按钮布局是否已保存
func (ls *LayoutStore) Exists(buttonName string) bool {
	if ls.gdataManager == nil {
		_, ok := ls.memory[buttonName]
		return ok
	}
	return ls.gdataManager.ObjectPropExists(ls.object, buttonName)
}

// Delete 删除按钮布局，不存在时不报错
func (ls *LayoutStore) Delete(buttonName string) error {
	if ls.gdataManager == nil {
		delete(ls.memory, buttonName)
		return nil
	}
	if !ls.gdataManager.ObjectPropExists(ls.object, buttonName) {
		return nil
	}
	if err := ls.gdataManager.DeleteObjectProp(ls.object, buttonName); err != nil {
		return fmt.Errorf("failed to delete layout of %s: %w", buttonName, err)
	}
	ls.log.WithField("button", buttonName).Info("layout deleted")
	return nil
}

func (ls *LayoutStore) read(buttonName string) ([]byte, bool, error) {
	if ls.gdataManager == nil {
		data, ok := ls.memory[buttonName]
		return data, ok, nil
	}
	if !ls.gdataManager.ObjectPropExists(ls.object, buttonName) {
		return nil, false, nil
	}
	data, err := ls.gdataManager.LoadObjectProp(ls.object, buttonName)
	if err != nil {
		return nil, true, fmt.Errorf("failed to load layout of %s: %w", buttonName, err)
	}
	return data, true, nil
}

// OpenStorage 打开 gdata 存储
// 失败时返回 nil 并记录警告，调用方进入降级模式
func OpenStorage(appName string) *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logrus.WithField("component", "layout-store").WithError(err).Warn("failed to open storage")
		return nil
	}
	return manager
}
