// Package types 按钮库共用的值类型
// 本包不依赖模块内的其他包
package types

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrDuplicateKey 重复添加同一个键，或有序列表中同一个键出现多次
var ErrDuplicateKey = errors.New("duplicate key")

var log = logrus.WithField("component", "ordered-map")

// Pair OrderedMap 持久化形式（有序列表）中的一项
type Pair[K comparable, V any] struct {
	Key   K `yaml:"key"`
	Value V `yaml:"value"`
}

// OrderedMap 键值映射，同时保留一份用于持久化的有序列表
//
// 两种表示之间显式同步：
//   - SnapshotToOrdered: 映射 -> 列表（写出前）
//   - RebuildFromOrdered: 列表 -> 映射（读入后）
//
// 查找只访问映射。编辑工具通过 AppendPair / SetPairAt 修改列表时，
// 列表可能暂时含有重复键，此时快照会跳过以保留编辑内容，直到
// RebuildFromOrdered 结束这次编辑。重建时重复键保留第一次出现的值。
type OrderedMap[K comparable, V any] struct {
	pairs []Pair[K, V]
	// editing 列表被直接修改且尚未重建
	editing bool

	dict  map[K]V
	order []K
}

// NewOrderedMap 创建空映射
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		pairs: make([]Pair[K, V], 0),
		dict:  make(map[K]V),
		order: make([]K, 0),
	}
}

// NewOrderedMapFromPairs 由有序列表构建映射，重复键保留第一个值
// 返回时列表已去重，与映射一致
func NewOrderedMapFromPairs[K comparable, V any](pairs ...Pair[K, V]) *OrderedMap[K, V] {
	m := NewOrderedMap[K, V]()
	m.pairs = append(m.pairs, pairs...)
	m.RebuildFromOrdered()
	m.SnapshotToOrdered()
	return m
}

// NewOrderedMapFromMap 复制 src
// Go 的 map 没有顺序，结果顺序不确定；需要顺序时用 NewOrderedMapFromPairs
func NewOrderedMapFromMap[K comparable, V any](src map[K]V) *OrderedMap[K, V] {
	m := NewOrderedMap[K, V]()
	for k, v := range src {
		m.dict[k] = v
		m.order = append(m.order, k)
	}
	m.SnapshotToOrdered()
	return m
}

func (m *OrderedMap[K, V]) ensure() {
	if m.dict == nil {
		m.dict = make(map[K]V)
	}
	if m.pairs == nil {
		m.pairs = make([]Pair[K, V], 0)
	}
}

// Len 映射中的键数量
func (m *OrderedMap[K, V]) Len() int {
	return len(m.dict)
}

// Add 添加新键，键已存在时返回 ErrDuplicateKey
func (m *OrderedMap[K, V]) Add(k K, v V) error {
	m.ensure()
	if _, ok := m.dict[k]; ok {
		return fmt.Errorf("add %v: %w", k, ErrDuplicateKey)
	}
	m.dict[k] = v
	m.order = append(m.order, k)
	return nil
}

// Set 插入或覆盖 k
func (m *OrderedMap[K, V]) Set(k K, v V) {
	m.ensure()
	if _, ok := m.dict[k]; !ok {
		m.order = append(m.order, k)
	}
	m.dict[k] = v
}

// Get 返回 k 对应的值以及是否存在
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.dict[k]
	return v, ok
}

// TryGet 同 Get
func (m *OrderedMap[K, V]) TryGet(k K) (V, bool) {
	return m.Get(k)
}

// ContainsKey 映射中是否存在 k
func (m *OrderedMap[K, V]) ContainsKey(k K) bool {
	_, ok := m.dict[k]
	return ok
}

// Remove 删除 k，返回是否真的删除了
func (m *OrderedMap[K, V]) Remove(k K) bool {
	if _, ok := m.dict[k]; !ok {
		return false
	}
	delete(m.dict, k)
	for i, key := range m.order {
		if key == k {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear 清空映射，不动有序列表
func (m *OrderedMap[K, V]) Clear() {
	m.dict = make(map[K]V)
	m.order = m.order[:0]
}

// Keys 按插入顺序返回所有键
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.order))
	copy(keys, m.order)
	return keys
}

// Values 按键的插入顺序返回所有值
func (m *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, len(m.order))
	for _, k := range m.order {
		values = append(values, m.dict[k])
	}
	return values
}

// Range 按插入顺序遍历，fn 返回 false 时停止
func (m *OrderedMap[K, V]) Range(fn func(k K, v V) bool) {
	for _, k := range m.order {
		if !fn(k, m.dict[k]) {
			return
		}
	}
}

// ToMap 返回映射的副本
func (m *OrderedMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.dict))
	for k, v := range m.dict {
		out[k] = v
	}
	return out
}

// ===== 有序列表访问（仅供编辑 / 查看） =====

// PairCount 有序列表长度
func (m *OrderedMap[K, V]) PairCount() int {
	return len(m.pairs)
}

// PairAt 返回列表第 i 项
func (m *OrderedMap[K, V]) PairAt(i int) (Pair[K, V], bool) {
	if i < 0 || i >= len(m.pairs) {
		return Pair[K, V]{}, false
	}
	return m.pairs[i], true
}

// SetPairAt 覆盖列表第 i 项，开始一次编辑
func (m *OrderedMap[K, V]) SetPairAt(i int, p Pair[K, V]) bool {
	if i < 0 || i >= len(m.pairs) {
		return false
	}
	m.pairs[i] = p
	m.editing = true
	return true
}

// AppendPair 向列表追加一项（不修改映射），开始一次编辑
func (m *OrderedMap[K, V]) AppendPair(p Pair[K, V]) {
	m.pairs = append(m.pairs, p)
	m.editing = true
}

// Pairs 返回列表副本
func (m *OrderedMap[K, V]) Pairs() []Pair[K, V] {
	out := make([]Pair[K, V], len(m.pairs))
	copy(out, m.pairs)
	return out
}

// ===== 同步 =====

// ValidateNoDuplicates 报告列表中第一个重复的键，不修改任何状态
func (m *OrderedMap[K, V]) ValidateNoDuplicates() error {
	seen := make(map[K]struct{}, len(m.pairs))
	for i, p := range m.pairs {
		if _, ok := seen[p.Key]; ok {
			return fmt.Errorf("key %v at index %d: %w", p.Key, i, ErrDuplicateKey)
		}
		seen[p.Key] = struct{}{}
	}
	return nil
}

// SnapshotToOrdered 用映射覆盖有序列表
//
// 只有编辑进行中且列表含重复键时才跳过（返回 false），保留未完成的编辑；
// 其他情况总是写入。
func (m *OrderedMap[K, V]) SnapshotToOrdered() bool {
	m.ensure()
	if m.editing {
		if err := m.ValidateNoDuplicates(); err != nil {
			log.WithError(err).Warn("ordered list is being edited and holds duplicates, snapshot skipped")
			return false
		}
	}

	m.pairs = m.pairs[:0]
	for _, k := range m.order {
		m.pairs = append(m.pairs, Pair[K, V]{Key: k, Value: m.dict[k]})
	}
	m.editing = false
	return true
}

// RebuildFromOrdered 清空映射并按列表重放，重复键保留第一个值
// 结束进行中的编辑
func (m *OrderedMap[K, V]) RebuildFromOrdered() {
	m.dict = make(map[K]V, len(m.pairs))
	m.order = make([]K, 0, len(m.pairs))
	m.editing = false

	for _, p := range m.pairs {
		if _, ok := m.dict[p.Key]; ok {
			log.WithField("key", p.Key).Warn("duplicate key in ordered list, later entry ignored")
			continue
		}
		m.dict[p.Key] = p.Value
		m.order = append(m.order, p.Key)
	}
}

// MarshalYAML 先快照再写出有序列表
func (m *OrderedMap[K, V]) MarshalYAML() (interface{}, error) {
	m.SnapshotToOrdered()
	return m.pairs, nil
}

// UnmarshalYAML 读入有序列表并重建映射
// 手工编辑过的重复项在这里被去掉，之后的快照照常写入
func (m *OrderedMap[K, V]) UnmarshalYAML(value *yaml.Node) error {
	var pairs []Pair[K, V]
	if err := value.Decode(&pairs); err != nil {
		return err
	}
	m.pairs = pairs
	m.RebuildFromOrdered()
	m.SnapshotToOrdered()
	return nil
}
