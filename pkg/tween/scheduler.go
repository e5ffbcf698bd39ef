package tween

import "github.com/sirupsen/logrus"

var log = logrus.WithField("component", "tween")

// Task 可恢复的工作单元
// 每帧调用一次 Step，返回 true 表示已完成
type Task interface {
	Step(clock *Clock) bool
}

// TaskFunc 把函数适配为 Task
type TaskFunc func(clock *Clock) bool

func (f TaskFunc) Step(clock *Clock) bool { return f(clock) }

// Handle 已启动任务的句柄
type Handle struct {
	task      Task
	cancelled bool
	done      bool
}

// Cancel 停止任务：之后不再被推进，也不再写入任何值
// 对已完成的任务或 nil 句柄调用无效果
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled = true
}

// Cancelled 任务完成前是否被取消
func (h *Handle) Cancelled() bool { return h != nil && h.cancelled }

// Done 任务是否正常完成
func (h *Handle) Done() bool { return h != nil && h.done }

// Alive 下一次 Update 是否还会推进该任务
func (h *Handle) Alive() bool { return h != nil && !h.cancelled && !h.done }

// Scheduler 协作式调度器，每次 Update 把存活的任务各推进一次
//
// Update 期间（包括任务的 Step 内）可以安全地调用 Start、Cancel 和 CancelAll。
type Scheduler struct {
	clock *Clock
	tasks []*Handle
}

// NewScheduler 创建调度器，任务从 clock 读取时间
func NewScheduler(clock *Clock) *Scheduler {
	return &Scheduler{
		clock: clock,
		tasks: make([]*Handle, 0),
	}
}

// Clock 返回推进任务所用的时钟
func (s *Scheduler) Clock() *Clock { return s.clock }

// Start 注册任务，下一次 Update 时第一次推进
func (s *Scheduler) Start(task Task) *Handle {
	h := &Handle{task: task}
	s.tasks = append(s.tasks, h)
	return h
}

// Update 把每个存活任务推进一次
// 在 Step 中新启动的任务要到下一次 Update 才会被推进
func (s *Scheduler) Update() {
	// 只遍历本帧开始时的任务；Step 中追加的任务不在这份切片里
	current := s.tasks[:len(s.tasks):len(s.tasks)]
	for _, h := range current {
		if !h.Alive() {
			continue
		}
		if h.task.Step(s.clock) {
			h.done = true
		}
	}
	s.compact()
}

// compact 移除已完成或已取消的任务
func (s *Scheduler) compact() {
	live := make([]*Handle, 0, len(s.tasks))
	for _, h := range s.tasks {
		if h.Alive() {
			live = append(live, h)
		}
	}
	s.tasks = live
}

// Len 仍在调度中的任务数量
func (s *Scheduler) Len() int {
	count := 0
	for _, h := range s.tasks {
		if h.Alive() {
			count++
		}
	}
	return count
}

// CancelAll 取消所有任务
// 只做标记，句柄在下一次 Update 结束时被移除，因此可以在 Step 内调用
func (s *Scheduler) CancelAll() {
	for _, h := range s.tasks {
		h.Cancel()
	}
	log.Debug("all tasks cancelled")
}
