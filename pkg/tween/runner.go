package tween

// Runner 每个通道最多保留一个存活任务，启动新任务前先取消进行中的任务
type Runner struct {
	scheduler *Scheduler
	current   *Handle
}

// NewRunner 在 scheduler 上创建 runner
func NewRunner(scheduler *Scheduler) *Runner {
	return &Runner{scheduler: scheduler}
}

// Start 取消进行中的任务（如果有）并调度 task
func (r *Runner) Start(task Task) *Handle {
	r.Stop()
	r.current = r.scheduler.Start(task)
	return r.current
}

// Stop 取消进行中的任务，不写入最终值
func (r *Runner) Stop() {
	if r.current != nil {
		r.current.Cancel()
		r.current = nil
	}
}

// Running 该 runner 上是否有存活任务
func (r *Runner) Running() bool {
	return r.current.Alive()
}
