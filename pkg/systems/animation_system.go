package systems

import (
	"github.com/decker502/sadui/pkg/components"
	"github.com/decker502/sadui/pkg/ecs"
	"github.com/sirupsen/logrus"
)

// AnimationSystem 处理按钮的动画触发器并推进帧动画
type AnimationSystem struct {
	entityManager *ecs.EntityManager
	log           *logrus.Entry
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
		log:           logrus.WithField("component", "animation-system"),
	}
}

// Update 更新所有动画实体
// deltaTime 应为缩放后的时间，暂停时动画一起停止
func (s *AnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.AnimatorComponent](s.entityManager)

	for _, id := range entities {
		anim, _ := ecs.GetComponent[*components.AnimatorComponent](s.entityManager, id)

		if anim.HasPending {
			s.applyTrigger(id, anim)
		}

		if anim.Current == nil || anim.IsFinished || len(anim.Current.Frames) == 0 {
			continue
		}

		anim.FrameCounter += deltaTime
		if anim.FrameCounter < anim.Current.FrameSpeed {
			continue
		}
		anim.FrameCounter = 0
		anim.CurrentFrame++

		if anim.CurrentFrame >= len(anim.Current.Frames) {
			if anim.Current.IsLooping {
				anim.CurrentFrame = 0
			} else {
				// 非循环动画: 停在最后一帧并标记完成
				anim.CurrentFrame = len(anim.Current.Frames) - 1
				anim.IsFinished = true
				s.log.WithFields(logrus.Fields{"entity": id, "clip": anim.Current.Name}).Debug("clip finished")
			}
		}
	}
}

// applyTrigger 切换到触发器对应的片段；没有对应片段时保持当前播放
func (s *AnimationSystem) applyTrigger(id ecs.EntityID, anim *components.AnimatorComponent) {
	anim.HasPending = false

	clip, ok := anim.Clips[anim.PendingTrigger]
	if !ok {
		s.log.WithFields(logrus.Fields{"entity": id, "trigger": anim.PendingTrigger}).Debug("no clip for trigger")
		return
	}

	anim.Current = clip
	anim.FrameCounter = 0
	anim.CurrentFrame = 0
	anim.IsFinished = false
	s.log.WithFields(logrus.Fields{"entity": id, "clip": clip.Name, "frames": len(clip.Frames)}).Debug("clip started")
}
