package camera

import (
	"log"

	"github.com/gonewx/flycam/pkg/geom"
	"github.com/gonewx/flycam/pkg/timeline"
)

// Mode 播放控制器状态
type Mode int

const (
	// ModePlaying 沿轨迹正常推进
	ModePlaying Mode = iota
	// ModePaused 停在锚点姿态，叠加悬浮微动
	ModePaused
	// ModeTransitioning 正在向相邻关键帧做缓动过渡
	ModeTransitioning
)

// String 返回状态名称
func (m Mode) String() string {
	switch m {
	case ModePaused:
		return "Paused"
	case ModeTransitioning:
		return "Transitioning"
	}
	return "Playing"
}

// Pose 镜头姿态：机位位置 + 注视目标
type Pose struct {
	Position geom.Vec3
	Target   geom.Vec3
}

// lerp 姿态线性插值（位置与目标分别插值）
func (p Pose) lerp(o Pose, t float64) Pose {
	return Pose{
		Position: p.Position.Lerp(o.Position, t),
		Target:   p.Target.Lerp(o.Target, t),
	}
}

// minTransitionDuration 过渡时长下限（秒）
// 配置为零或负数时截断到该值，避免进度除法产生非有限值
const minTransitionDuration = 0.05

// transition 进行中的关键帧过渡
// 仅在 ModeTransitioning 状态下存在，进度到达 1 时销毁
type transition struct {
	from     Pose
	to       Pose
	elapsed  float64
	duration float64
	easing   EasingFunc
}

// Options 播放控制器的可调参数
type Options struct {
	// TransitionDuration 关键帧过渡时长（秒），低于下限时截断
	TransitionDuration float64
	// Easing 过渡缓动函数，nil 时使用 EaseInOutCubic
	Easing EasingFunc
	// Overlay 悬浮微动函数，nil 时使用默认正弦微动
	Overlay OverlayFunc
}

// PlaybackController 电影镜头播放控制器
//
// 每帧恰好被调用一次 Update，单写者推进状态机；
// 无论处于何种状态，每次 Update 都会读取一帧输入并
// 向镜头协作方发出恰好一条有限姿态的 Look 指令
type PlaybackController struct {
	tl      *timeline.CurveTimeline
	mode    Mode
	easing  EasingFunc
	overlay OverlayFunc

	// basePose 最近一次提交的稳定姿态
	// 既是暂停时的锚点，也是过渡的起点
	basePose Pose

	// trans 进行中的过渡，仅 ModeTransitioning 时非 nil
	trans *transition

	transitionDuration float64

	// hoverClock 悬浮微动的相位时钟
	// 单调累积，从不重置也从不暂停，保证任意时刻进入暂停
	// 微动相位都与此前的暂停连续
	hoverClock float64
}

// New 创建播放控制器
func New(tl *timeline.CurveTimeline, opts Options) *PlaybackController {
	duration := opts.TransitionDuration
	if duration < minTransitionDuration {
		duration = minTransitionDuration
	}
	easing := opts.Easing
	if easing == nil {
		easing = EaseInOutCubic
	}
	overlay := opts.Overlay
	if overlay == nil {
		overlay = NewSineOverlay(0.35, 1.0)
	}

	pos, tgt := tl.Pose()
	return &PlaybackController{
		tl:                 tl,
		mode:               ModePlaying,
		easing:             easing,
		overlay:            overlay,
		basePose:           Pose{Position: pos, Target: tgt},
		transitionDuration: duration,
	}
}

// Mode 返回当前状态
func (c *PlaybackController) Mode() Mode {
	return c.mode
}

// BasePose 返回最近一次提交的稳定姿态
func (c *PlaybackController) BasePose() Pose {
	return c.basePose
}

// Update 每帧推进控制器
//
// 参数：
//   - dt: 时间增量（秒），可以为 0（强制重采样）或任意大（帧抖动）
//   - input: 输入协作方，每帧读取并丢弃一帧，防止过期输入累积
//   - cam: 镜头协作方，本次调用恰好收到一条 Look 指令
//   - paused: 暂停标志
func (c *PlaybackController) Update(dt float64, input InputSource, cam Sink, paused bool) {
	// 无条件排空本帧输入
	if input != nil {
		_ = input.Read()
	}

	// 悬浮时钟持续累积，包括播放与过渡期间
	c.hoverClock += dt

	var pose Pose
	switch c.mode {
	case ModeTransitioning:
		pose = c.stepTransition(dt, paused)
	default:
		// 暂停标志在非过渡状态下直接决定 Playing/Paused
		c.applyPauseFlag(paused)
		if c.mode == ModePaused {
			pose = c.basePose
			pose.Position = pose.Position.Add(c.overlay(c.hoverClock))
		} else {
			c.tl.Advance(dt)
			pos, tgt := c.tl.Pose()
			c.basePose = Pose{Position: pos, Target: tgt}
			pose = c.basePose
		}
	}

	cam.Look(pose.Position, pose.Target)
}

// applyPauseFlag 根据暂停标志切换 Playing/Paused
func (c *PlaybackController) applyPauseFlag(paused bool) {
	if paused && c.mode != ModePaused {
		c.mode = ModePaused
		log.Printf("[PlaybackController] 暂停播放 (hoverClock=%.2fs)", c.hoverClock)
	} else if !paused && c.mode != ModePlaying {
		c.mode = ModePlaying
		log.Printf("[PlaybackController] 恢复播放")
	}
}

// stepTransition 推进进行中的过渡并返回本帧姿态
// 进度到达 1 时提交终点姿态为新锚点，销毁过渡并退出过渡状态
func (c *PlaybackController) stepTransition(dt float64, paused bool) Pose {
	tr := c.trans
	tr.elapsed += dt

	progress := tr.elapsed / tr.duration
	if progress >= 1 {
		progress = 1
	}

	var pose Pose
	switch {
	case progress <= 0:
		pose = tr.from
	case progress >= 1:
		// 端点直接取值，避免浮点插值在边界上差一个 ulp
		pose = tr.to
	default:
		pose = tr.from.lerp(tr.to, tr.easing(progress))
	}
	if paused {
		// 暂停中的过渡同样叠加微动，落点不显得僵死
		pose.Position = pose.Position.Add(c.overlay(c.hoverClock))
	}

	if progress >= 1 {
		c.basePose = tr.to
		c.trans = nil
		if paused {
			c.mode = ModePaused
		} else {
			c.mode = ModePlaying
		}
		log.Printf("[PlaybackController] 过渡完成，进入 %s", c.mode)
	}
	return pose
}

// NextKeyframe 向下一个授权关键帧发起缓动过渡
// 任意状态下有效；过渡中再次调用会从最近提交的锚点姿态重新起步
// （而非当前插值姿态），可能产生可见跳变，这是既有设计行为
func (c *PlaybackController) NextKeyframe() {
	c.startTransition(c.tl.NextKeyframeAfter(c.tl.Time()))
}

// PrevKeyframe 向上一个授权关键帧发起缓动过渡
func (c *PlaybackController) PrevKeyframe() {
	c.startTransition(c.tl.PrevKeyframeBefore(c.tl.Time()))
}

// startTransition 以 basePose 为起点向 keyframeTime（秒）处的姿态过渡
func (c *PlaybackController) startTransition(keyframeTime float64) {
	from := c.basePose

	// 定位到关键帧并强制重采样，拿到过渡终点姿态
	c.tl.Seek(keyframeTime)
	c.tl.Advance(0)
	pos, tgt := c.tl.Pose()

	c.trans = &transition{
		from:     from,
		to:       Pose{Position: pos, Target: tgt},
		duration: c.transitionDuration,
		easing:   c.easing,
	}
	c.mode = ModeTransitioning
	log.Printf("[PlaybackController] 开始过渡到关键帧 t=%.2fs", keyframeTime)
}
