package timeline

import (
	"fmt"

	"github.com/gonewx/flycam/internal/track"
	"github.com/gonewx/flycam/pkg/geom"
	"github.com/gonewx/flycam/pkg/spline"
)

// poseDim 采样缓冲区维度：位置 3 分量 + 注视目标 3 分量
const poseDim = 6

// keyframeEpsilon 关键帧邻居查询的容差（采样单位）
// 避免浮点误差导致返回游标正停留的那个关键帧
const keyframeEpsilon = 0.1

// Evaluator 曲线采样协作方接口
// 在参数 param 处采样，将固定维度的结果写入 out；
// 调用方负责检查结果的有限性
type Evaluator interface {
	Evaluate(param float64, out []float64)
}

// CurveTimeline 摄像机轨迹时间线
// 持有拟合曲线、时间游标与关键帧列表，负责把经过的时间
// 转换为（位置，注视目标）姿态
type CurveTimeline struct {
	curve         Evaluator
	cursor        TimeCursor
	fps           float64
	domain        float64   // 参数域长度（秒），含封口延长
	keyframeTimes []float64 // 采样单位，单调不减

	buf      [poseDim]float64
	position geom.Vec3
	target   geom.Vec3
}

// New 从授权轨迹构建时间线
//
// 曲线通过每个关键帧处的（位置，目标）六维向量闭合拟合。
// 若最后一个关键帧恰好落在总时长上，参数域额外延长一个采样，
// 避免封口段长度为零的退化回绕。
func New(tr *track.CameraTrack) (*CurveTimeline, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	mode, err := ParseLoopMode(tr.Loop)
	if err != nil {
		return nil, err
	}

	durationSamples := tr.Duration * tr.FPS
	period := durationSamples
	last := tr.Keyframes[len(tr.Keyframes)-1].Time
	if last >= durationSamples {
		period = last + 1
	}

	knots := make([]float64, len(tr.Keyframes))
	points := make([][]float64, len(tr.Keyframes))
	for i, kf := range tr.Keyframes {
		knots[i] = kf.Time
		p := make([]float64, poseDim)
		p[0], p[1], p[2] = kf.Position[0], kf.Position[1], kf.Position[2]
		p[3], p[4], p[5] = kf.Target[0], kf.Target[1], kf.Target[2]
		points[i] = p
	}

	curve, err := spline.NewLoop(knots, points, period, tr.Smoothness)
	if err != nil {
		return nil, fmt.Errorf("timeline: curve fit failed: %w", err)
	}

	tl := &CurveTimeline{
		curve:         curve,
		fps:           tr.FPS,
		domain:        period / tr.FPS,
		keyframeTimes: knots,
	}
	// 游标域与曲线参数域一致（含封口延长），
	// 否则 repeat 模式下定位到末关键帧会被错误回绕到起点
	tl.cursor.Reset(tl.domain, mode)

	// 初始姿态：在游标起点强制采样一次
	tl.Advance(0)
	return tl, nil
}

// NewWithEvaluator 使用外部曲线协作方构建时间线（测试与替换曲线实现用）
func NewWithEvaluator(curve Evaluator, keyframeTimes []float64, duration, fps float64, mode LoopMode) *CurveTimeline {
	tl := &CurveTimeline{
		curve:         curve,
		fps:           fps,
		domain:        duration,
		keyframeTimes: keyframeTimes,
	}
	tl.cursor.Reset(duration, mode)
	return tl
}

// Advance 推进时间线 dt 秒并重新采样当前姿态
//
// 曲线在 游标值 × fps 处采样；六个分量全部有限时才提交为当前姿态，
// 否则静默保留上一帧姿态（曲线外推瞬态不向下游传播）。
// dt 为 0 时不推进时间，仅在当前位置强制重新采样（关键帧跳转后使用）。
func (tl *CurveTimeline) Advance(dt float64) {
	v := tl.cursor.Advance(dt)
	tl.curve.Evaluate(v*tl.fps, tl.buf[:])

	pos := geom.FromSlice(tl.buf[0:3])
	tgt := geom.FromSlice(tl.buf[3:6])
	if !pos.IsFinite() || !tgt.IsFinite() {
		return
	}
	tl.position = pos
	tl.target = tgt
}

// Seek 将游标移动到 t 秒处（不采样，随后用 Advance(0) 强制采样）
func (tl *CurveTimeline) Seek(t float64) {
	tl.cursor.Seek(t)
}

// Pose 返回当前（位置，注视目标）姿态
func (tl *CurveTimeline) Pose() (position, target geom.Vec3) {
	return tl.position, tl.target
}

// Time 返回当前游标值（秒）
func (tl *CurveTimeline) Time() float64 {
	return tl.cursor.Value()
}

// KeyframeTimesSeconds 返回所有授权关键帧时间（秒），用于标记渲染
func (tl *CurveTimeline) KeyframeTimesSeconds() []float64 {
	out := make([]float64, len(tl.keyframeTimes))
	for i, k := range tl.keyframeTimes {
		out[i] = k / tl.fps
	}
	return out
}

// PathPoints 沿整个参数域均匀采样 count 个机位位置，用于路径可视化
// 非有限采样点被跳过
func (tl *CurveTimeline) PathPoints(count int) []geom.Vec3 {
	points := make([]geom.Vec3, 0, count)
	var buf [poseDim]float64
	for i := 0; i < count; i++ {
		param := tl.domain * float64(i) / float64(count) * tl.fps
		tl.curve.Evaluate(param, buf[:])
		p := geom.FromSlice(buf[0:3])
		if p.IsFinite() {
			points = append(points, p)
		}
	}
	return points
}

// PoseAt 采样 t 秒处的（位置，目标），不影响游标与当前姿态
// 非有限采样返回当前姿态
func (tl *CurveTimeline) PoseAt(t float64) (position, target geom.Vec3) {
	var buf [poseDim]float64
	tl.curve.Evaluate(t*tl.fps, buf[:])
	pos := geom.FromSlice(buf[0:3])
	tgt := geom.FromSlice(buf[3:6])
	if !pos.IsFinite() || !tgt.IsFinite() {
		return tl.position, tl.target
	}
	return pos, tgt
}

// NextKeyframeAfter 返回严格晚于 t（秒）的第一个关键帧时间（秒）
// 没有更晚的关键帧时回绕到第一个；关键帧列表为空时返回 0
func (tl *CurveTimeline) NextKeyframeAfter(t float64) float64 {
	if len(tl.keyframeTimes) == 0 {
		return 0
	}
	s := t * tl.fps
	for _, k := range tl.keyframeTimes {
		if k > s+keyframeEpsilon {
			return k / tl.fps
		}
	}
	return tl.keyframeTimes[0] / tl.fps
}

// PrevKeyframeBefore 返回严格早于 t（秒）的最后一个关键帧时间（秒）
// 没有更早的关键帧时回绕到最后一个；关键帧列表为空时返回 0
func (tl *CurveTimeline) PrevKeyframeBefore(t float64) float64 {
	if len(tl.keyframeTimes) == 0 {
		return 0
	}
	s := t * tl.fps
	for i := len(tl.keyframeTimes) - 1; i >= 0; i-- {
		if tl.keyframeTimes[i] < s-keyframeEpsilon {
			return tl.keyframeTimes[i] / tl.fps
		}
	}
	return tl.keyframeTimes[len(tl.keyframeTimes)-1] / tl.fps
}
