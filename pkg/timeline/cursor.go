// Package timeline 管理摄像机轨迹的时间推进与姿态采样
//
// TimeCursor 负责按循环模式推进标量时间；CurveTimeline 在此之上
// 维护拟合曲线的采样结果（位置 + 注视目标）以及关键帧邻居查询。
package timeline

import (
	"fmt"
	"math"

	"github.com/gonewx/flycam/internal/track"
)

// LoopMode 时间循环模式
type LoopMode int

const (
	// LoopNone 播放到末尾后停住
	LoopNone LoopMode = iota
	// LoopRepeat 播放到末尾后回绕到起点
	LoopRepeat
	// LoopPingPong 在两端之间往返
	LoopPingPong
)

// ParseLoopMode 解析轨迹文件中的循环模式字符串
func ParseLoopMode(s string) (LoopMode, error) {
	switch s {
	case track.LoopNone:
		return LoopNone, nil
	case track.LoopRepeat:
		return LoopRepeat, nil
	case track.LoopPingPong:
		return LoopPingPong, nil
	}
	return LoopNone, fmt.Errorf("timeline: unknown loop mode %q", s)
}

// String 返回循环模式的字符串表示
func (m LoopMode) String() string {
	switch m {
	case LoopRepeat:
		return track.LoopRepeat
	case LoopPingPong:
		return track.LoopPingPong
	}
	return track.LoopNone
}

// TimeCursor 按循环模式推进的标量时间游标
//
// 不变量：任意 Advance 调用序列之后，
//   - LoopNone: 值在 [0, duration]，到达末尾后保持
//   - LoopRepeat: 值在 [0, duration)
//   - LoopPingPong: 值在 [0, duration]
type TimeCursor struct {
	duration float64
	mode     LoopMode
	// LoopPingPong 在 [0, 2*duration) 的相位上推进，
	// 取值时对折反射，天然支持任意大小的 dt
	phase float64
}

// Reset 重置游标，设置时长与循环模式，当前值归零
func (c *TimeCursor) Reset(duration float64, mode LoopMode) {
	c.duration = duration
	c.mode = mode
	c.phase = 0
}

// Advance 推进 dt 秒并返回推进后的当前值
// dt 为 0 时值不变；dt 远大于时长时回绕/反射仍然良定义
func (c *TimeCursor) Advance(dt float64) float64 {
	switch c.mode {
	case LoopRepeat:
		c.phase = wrap(c.phase+dt, c.duration)
	case LoopPingPong:
		c.phase = wrap(c.phase+dt, 2*c.duration)
	default:
		c.phase += dt
		if c.phase > c.duration {
			c.phase = c.duration
		}
		if c.phase < 0 {
			c.phase = 0
		}
	}
	return c.Value()
}

// Seek 将游标直接移动到 t（按当前循环模式规整）
func (c *TimeCursor) Seek(t float64) {
	switch c.mode {
	case LoopRepeat:
		c.phase = wrap(t, c.duration)
	case LoopPingPong:
		c.phase = wrap(t, 2*c.duration)
	default:
		c.phase = math.Min(math.Max(t, 0), c.duration)
	}
}

// Value 返回当前游标值（秒）
func (c *TimeCursor) Value() float64 {
	if c.mode == LoopPingPong {
		// 相位对折：前半程正向，后半程反射
		return c.duration - math.Abs(c.phase-c.duration)
	}
	return c.phase
}

// wrap 将 v 回绕到 [0, period)
func wrap(v, period float64) float64 {
	if period <= 0 {
		return 0
	}
	r := math.Mod(v, period)
	if r < 0 {
		r += period
	}
	return r
}
