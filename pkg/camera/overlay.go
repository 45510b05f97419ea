package camera

import (
	"math"

	"github.com/gonewx/flycam/pkg/geom"
)

// OverlayFunc 悬浮微动函数：由悬浮时钟计算一个小幅位置偏移
//
// 该函数必须是悬浮时钟的纯函数（无隐藏状态），同一时钟值
// 总是得到同一偏移；偏移幅度必须远小于场景尺度，只提供
// "画面仍然活着"的视觉暗示，不改变构图
type OverlayFunc func(hoverClock float64) geom.Vec3

// NewSineOverlay 构造默认的正弦悬浮微动
//
// 两路频率不同、相位错开的正弦信号分别作用于横向与纵向，
// 避免完全同步的机械感摆动。各分量偏移的绝对值不超过 amplitude
//
// 参数：
//   - amplitude: 最大偏移幅度（世界单位）
//   - speed: 摆动速率倍数（1.0 为默认节奏）
func NewSineOverlay(amplitude, speed float64) OverlayFunc {
	return func(hoverClock float64) geom.Vec3 {
		t := hoverClock * speed
		return geom.Vec3{
			X: amplitude * math.Sin(0.9*t),
			Y: 0.6 * amplitude * math.Sin(1.7*t+1.3),
			Z: 0,
		}
	}
}
