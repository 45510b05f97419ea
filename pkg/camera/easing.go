// Package camera 实现电影镜头的播放控制器
//
// PlaybackController 持有播放状态机（播放 / 暂停 / 过渡），
// 消费 CurveTimeline 的姿态与每帧时间增量，叠加悬浮微动效果后
// 向镜头协作方发出最终的 look-at 指令。
package camera

import "math"

// EasingFunc 缓动函数：将归一化进度 t ∈ [0, 1] 映射到 [0, 1]
// 必须满足 f(0)=0、f(1)=1，保证过渡两端姿态精确命中
//
// 参考：https://easings.net/
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（推荐用于"飞向目标"的镜头过渡）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EasingByName 按配置名称查找缓动函数
// 未知名称返回默认的 EaseInOutCubic 与 false
func EasingByName(name string) (EasingFunc, bool) {
	switch name {
	case "linear":
		return EaseLinear, true
	case "easeOutQuad":
		return EaseOutQuad, true
	case "easeOutCubic":
		return EaseOutCubic, true
	case "easeInOutCubic":
		return EaseInOutCubic, true
	}
	return EaseInOutCubic, false
}
