// Package spline 提供闭合 Catmull-Rom 样条曲线的拟合与采样
//
// 曲线通过一组带结点（knot）的控制点拟合，参数域为 [0, period)，
// 超出域的参数按周期回绕，因此曲线在首尾之间平滑闭合。
// 采样结果写入调用方提供的缓冲区，避免每帧分配。
package spline

import (
	"errors"
	"fmt"
	"math"
)

// MinPoints 闭合曲线所需的最少控制点数
// 少于 3 个点时无法为每个点构造独立的前后邻居切线
const MinPoints = 3

// ErrTooFewPoints 控制点数量不足
var ErrTooFewPoints = errors.New("spline: fewer than 3 control points")

// Loop 闭合 Catmull-Rom 样条曲线
// 控制点维度任意但必须一致，结点单调递增且位于 [0, period) 内
type Loop struct {
	knots      []float64   // 每个控制点的参数位置
	points     [][]float64 // 控制点，维度一致
	tangents   [][]float64 // 预计算的导数形式切线
	period     float64     // 参数域周期
	dim        int         // 控制点维度
	smoothness float64     // 切线缩放系数，0.5 为标准 Catmull-Rom
}

// NewLoop 通过控制点拟合闭合曲线
//
// 参数：
//   - knots: 控制点参数位置（单调递增，均在 [0, period) 内）
//   - points: 控制点坐标，所有点维度一致
//   - period: 参数域周期（必须大于最后一个结点）
//   - smoothness: 切线缩放系数（0 为折线式过渡，0.5 为标准 Catmull-Rom）
func NewLoop(knots []float64, points [][]float64, period float64, smoothness float64) (*Loop, error) {
	if len(points) < MinPoints {
		return nil, ErrTooFewPoints
	}
	if len(knots) != len(points) {
		return nil, fmt.Errorf("spline: knot count %d != point count %d", len(knots), len(points))
	}

	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("spline: point %d has dimension %d, expected %d", i, len(p), dim)
		}
	}

	for i := 1; i < len(knots); i++ {
		if knots[i] <= knots[i-1] {
			return nil, fmt.Errorf("spline: knots must be strictly increasing (knot %d: %.3f <= %.3f)", i, knots[i], knots[i-1])
		}
	}
	if period <= knots[len(knots)-1] {
		return nil, fmt.Errorf("spline: period %.3f must exceed last knot %.3f", period, knots[len(knots)-1])
	}

	l := &Loop{
		knots:      knots,
		points:     points,
		period:     period,
		dim:        dim,
		smoothness: smoothness,
	}
	l.buildTangents()
	return l, nil
}

// Dim 返回控制点维度
func (l *Loop) Dim() int { return l.dim }

// Period 返回参数域周期
func (l *Loop) Period() float64 { return l.period }

// buildTangents 预计算每个控制点的切线（导数形式）
// 切线为前后邻居的有限差分，邻居索引按周期回绕
func (l *Loop) buildTangents() {
	n := len(l.points)
	l.tangents = make([][]float64, n)
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		next := (i + 1) % n

		tPrev := l.knots[prev]
		tNext := l.knots[next]
		// 回绕的邻居在参数轴上平移一个周期
		if prev > i {
			tPrev -= l.period
		}
		if next < i {
			tNext += l.period
		}

		span := tNext - tPrev
		tangent := make([]float64, l.dim)
		for d := 0; d < l.dim; d++ {
			tangent[d] = 2 * l.smoothness * (l.points[next][d] - l.points[prev][d]) / span
		}
		l.tangents[i] = tangent
	}
}

// Evaluate 在参数 param 处采样曲线，结果写入 out 的前 Dim() 个元素
// param 超出 [0, period) 时按周期回绕；out 长度不足时 panic（调用方契约）
func (l *Loop) Evaluate(param float64, out []float64) {
	p := wrap(param, l.period)

	// 定位所在分段：首个结点之前与最后一个结点之后同属回绕封口段
	n := len(l.points)
	seg := n - 1
	if p < l.knots[0] {
		p += l.period
	} else {
		for i := 1; i < n; i++ {
			if p < l.knots[i] {
				seg = i - 1
				break
			}
		}
	}

	i0 := seg
	i1 := (seg + 1) % n
	t0 := l.knots[i0]
	t1 := l.knots[i1]
	if i1 == 0 {
		t1 = l.period + l.knots[0]
	}

	h := t1 - t0
	t := (p - t0) / h

	// 三次 Hermite 基函数
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	for d := 0; d < l.dim; d++ {
		out[d] = h00*l.points[i0][d] +
			h10*h*l.tangents[i0][d] +
			h01*l.points[i1][d] +
			h11*h*l.tangents[i1][d]
	}
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
