// Package geom 提供摄像机路径计算所需的三维向量值类型
//
// Vec3 是不可变的值类型，所有运算返回新值，避免共享可变向量
// 带来的别名问题。需要零分配时，调用方应复用自己的 []float64 缓冲区。
package geom

import "math"

// Vec3 三维向量（值类型，按值传递）
type Vec3 struct {
	X, Y, Z float64
}

// Add 向量加法
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub 向量减法
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale 标量缩放
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Lerp 线性插值
// t=0 返回 v，t=1 返回 o
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

// Length 向量长度
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot 点积
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross 叉积
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Normalize 归一化；零向量原样返回
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// IsFinite 检查所有分量是否为有限值
// 曲线外推可能产生 NaN/Inf，采样结果使用前必须检查
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// FromSlice 从切片的前三个元素构造 Vec3
// 用于读取曲线采样缓冲区的位置/目标分量
func FromSlice(s []float64) Vec3 {
	return Vec3{s[0], s[1], s[2]}
}

// CopyToSlice 将向量分量写入切片的前三个元素
func (v Vec3) CopyToSlice(s []float64) {
	s[0], s[1], s[2] = v.X, v.Y, v.Z
}
