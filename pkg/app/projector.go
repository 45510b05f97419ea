package app

import (
	"github.com/gonewx/flycam/pkg/geom"
)

// Projector 透视投影镜头
// 实现 camera.Sink：接收播放控制器每帧发出的 look-at 指令，
// 并把世界坐标点投影到屏幕坐标用于预览渲染
type Projector struct {
	eye    geom.Vec3
	target geom.Vec3

	// 视图基（右、上、前），Look 时重建
	right   geom.Vec3
	up      geom.Vec3
	forward geom.Vec3

	width, height float64
	focal         float64 // 焦距（像素）
}

// NewProjector 创建投影镜头
func NewProjector(width, height int) *Projector {
	return &Projector{
		width:  float64(width),
		height: float64(height),
		focal:  float64(height), // 约 53° 垂直视场
	}
}

// Look 实现 camera.Sink：以 position 为机位注视 target
// 幂等指令，只更新渲染姿态，无其他副作用
func (p *Projector) Look(position, target geom.Vec3) {
	p.eye = position
	p.target = target

	worldUp := geom.Vec3{X: 0, Y: 1, Z: 0}
	p.forward = target.Sub(position).Normalize()
	p.right = p.forward.Cross(worldUp).Normalize()
	if p.right.Length() == 0 {
		// 正对天顶/天底时退化，选一条固定的右方向
		p.right = geom.Vec3{X: 1, Y: 0, Z: 0}
	}
	p.up = p.right.Cross(p.forward)
}

// Eye 返回当前机位
func (p *Projector) Eye() geom.Vec3 { return p.eye }

// Target 返回当前注视目标
func (p *Projector) Target() geom.Vec3 { return p.target }

// Project 将世界坐标点投影到屏幕坐标
// 返回屏幕坐标与该点是否位于镜头前方（后方的点不应绘制）
func (p *Projector) Project(world geom.Vec3) (x, y float64, visible bool) {
	const near = 0.1

	d := world.Sub(p.eye)
	z := d.Dot(p.forward)
	if z < near {
		return 0, 0, false
	}

	sx := p.width/2 + p.focal*d.Dot(p.right)/z
	sy := p.height/2 - p.focal*d.Dot(p.up)/z
	return sx, sy, true
}
