package app

import (
	"github.com/gonewx/flycam/pkg/camera"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput 基于 Ebiten 输入状态的输入协作方
// 每帧把指针位置、滚轮增量与按下事件打包成一帧快照；
// 播放控制器每帧读取（并丢弃）一帧，防止过期输入累积
type EbitenInput struct{}

// Read 采集当前帧的输入快照
func (EbitenInput) Read() camera.InputFrame {
	x, y := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	return camera.InputFrame{
		CursorX: x,
		CursorY: y,
		WheelY:  wheelY,
		Pressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}
