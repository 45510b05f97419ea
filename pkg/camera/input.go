package camera

import "github.com/gonewx/flycam/pkg/geom"

// InputFrame 单帧输入快照
// 控制器每帧读取并丢弃一帧输入（见 PlaybackController.Update），
// 防止上游输入系统累积过期事件；字段内容本身可以被忽略
type InputFrame struct {
	// CursorX, CursorY 指针位置（屏幕坐标）
	CursorX, CursorY int
	// WheelY 本帧滚轮增量
	WheelY float64
	// Pressed 本帧是否有按下事件
	Pressed bool
}

// InputSource 输入协作方接口
// Read 必须每帧被调用一次，即使返回的内容被丢弃
type InputSource interface {
	Read() InputFrame
}

// Sink 镜头协作方接口
// Look 为幂等指令：以 position 为机位注视 target，无返回值
type Sink interface {
	Look(position, target geom.Vec3)
}
