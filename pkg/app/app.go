// Package app 提供飞行镜头预览应用的核心包装器
//
// 该包把轨迹加载、参数加载与播放控制器的装配从 main 包提取出来，
// App 实现 ebiten.Game 接口，每帧驱动播放控制器并渲染路径预览。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/flycam/internal/track"
	"github.com/gonewx/flycam/pkg/camera"
	"github.com/gonewx/flycam/pkg/config"
	"github.com/gonewx/flycam/pkg/geom"
	"github.com/gonewx/flycam/pkg/timeline"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"
)

// pathSampleCount 路径可视化的采样点数
const pathSampleCount = 256

// Config 定义应用启动配置
type Config struct {
	// TrackPath 要播放的轨迹文件路径
	TrackPath string
	// Verbose 启用详细日志输出
	Verbose bool
}

// App 是预览应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	controller *camera.PlaybackController
	tl         *timeline.CurveTimeline
	projector  *Projector
	input      EbitenInput
	settings   *config.SettingsManager

	paused bool

	// 路径可视化缓存（轨迹不可变，构建时采样一次）
	pathPoints    []geom.Vec3
	keyframeTimes []float64
}

// NewApp 创建并初始化预览应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 打开跨平台存储；失败时降级为纯内存参数
	gdataManager, err := gdata.Open(gdata.Config{AppName: "flycam"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settings, err := config.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	// 加载授权轨迹
	tr, err := track.ParseTrackFile(cfg.TrackPath)
	if err != nil {
		return nil, fmt.Errorf("轨迹加载失败: %w", err)
	}

	tl, err := timeline.New(tr)
	if err != nil {
		return nil, fmt.Errorf("时间线构建失败: %w", err)
	}

	s := settings.GetSettings()
	easing, ok := camera.EasingByName(s.Easing)
	if !ok {
		log.Printf("[App] 未知缓动 %q，使用默认缓动", s.Easing)
	}

	controller := camera.New(tl, camera.Options{
		TransitionDuration: s.TransitionDuration,
		Easing:             easing,
		Overlay:            camera.NewSineOverlay(s.HoverAmplitude, s.HoverSpeed),
	})

	a := &App{
		controller:    controller,
		tl:            tl,
		projector:     NewProjector(config.WindowWidth, config.WindowHeight),
		settings:      settings,
		pathPoints:    tl.PathPoints(pathSampleCount),
		keyframeTimes: tl.KeyframeTimesSeconds(),
	}

	log.Printf("[App] 轨迹加载完成: %d 个关键帧, 时长 %.1fs, 循环 %s",
		len(tr.Keyframes), tr.Duration, tr.Loop)
	return a, nil
}

// Update 每帧推进应用逻辑
func (a *App) Update() error {
	// ESC 退出
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// 空格切换暂停
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.paused = !a.paused
		log.Printf("[App] 暂停 = %v", a.paused)
	}

	// N / P 跳转相邻关键帧
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.controller.NextKeyframe()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.controller.PrevKeyframe()
	}

	deltaTime := 1.0 / 60.0
	a.controller.Update(deltaTime, a.input, a.projector, a.paused)
	return nil
}

// Draw 绘制路径预览画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 20, B: 26, A: 255})

	a.drawPath(screen)
	a.drawKeyframes(screen)
	a.drawTargetMarker(screen)

	msg := fmt.Sprintf("mode: %s  t=%.2fs  [Space] pause  [N/P] keyframe  [Esc] quit",
		a.controller.Mode(), a.tl.Time())
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}

// drawPath 绘制整条授权路径的投影折线
func (a *App) drawPath(screen *ebiten.Image) {
	pathColor := color.RGBA{R: 90, G: 160, B: 255, A: 255}

	n := len(a.pathPoints)
	for i := 0; i < n; i++ {
		p0 := a.pathPoints[i]
		p1 := a.pathPoints[(i+1)%n]

		x0, y0, ok0 := a.projector.Project(p0)
		x1, y1, ok1 := a.projector.Project(p1)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, pathColor, true)
	}
}

// drawKeyframes 绘制授权关键帧的位置标记
func (a *App) drawKeyframes(screen *ebiten.Image) {
	markerColor := color.RGBA{R: 255, G: 200, B: 60, A: 255}

	for _, t := range a.keyframeTimes {
		pos, _ := a.tl.PoseAt(t)
		x, y, ok := a.projector.Project(pos)
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), 4, markerColor, true)
	}
}

// drawTargetMarker 绘制当前注视目标的十字标记
func (a *App) drawTargetMarker(screen *ebiten.Image) {
	crossColor := color.RGBA{R: 255, G: 90, B: 90, A: 255}

	x, y, ok := a.projector.Project(a.projector.Target())
	if !ok {
		return
	}
	const r = 6
	vector.StrokeLine(screen, float32(x-r), float32(y), float32(x+r), float32(y), 1, crossColor, true)
	vector.StrokeLine(screen, float32(x), float32(y-r), float32(x), float32(y+r), 1, crossColor, true)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
