// verify_track.go - 轨迹播放验证程序
// 无窗口运行播放控制器若干帧，检查姿态有限性、循环回绕与关键帧跳转
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/gonewx/flycam/internal/track"
	"github.com/gonewx/flycam/pkg/camera"
	"github.com/gonewx/flycam/pkg/geom"
	"github.com/gonewx/flycam/pkg/timeline"
)

// ========== 验证报告结构 ==========

type ValidationReport struct {
	TestName string
	Passed   bool
	Message  string
}

var validationReports []ValidationReport

func addReport(testName string, passed bool, message string) {
	validationReports = append(validationReports, ValidationReport{
		TestName: testName,
		Passed:   passed,
		Message:  message,
	})
	status := "✗ FAIL"
	if passed {
		status = "✓ PASS"
	}
	log.Printf("%s | %-30s | %s", status, testName, message)
}

// nullSink 丢弃指令但记录最近姿态的镜头桩
type nullSink struct {
	calls    int
	position geom.Vec3
	target   geom.Vec3
	finite   bool
}

func (s *nullSink) Look(position, target geom.Vec3) {
	s.calls++
	s.position = position
	s.target = target
	s.finite = position.IsFinite() && target.IsFinite()
}

func main() {
	trackPath := flag.String("track", "assets/tracks/demo.yaml", "轨迹文件路径")
	frames := flag.Int("frames", 1800, "模拟帧数")
	flag.Parse()

	log.SetFlags(0)

	tr, err := track.ParseTrackFile(*trackPath)
	if err != nil {
		log.Fatalf("轨迹加载失败: %v", err)
	}
	addReport("轨迹解析", true, fmt.Sprintf("%d 个关键帧, 时长 %.1fs, 循环 %s",
		len(tr.Keyframes), tr.Duration, tr.Loop))

	tl, err := timeline.New(tr)
	if err != nil {
		log.Fatalf("时间线构建失败: %v", err)
	}

	c := camera.New(tl, camera.Options{TransitionDuration: 1.0})
	sink := &nullSink{}

	// 正常播放若干帧，每帧必须恰好一条有限 Look
	const dt = 1.0 / 60.0
	allFinite := true
	for i := 0; i < *frames; i++ {
		before := sink.calls
		c.Update(dt, nil, sink, false)
		if sink.calls != before+1 || !sink.finite {
			allFinite = false
			break
		}
	}
	addReport("连续播放", allFinite,
		fmt.Sprintf("%d 帧, 最终机位 (%.2f, %.2f, %.2f)",
			*frames, sink.position.X, sink.position.Y, sink.position.Z))

	// 暂停若干帧：时间线冻结，微动偏移有界
	frozen := tl.Time()
	for i := 0; i < 120; i++ {
		c.Update(dt, nil, sink, true)
	}
	pausedOK := tl.Time() == frozen && sink.finite
	addReport("暂停冻结", pausedOK, fmt.Sprintf("时间线停在 %.2fs", tl.Time()))

	// 遍历一圈关键帧跳转，每次过渡推进到完成
	navOK := true
	for range tr.Keyframes {
		c.NextKeyframe()
		for i := 0; i < 180; i++ {
			c.Update(dt, nil, sink, false)
		}
		if c.Mode() != camera.ModePlaying || !sink.finite {
			navOK = false
			break
		}
	}
	addReport("关键帧跳转", navOK, fmt.Sprintf("跳转 %d 次后状态 %s", len(tr.Keyframes), c.Mode()))

	// 大步长帧抖动：dt 远大于轨迹时长也不得发散
	c.Update(tr.Duration*10, nil, sink, false)
	hitchOK := sink.finite && !math.IsNaN(tl.Time())
	addReport("帧抖动容忍", hitchOK, fmt.Sprintf("dt=%.0fs 后 t=%.2fs", tr.Duration*10, tl.Time()))

	// ========== 汇总 ==========
	passed := 0
	for _, r := range validationReports {
		if r.Passed {
			passed++
		}
	}
	log.Printf("")
	log.Printf("验证完成: %d/%d 通过", passed, len(validationReports))
	if passed != len(validationReports) {
		os.Exit(1)
	}
}
