package main

import (
	"flag"
	"log"

	"github.com/gonewx/flycam/pkg/app"
	"github.com/gonewx/flycam/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	trackPath := flag.String("track", "assets/tracks/demo.yaml", "轨迹文件路径")
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		TrackPath: *trackPath,
		Verbose:   *verbose,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("flycam - 飞行镜头预览")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
