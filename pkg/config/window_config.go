package config

// 预览窗口逻辑尺寸
const (
	WindowWidth  = 960
	WindowHeight = 540
)
