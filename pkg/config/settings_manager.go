// Package config 管理飞行镜头的播放可调参数
//
// 参数通过 gdata 跨平台存储以 YAML 形式持久化；存储不可用时
// 降级为纯内存模式，使用默认参数。
package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PlaybackSettings 播放可调参数
// 这些参数是全局的，不绑定到具体轨迹
type PlaybackSettings struct {
	// 过渡设置
	TransitionDuration float64 `yaml:"transitionDuration"` // 关键帧过渡时长（秒）
	Easing             string  `yaml:"easing"`             // 缓动函数名称

	// 悬浮微动设置
	HoverAmplitude float64 `yaml:"hoverAmplitude"` // 微动最大幅度（世界单位）
	HoverSpeed     float64 `yaml:"hoverSpeed"`     // 微动速率倍数
}

// DefaultSettings 返回默认参数
func DefaultSettings() *PlaybackSettings {
	return &PlaybackSettings{
		TransitionDuration: 1.2,
		Easing:             "easeInOutCubic",
		HoverAmplitude:     0.35,
		HoverSpeed:         1.0,
	}
}

// SettingsManager 参数管理器
// 负责播放参数的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager    // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *PlaybackSettings // 当前参数
}

// 存储路径常量
const (
	settingsObject   = "playback"
	settingsProperty = "settings"
)

// NewSettingsManager 创建参数管理器实例
//
// 参数：
//   - gdataManager: gdata 存储管理器，可为 nil（降级模式，仅内存参数）
//
// 返回：
//   - *SettingsManager: 管理器实例
//   - error: 加载失败时返回错误（不影响创建，会回落到默认参数）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认参数
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载参数
//
// gdataManager 为 nil 或存储中不存在参数时，使用默认参数
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded PlaybackSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存参数到 gdata
//
// gdataManager 为 nil 时返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前参数
func (sm *SettingsManager) GetSettings() *PlaybackSettings {
	return sm.settings
}

// SetTransitionDuration 设置过渡时长
// 仅修改内存中的参数，需调用 Save() 持久化
func (sm *SettingsManager) SetTransitionDuration(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	sm.settings.TransitionDuration = seconds
}

// SetHoverAmplitude 设置微动幅度
// 仅修改内存中的参数，需调用 Save() 持久化
func (sm *SettingsManager) SetHoverAmplitude(amplitude float64) {
	if amplitude < 0 {
		amplitude = 0
	}
	sm.settings.HoverAmplitude = amplitude
}

// SetEasing 设置缓动函数名称
// 仅修改内存中的参数，需调用 Save() 持久化
func (sm *SettingsManager) SetEasing(name string) {
	sm.settings.Easing = name
}
