package config

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	if settings.TransitionDuration != 1.2 {
		t.Errorf("TransitionDuration: got %v, want 1.2", settings.TransitionDuration)
	}
	if settings.Easing != "easeInOutCubic" {
		t.Errorf("Easing: got %q, want easeInOutCubic", settings.Easing)
	}
	if settings.HoverAmplitude != 0.35 {
		t.Errorf("HoverAmplitude: got %v, want 0.35", settings.HoverAmplitude)
	}
	if settings.HoverSpeed != 1.0 {
		t.Errorf("HoverSpeed: got %v, want 1.0", settings.HoverSpeed)
	}
}

// TestNewSettingsManager_NilManager 测试降级模式（无持久化存储）
func TestNewSettingsManager_NilManager(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm.GetSettings().TransitionDuration != 1.2 {
		t.Error("降级模式应使用默认参数")
	}

	// 降级模式下 Save 不报错
	if err := sm.Save(); err != nil {
		t.Errorf("降级模式 Save() error: %v", err)
	}
}

// newTestGdataManager 在临时目录中创建 gdata 管理器
func newTestGdataManager(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{
		AppName: "flycam_test",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestSettingsManager_SaveLoadRoundTrip 测试保存后重新加载得到相同参数
func TestSettingsManager_SaveLoadRoundTrip(t *testing.T) {
	m := newTestGdataManager(t)

	sm, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm.SetTransitionDuration(2.5)
	sm.SetHoverAmplitude(0.1)
	sm.SetEasing("easeOutCubic")
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新管理器从同一存储加载
	sm2, err := NewSettingsManager(m)
	if err != nil {
		t.Fatalf("NewSettingsManager() reload error: %v", err)
	}

	got := sm2.GetSettings()
	if got.TransitionDuration != 2.5 {
		t.Errorf("TransitionDuration: got %v, want 2.5", got.TransitionDuration)
	}
	if got.HoverAmplitude != 0.1 {
		t.Errorf("HoverAmplitude: got %v, want 0.1", got.HoverAmplitude)
	}
	if got.Easing != "easeOutCubic" {
		t.Errorf("Easing: got %q, want easeOutCubic", got.Easing)
	}
}

// TestSettingsManager_SetterClamping 测试非法值被截断
func TestSettingsManager_SetterClamping(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetTransitionDuration(-1)
	if sm.GetSettings().TransitionDuration != 0 {
		t.Errorf("负过渡时长应截断到 0, got %v", sm.GetSettings().TransitionDuration)
	}

	sm.SetHoverAmplitude(-0.5)
	if sm.GetSettings().HoverAmplitude != 0 {
		t.Errorf("负微动幅度应截断到 0, got %v", sm.GetSettings().HoverAmplitude)
	}
}
