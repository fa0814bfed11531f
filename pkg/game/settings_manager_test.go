package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时 HOME 下创建 gdata manager
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := OpenSettingsStorage(appName)
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.SoundVolume != 0.6 {
		t.Errorf("SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.ShowDebug {
		t.Error("ShowDebug: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetFullscreen(true)
	if !sm.GetSettings().Fullscreen {
		t.Error("in-memory settings should still be mutable")
	}

	// 降级模式保存不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got %v", err)
	}

	// 降级模式加载恢复默认值
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got %v", err)
	}
	if sm.GetSettings().Fullscreen {
		t.Error("Load() in degraded mode should reset to defaults")
	}
}

// TestSettingsSaveAndLoad 测试设置持久化往返
func TestSettingsSaveAndLoad(t *testing.T) {
	manager := openTestStorage(t, "solidsorter_settings_test")

	sm := NewSettingsManager(manager)
	sm.SetSoundEnabled(false)
	sm.SetSoundVolume(0.25)
	sm.SetShowDebug(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(manager)
	settings := reloaded.GetSettings()
	if settings.SoundEnabled {
		t.Error("SoundEnabled should persist as false")
	}
	if settings.SoundVolume != 0.25 {
		t.Errorf("SoundVolume: got %v, want 0.25", settings.SoundVolume)
	}
	if !settings.ShowDebug {
		t.Error("ShowDebug should persist as true")
	}
}

// TestLoadCorruptedSettings 测试损坏的设置文件降级为默认值
func TestLoadCorruptedSettings(t *testing.T) {
	manager := openTestStorage(t, "solidsorter_settings_corrupt")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [")); err != nil {
		t.Fatalf("failed to seed corrupted data: %v", err)
	}

	sm := NewSettingsManager(manager)
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupted data")
	}
	if sm.GetSettings().SoundVolume != DefaultSettings().SoundVolume {
		t.Error("corrupted settings should fall back to defaults")
	}
}

// TestClampVolume 测试音量边界
func TestClampVolume(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"低于下限", -0.5, 0},
		{"区间内", 0.4, 0.4},
		{"高于上限", 1.7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampVolume(tt.input); got != tt.want {
				t.Errorf("clampVolume(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
