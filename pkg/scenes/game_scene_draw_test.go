package scenes

import (
	"math"
	"testing"

	"github.com/decker502/solidsorter/pkg/config"
)

// TestLaneOffsetForZ 测试世界 z 到屏幕行号的换算
func TestLaneOffsetForZ(t *testing.T) {
	cfg := config.DefaultTuning()

	tests := []struct {
		name string
		z    float64
		want float64
	}{
		{"第一条传送带", -10, 0},
		{"中间传送带", 0, 1},
		{"最后一条传送带", 10, 2},
		{"平滑途中", -5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := laneOffsetForZ(cfg, tt.z)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("laneOffsetForZ(%v) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}
}

// TestLaneOffsetForZDegenerate 测试所有传送带 z 相同时不除零
func TestLaneOffsetForZDegenerate(t *testing.T) {
	cfg := config.DefaultTuning()
	cfg.Lanes.Z = []float64{3, 3, 3}

	if got := laneOffsetForZ(cfg, 3); got != 0 {
		t.Errorf("laneOffsetForZ() = %v, want 0", got)
	}
}

// TestTextWidth 测试调试字体文本宽度
func TestTextWidth(t *testing.T) {
	if got := textWidth("SCORE", 2); got != 60 {
		t.Errorf("textWidth() = %v, want 60", got)
	}
}

// TestShade 测试颜色亮度调整不溢出
func TestShade(t *testing.T) {
	got := shade(config.BinColor, 2)
	if got.B != 0xff || got.G != 0xff || got.A != config.BinColor.A {
		t.Errorf("shade() = %+v", got)
	}
}

// TestParaboloidOutline 测试抛物面轮廓点数和对称性
func TestParaboloidOutline(t *testing.T) {
	points := paraboloidOutline(100, 50, 10)
	if len(points) != 22 {
		t.Fatalf("len(points) = %d, want 22", len(points))
	}
	first, last := points[1], points[len(points)-1]
	if math.Abs(first-last) > 1e-9 {
		t.Errorf("outline not symmetric: %v vs %v", first, last)
	}
}
