package simulation

import (
	"testing"
	"time"
)

// fakeNow 可手动推进的时间来源
type fakeNow struct {
	current time.Time
}

func (f *fakeNow) now() time.Time { return f.current }

func (f *fakeNow) advance(d time.Duration) { f.current = f.current.Add(d) }

func TestClock_Tick(t *testing.T) {
	src := &fakeNow{current: time.Unix(1000, 0)}
	clock := NewClockWithSource(src.now, 0.1)

	if dt := clock.Tick(); dt != 0 {
		t.Errorf("Expected first tick 0, got %.4f", dt)
	}

	tests := []struct {
		name    string
		advance time.Duration
		want    float64
	}{
		{"正常帧", 16 * time.Millisecond, 0.016},
		{"超过上限被截断", 2 * time.Second, 0.1},
		{"时间未变化", 0, 0},
		{"时间回退", -time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src.advance(tt.advance)
			if dt := clock.Tick(); dt != tt.want {
				t.Errorf("Tick() = %.4f, want %.4f", dt, tt.want)
			}
		})
	}
}

func TestClock_Unlimited(t *testing.T) {
	src := &fakeNow{current: time.Unix(0, 0)}
	clock := NewClockWithSource(src.now, 0)
	clock.Tick()

	src.advance(3 * time.Second)
	if dt := clock.Tick(); dt != 3 {
		t.Errorf("Expected unclamped 3s, got %.4f", dt)
	}
}
