package audio

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate 提示音采样率
const SampleRate = beep.SampleRate(48000)

// fadeSamples 每个音符首尾的淡入淡出采样数，避免爆音
const fadeSamples = 240

// NewCueStreamer 合成提示音
//
// 参数：
//   - cue: 提示音类型
//   - sr: 采样率
//   - volume: 音量 0.0 ~ 1.0
//
// 返回的 Streamer 在提示音结束后停止。
func NewCueStreamer(cue Cue, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", int(cue))
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s tone: %w", cue, err)
		}
		samples := sr.N(n.duration)
		parts = append(parts, &fade{
			Streamer: beep.Take(samples, tone),
			total:    samples,
		})
	}

	return newVolume(beep.Seq(parts...), volume), nil
}

// RenderPCM 将提示音渲染为 16 位小端立体声 PCM
//
// 用于不直接使用 beep speaker 的宿主（Ebitengine 音频上下文）。
func RenderPCM(cue Cue, sr beep.SampleRate, volume float64) ([]byte, error) {
	streamer, err := NewCueStreamer(cue, sr, volume)
	if err != nil {
		return nil, err
	}

	total := sr.N(cue.Duration())
	pcm := make([]byte, 0, total*4)
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(toInt16(buf[i][0])))
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(toInt16(buf[i][1])))
		}
		if !ok {
			break
		}
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", cue, err)
	}
	return pcm, nil
}

// toInt16 将 [-1, 1] 采样转换为 int16
func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// newVolume 按线性音量包装 effects.Volume
// math.Log2(0) 为 -Inf，音量为 0 时直接静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(vol, 1)), Silent: false}
}

// fade 对音符首尾做线性淡入淡出
type fade struct {
	beep.Streamer
	pos   int
	total int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.pos < fadeSamples {
			gain = float64(f.pos) / fadeSamples
		}
		if remaining := f.total - f.pos; remaining < fadeSamples {
			gain = math.Min(gain, float64(remaining)/fadeSamples)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}
