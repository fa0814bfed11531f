package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// CuePlayer 通过系统扬声器播放提示音
//
// 所有提示音混入同一个 beep.Mixer；speaker 在 Initialize 时启动一次。
// 初始化失败时 CuePlayer 保持静音，游戏照常运行。
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	volume      float64
}

// NewCuePlayer 创建提示音播放器
func NewCuePlayer(enabled bool, volume float64) *CuePlayer {
	return &CuePlayer{
		mixer:   &beep.Mixer{},
		enabled: enabled,
		volume:  volume,
	}
}

// Initialize 初始化扬声器
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("[CuePlayer] Speaker initialized at %d Hz", SampleRate)
	return nil
}

// Play 播放提示音（未初始化或已静音时忽略）
func (p *CuePlayer) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.enabled {
		return
	}

	streamer, err := NewCueStreamer(cue, SampleRate, p.volume)
	if err != nil {
		log.Printf("[CuePlayer] Warning: %v", err)
		return
	}

	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// SetEnabled 开关提示音
func (p *CuePlayer) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// Enabled 是否开启提示音
func (p *CuePlayer) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// SetVolume 设置音量（对之后播放的提示音生效）
func (p *CuePlayer) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = volume
}

// Close 停止所有提示音
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
