package app

import (
	"log"

	sfx "github.com/decker502/solidsorter/pkg/audio"
	"github.com/decker502/solidsorter/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// toneSampleRate Ebitengine 音频上下文采样率，与合成采样率一致
const toneSampleRate = sfx.SampleRate

// ToneBank 通过 Ebitengine 播放合成提示音
// 每种提示音首次播放时渲染为 PCM 并缓存播放器
type ToneBank struct {
	audioContext    *audio.Context
	settingsManager *game.SettingsManager
	players         map[sfx.Cue]*audio.Player
}

// NewToneBank 创建提示音库
//
// 参数：
//   - audioContext: 音频上下文，为 nil 时所有播放请求都被忽略
//   - settingsManager: 设置管理器，控制开关和音量
func NewToneBank(audioContext *audio.Context, settingsManager *game.SettingsManager) *ToneBank {
	return &ToneBank{
		audioContext:    audioContext,
		settingsManager: settingsManager,
		players:         make(map[sfx.Cue]*audio.Player),
	}
}

// Play 播放提示音
func (tb *ToneBank) Play(cue sfx.Cue) {
	tb.PlayCue(cue)
}

// PlayCue 播放提示音
//
// 返回：
//   - bool: 是否成功播放
func (tb *ToneBank) PlayCue(cue sfx.Cue) bool {
	settings := tb.settingsManager.GetSettings()
	if !settings.SoundEnabled {
		return false
	}

	player := tb.getPlayer(cue)
	if player == nil {
		return false
	}

	player.SetVolume(settings.SoundVolume)

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[ToneBank] Warning: Failed to rewind cue %s: %v", cue, err)
	}
	player.Play()
	return true
}

// getPlayer 获取或创建提示音播放器
func (tb *ToneBank) getPlayer(cue sfx.Cue) *audio.Player {
	if player, ok := tb.players[cue]; ok {
		return player
	}
	if tb.audioContext == nil {
		return nil
	}

	// 满音量渲染，播放时由播放器控制音量
	pcm, err := sfx.RenderPCM(cue, toneSampleRate, 1.0)
	if err != nil {
		log.Printf("[ToneBank] Warning: Failed to render cue %s: %v", cue, err)
		return nil
	}

	player := tb.audioContext.NewPlayerFromBytes(pcm)
	tb.players[cue] = player
	log.Printf("[ToneBank] Rendered cue %s (%d bytes)", cue, len(pcm))
	return player
}
