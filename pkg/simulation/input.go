package simulation

import "github.com/decker502/solidsorter/pkg/game"

// Key 与宿主无关的按键
// 窗口宿主和终端宿主把各自的按键事件映射到这些值
type Key int

const (
	KeySpace   Key = iota // 空格：开始 / 暂停
	KeyConfirm            // 回车：开始 / 重新开局
	KeyRetry              // R：重新开局
	KeyUp                 // ↑ / W
	KeyDown               // ↓ / S
)

// Command 模拟的输入命令
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandTogglePause
	CommandRestart
	CommandMoveUp
	CommandMoveDown
)

// String 返回命令名称
func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandTogglePause:
		return "pause"
	case CommandRestart:
		return "restart"
	case CommandMoveUp:
		return "up"
	case CommandMoveDown:
		return "down"
	default:
		return "none"
	}
}

// CommandForKey 根据当前状态把按键解析为命令
//
//   - 空格：未开始时开始，进行中切换暂停
//   - 回车：未开始时开始，结束后重新开局
//   - R：结束后重新开局
//   - 上下：移动接取箱（是否生效由 Simulation 判断）
func CommandForKey(key Key, state game.GameState) Command {
	switch key {
	case KeySpace:
		if !state.HasStarted {
			return CommandStart
		}
		if !state.GameOver {
			return CommandTogglePause
		}
	case KeyConfirm:
		if !state.HasStarted {
			return CommandStart
		}
		if state.GameOver {
			return CommandRestart
		}
	case KeyRetry:
		if state.GameOver {
			return CommandRestart
		}
	case KeyUp:
		return CommandMoveUp
	case KeyDown:
		return CommandMoveDown
	}
	return CommandNone
}

// Apply 执行命令
//
// 返回：
//   - bool: 命令是否改变了模拟
func (s *Simulation) Apply(cmd Command) bool {
	switch cmd {
	case CommandStart:
		return s.Start()
	case CommandTogglePause:
		return s.TogglePause()
	case CommandRestart:
		s.Restart()
		return true
	case CommandMoveUp:
		return s.MoveUp()
	case CommandMoveDown:
		return s.MoveDown()
	default:
		return false
	}
}

// HandleKey 解析并执行按键
func (s *Simulation) HandleKey(key Key) Command {
	cmd := CommandForKey(key, s.state)
	if cmd != CommandNone {
		s.Apply(cmd)
	}
	return cmd
}
