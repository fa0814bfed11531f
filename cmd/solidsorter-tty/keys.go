package main

import (
	"github.com/decker502/solidsorter/pkg/simulation"
	"github.com/gdamore/tcell/v2"
)

// mapKey 把终端按键映射为模拟按键
func mapKey(key tcell.Key, r rune) (simulation.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return simulation.KeyUp, true
	case tcell.KeyDown:
		return simulation.KeyDown, true
	case tcell.KeyEnter:
		return simulation.KeyConfirm, true
	case tcell.KeyRune:
		switch r {
		case ' ':
			return simulation.KeySpace, true
		case 'w', 'W':
			return simulation.KeyUp, true
		case 's', 'S':
			return simulation.KeyDown, true
		case 'r', 'R':
			return simulation.KeyRetry, true
		}
	}
	return 0, false
}
