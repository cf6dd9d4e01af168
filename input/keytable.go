package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// KeyEntry is what a key resolves to
type KeyEntry struct {
	Intent    IntentType
	Direction core.Direction
}

// Keys binds special keys and runes
type Keys struct {
	SpecialKeys map[tcell.Key]KeyEntry
	RuneKeys    map[rune]KeyEntry
}

func (k Keys) lookup(key tcell.Key, ch rune) (KeyEntry, bool) {
	if key == tcell.KeyRune {
		entry, ok := k.RuneKeys[ch]
		return entry, ok
	}
	entry, ok := k.SpecialKeys[key]
	return entry, ok
}

// KeyTable holds bindings checked first for every view, then per view
type KeyTable struct {
	Global Keys
	Views  map[core.View]Keys
}

func steer(d core.Direction) KeyEntry {
	return KeyEntry{Intent: IntentSteer, Direction: d}
}

func intent(t IntentType) KeyEntry {
	return KeyEntry{Intent: t}
}

// DefaultKeyTable returns the standard bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Global: Keys{
			SpecialKeys: map[tcell.Key]KeyEntry{
				tcell.KeyCtrlC: intent(IntentQuit),
				tcell.KeyCtrlS: intent(IntentToggleSound),
			},
			RuneKeys: map[rune]KeyEntry{},
		},
		Views: map[core.View]Keys{
			core.ViewTitle: {
				SpecialKeys: map[tcell.Key]KeyEntry{
					tcell.KeyEnter: intent(IntentInstructions),
				},
				RuneKeys: map[rune]KeyEntry{
					'p': intent(IntentInstructions),
					'i': intent(IntentInstructions),
					'q': intent(IntentQuit),
				},
			},
			core.ViewInstructions: {
				SpecialKeys: map[tcell.Key]KeyEntry{
					tcell.KeyEnter:  intent(IntentStart),
					tcell.KeyEscape: intent(IntentMenu),
				},
				RuneKeys: map[rune]KeyEntry{
					'p': intent(IntentStart),
					'q': intent(IntentQuit),
				},
			},
			core.ViewGame: {
				SpecialKeys: map[tcell.Key]KeyEntry{
					tcell.KeyUp:     steer(core.DirUp),
					tcell.KeyDown:   steer(core.DirDown),
					tcell.KeyLeft:   steer(core.DirLeft),
					tcell.KeyRight:  steer(core.DirRight),
					tcell.KeyEscape: intent(IntentAbort),
				},
				RuneKeys: map[rune]KeyEntry{
					'k': steer(core.DirUp),
					'j': steer(core.DirDown),
					'h': steer(core.DirLeft),
					'l': steer(core.DirRight),
					' ': intent(IntentPause),
				},
			},
			core.ViewGameOver: {
				SpecialKeys: map[tcell.Key]KeyEntry{
					tcell.KeyEnter:  intent(IntentRestart),
					tcell.KeyEscape: intent(IntentMenu),
				},
				RuneKeys: map[rune]KeyEntry{
					'r': intent(IntentRestart),
					'm': intent(IntentMenu),
					'q': intent(IntentQuit),
				},
			},
		},
	}
}
