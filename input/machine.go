package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// Machine resolves terminal events to intents for the visible view
type Machine struct {
	table *KeyTable
}

// NewMachine creates a machine with the default bindings; table nil uses DefaultKeyTable
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table}
}

// Process converts a tcell event to an intent, nil when the event is ignored
func (m *Machine) Process(ev tcell.Event, view core.View) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.ProcessKey(ev.Key(), ev.Rune(), view)
	case *tcell.EventResize:
		w, h := ev.Size()
		return &Intent{Type: IntentResize, Width: w, Height: h}
	}
	return nil
}

// ProcessKey resolves a key press. Global bindings win over view bindings
func (m *Machine) ProcessKey(key tcell.Key, ch rune, view core.View) *Intent {
	if entry, ok := m.table.Global.lookup(key, ch); ok {
		return buildIntent(entry)
	}
	if keys, ok := m.table.Views[view]; ok {
		if entry, ok := keys.lookup(key, ch); ok {
			return buildIntent(entry)
		}
	}
	return nil
}

func buildIntent(entry KeyEntry) *Intent {
	if entry.Intent == IntentNone {
		return nil
	}
	return &Intent{Type: entry.Intent, Direction: entry.Direction}
}
