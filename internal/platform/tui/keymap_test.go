package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarpenko/snake-tui/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"lowercase x quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionQuit},
		{"uppercase X quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'X'}}, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"lowercase r restarts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart},
		{"uppercase R restarts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'R'}}, core.ActionRestart},
		{"unrecognized key ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone},
		{"space ignored", tea.KeyMsg{Type: tea.KeySpace}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	isQuit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame)
	if isQuit {
		t.Error("Arrow key should not report quit")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("Frame should contain the mapped action")
	}

	isQuit = km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, &frame)
	if !isQuit {
		t.Error("x should report quit")
	}
	if !frame.Has(core.ActionQuit) {
		t.Error("Frame should contain the quit action")
	}

	// Unrecognized keys leave the frame untouched
	before := len(frame.Actions)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, &frame)
	if len(frame.Actions) != before {
		t.Error("Unrecognized key should not add actions")
	}
}
