// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sheet

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the grid.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	ExtendUp    key.Binding
	ExtendDown  key.Binding
	ExtendLeft  key.Binding
	ExtendRight key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	SelectAll   key.Binding
	Clear       key.Binding
	Copy        key.Binding
	Export      key.Binding
	ExportAll   key.Binding
	Widen       key.Binding
	Narrow      key.Binding
	MoveLeft    key.Binding
	MoveRight   key.Binding
	Reload      key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings with vim-like alternatives.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move right"),
		),
		ExtendUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("S-up/K", "extend up"),
		),
		ExtendDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("S-down/J", "extend down"),
		),
		ExtendLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("S-left/H", "extend left"),
		),
		ExtendRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("S-right/L", "extend right"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp/C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn/C-d", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home/g", "first row"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("End/G", "last row"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("C-a", "select all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "clear selection"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export selection"),
		),
		ExportAll: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export all"),
		),
		Widen: key.NewBinding(
			key.WithKeys("+", ">"),
			key.WithHelp("+", "widen column"),
		),
		Narrow: key.NewBinding(
			key.WithKeys("-", "<"),
			key.WithHelp("-", "narrow column"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "move column left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "move column right"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Export, k.ExportAll, k.SelectAll, k.Quit}
}
