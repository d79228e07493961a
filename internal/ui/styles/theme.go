// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme names accepted by NewTheme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme holds all the styled components for the grid view.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	renderer *lipgloss.Renderer

	// ==========================================================================
	// GRID STYLES
	// ==========================================================================

	ColumnHeader    lipgloss.Style
	RowHeader       lipgloss.Style
	Corner          lipgloss.Style
	Cell            lipgloss.Style
	Selected        lipgloss.Style
	Hovered         lipgloss.Style
	HoveredSelected lipgloss.Style
	Link            lipgloss.Style
	Separator       lipgloss.Style
	DragTarget      lipgloss.Style
	ResizeHandle    lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusOK     lipgloss.Style
	StatusError  lipgloss.Style
	StatusMuted  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
}

// NewTheme creates a theme for stdout. name is one of ThemeAuto, ThemeDark
// or ThemeLight; anything else is treated as auto.
func NewTheme(name string) *Theme {
	return NewThemeWithRenderer(lipgloss.NewRenderer(os.Stdout), name)
}

// NewThemeWithRenderer creates a theme that renders through r.
func NewThemeWithRenderer(r *lipgloss.Renderer, name string) *Theme {
	switch strings.ToLower(name) {
	case ThemeDark:
		r.SetHasDarkBackground(true)
	case ThemeLight:
		r.SetHasDarkBackground(false)
	}

	profile := r.ColorProfile()
	t := &Theme{
		IsDark:       r.HasDarkBackground(),
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
		renderer:     r,
	}
	t.initStyles()
	return t
}

// Renderer returns the renderer the theme's styles are bound to.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	s := t.renderer.NewStyle

	t.ColumnHeader = s().
		Bold(true).
		Foreground(Cyan).
		Background(SurfaceDim)

	t.RowHeader = s().
		Foreground(TextMuted).
		Background(SurfaceDim).
		Align(lipgloss.Right)

	t.Corner = s().
		Foreground(TextMuted).
		Background(SurfaceDim)

	t.Cell = s().
		Foreground(TextPrimary)

	t.Selected = s().
		Foreground(TextPrimary).
		Background(SelectionBg)

	t.Hovered = s().
		Foreground(TextPrimary).
		Background(HoverBg)

	t.HoveredSelected = s().
		Foreground(TextPrimary).
		Background(HoverSelectedBg).
		Bold(true)

	// Underline keeps links visible without color.
	t.Link = s().
		Foreground(LinkColor).
		Underline(true)

	t.Separator = s().
		Foreground(Overlay)

	t.DragTarget = s().
		Bold(true).
		Foreground(Surface).
		Background(Purple)

	t.ResizeHandle = s().
		Foreground(Amber).
		Bold(true)

	t.StatusBar = s().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.StatusOK = s().
		Foreground(Emerald).
		Bold(true)

	t.StatusError = s().
		Foreground(Rose).
		Bold(true)

	t.StatusMuted = s().
		Foreground(TextMuted)

	t.ShortcutKey = s().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = s().
		Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns, status bar hides shortcuts
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)
