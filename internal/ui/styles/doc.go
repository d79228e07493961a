// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the gridcopy viewer.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection. The background guess can be forced with the "dark" and "light"
theme names.

# Color System (colors.go)

  - Cyan - Column headers
  - Purple - Drag target while reordering columns
  - Emerald / Rose / Amber - Status messages
  - SelectionBg / HoverBg / HoverSelectedBg - Grid highlights

# Theme System (theme.go)

	theme := styles.NewTheme("auto")
	cell := theme.Selected.Render(value)
*/
package styles
