// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sheet provides the interactive terminal grid for gridcopy.
//
// The Model is a Bubble Tea model that draws the visible window of a
// dataset.Table, keeps a rectangular selection, and exports it through an
// export.Service. Only rows invalidated through the grid.Renderer interface
// (or by scrolling, resizing and selection changes) are re-rendered.
//
// # Mouse
//
//   - Motion: hover tracking (row highlight, link hint in the status bar)
//   - Press and drag in the body: select a rectangle
//   - Press on a header border and drag: resize the column
//   - Press on a header and drag: reorder columns
//   - Press on the index header: select everything
//   - Wheel: scroll
//
// # Keys
//
// See DefaultKeyMap.
package sheet
