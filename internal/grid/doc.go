// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package grid defines the value types shared by the gridcopy core.
//
// A grid is split into four regions (row headers, column headers, body and
// the top-left corner). Cells are addressed by Coordinate, rectangular spans
// by Range. Columns and rows are owned by external managers; this package
// only declares the interfaces the core consumes.
//
// # Key Types
//
//   - Region: closed enumeration of grid regions
//   - Coordinate: (row, column, region) value with structural equality
//   - Range: inclusive rectangular span, normalized before use
//   - Column: descriptor with an injected FormatFunc strategy
//   - CellFormatConfig: input record handed to a FormatFunc
//
// # Collaborators
//
//   - RowManager, ColumnManager: dataset access
//   - SelectionManager: active row/column ranges
//   - Renderer: partial repaint requests
package grid
