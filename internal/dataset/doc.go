// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dataset provides the concrete row, column and selection managers
// that back the gridcopy viewer.
//
// # Key Types
//
//   - Table: in-memory records implementing grid.RowManager and grid.ColumnManager
//   - Selection: anchor/focus rectangle implementing grid.SelectionManager
//   - Watcher: fsnotify-based change notification for a source file
//
// # Sources
//
//   - CSV (.csv, .tsv, .txt)
//   - Excel workbooks (.xlsx, .xlsm) via excelize
//   - SQLite databases (.db, .sqlite, .sqlite3) via modernc.org/sqlite
//
// # Usage
//
//	tbl, err := dataset.Load("people.xlsx", dataset.DefaultLoadOptions())
//	if err != nil {
//	    return err
//	}
//	rows := tbl.TakeRows(0, 10)
package dataset
