// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package sheet

import (
	"github.com/jeranaias/gridcopy/internal/dataset"
)

// ReloadMsg asks the model to reload its table through the configured loader.
// It is sent by the file watcher when the source changes.
type ReloadMsg struct {
	Path string
}

// tableLoadedMsg carries the result of a reload.
type tableLoadedMsg struct {
	table *dataset.Table
	err   error
}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	ok   bool
	rows int
}

// clearStatusMsg expires a status message. Stale messages are ignored.
type clearStatusMsg struct {
	seq int
}
