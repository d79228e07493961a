// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package hover tracks the cell under the pointer and asks the renderer to
// repaint only the rows whose highlight changed.
package hover
