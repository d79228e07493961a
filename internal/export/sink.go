// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"

	"github.com/jeranaias/gridcopy/internal/util"
)

// =============================================================================
// CLIPBOARD
// =============================================================================

// Clipboard is a text clipboard backend.
type Clipboard interface {
	// Supported reports whether writes can work at all.
	Supported() bool
	WriteAll(text string) error
}

// SystemClipboard writes through the platform clipboard utilities.
type SystemClipboard struct{}

// Supported reports whether a clipboard utility was found.
func (SystemClipboard) Supported() bool {
	return !clipboard.Unsupported
}

// WriteAll replaces the clipboard contents.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// TerminalClipboard writes through the terminal using OSC 52. It works over
// SSH where no local clipboard utility exists.
type TerminalClipboard struct {
	Output *termenv.Output
}

// Supported always reports true; terminals silently drop unsupported OSC
// sequences.
func (TerminalClipboard) Supported() bool {
	return true
}

// WriteAll sends the text to the terminal clipboard.
func (c TerminalClipboard) WriteAll(text string) error {
	out := c.Output
	if out == nil {
		out = termenv.DefaultOutput()
	}
	out.Copy(text)
	return nil
}

// FocusSuppressor temporarily disables keyboard focus handling that may
// interfere with a clipboard write.
type FocusSuppressor interface {
	// Suppress disables focus handling and returns a function restoring it.
	Suppress() (restore func())
}

type nopSuppressor struct{}

func (nopSuppressor) Suppress() func() { return func() {} }

// ClipboardSink delivers exported text to a clipboard. Writes are best
// effort: failures are logged, never returned.
type ClipboardSink struct {
	clipboard Clipboard
	focus     FocusSuppressor
	logger    *log.Logger
}

// NewClipboardSink creates a sink. A nil focus suppressor is a no-op and a
// nil logger discards warnings.
func NewClipboardSink(cb Clipboard, focus FocusSuppressor, logger *log.Logger) *ClipboardSink {
	if focus == nil {
		focus = nopSuppressor{}
	}
	return &ClipboardSink{clipboard: cb, focus: focus, logger: logger}
}

// Copy writes text and reports whether it reached the clipboard. A failed
// write is retried once with focus handling suppressed.
func (s *ClipboardSink) Copy(text string) bool {
	if s.clipboard == nil || !s.clipboard.Supported() {
		return false
	}
	if err := s.clipboard.WriteAll(text); err == nil {
		return true
	}

	restore := s.focus.Suppress()
	err := s.clipboard.WriteAll(text)
	restore()

	if err != nil {
		s.warnf("clipboard write failed: %v", err)
		return false
	}
	return true
}

func (s *ClipboardSink) warnf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf("Warning: "+format, args...)
	}
}

// =============================================================================
// DOWNLOAD
// =============================================================================

// Payload is a file offered for download.
type Payload struct {
	Filename string
	MimeType string
	Data     []byte
}

// DataURI renders the payload as a data URI.
func (p Payload) DataURI() string {
	return "data:" + p.MimeType + ";charset=utf-8," + url.PathEscape(string(p.Data))
}

// Downloader delivers a payload and returns where it ended up.
type Downloader interface {
	Download(p Payload) (string, error)
}

// FileSink saves downloads into a directory.
type FileSink struct {
	// OutputDir is the directory where files will be saved.
	OutputDir string

	// OpenAfterExport opens the file in the default application.
	OpenAfterExport bool

	logger *log.Logger
}

// NewFileSink creates a file sink from export options.
func NewFileSink(opts *Options, logger *log.Logger) *FileSink {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &FileSink{
		OutputDir:       opts.OutputDir,
		OpenAfterExport: opts.OpenAfterExport,
		logger:          logger,
	}
}

// Download writes the payload atomically and returns the output path.
func (s *FileSink) Download(p Payload) (string, error) {
	dir := s.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(dir, sanitizeFilename(p.Filename))
	if err := util.AtomicWriteFile(outputPath, p.Data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	if s.OpenAfterExport {
		if err := openFile(outputPath); err != nil {
			// Non-fatal - file was still created successfully
			if s.logger != nil {
				s.logger.Printf("Warning: could not open file: %v", err)
			}
		}
	}
	return outputPath, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// sanitizeFilename removes or replaces characters that are invalid in filenames.
func sanitizeFilename(s string) string {
	runes := []rune(s)
	if len(runes) > 100 {
		runes = runes[:100]
	}

	result := make([]rune, 0, len(runes))
	for _, r := range runes {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|':
			result = append(result, '-')
		case r == ' ' || r == '\t':
			result = append(result, '_')
		case r < 32 || r == 127:
			result = append(result, '-')
		default:
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return DefaultFilename
	}
	return string(result)
}

// openFile opens a file in the default application for the OS.
func openFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", `""`, path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
