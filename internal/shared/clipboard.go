package shared

import "github.com/atotto/clipboard"

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the clipboard.
//
// Fails with [ErrServiceUnavailable] when no clipboard utility is available (e.g. headless Linux without xclip).
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrServiceUnavailable
	}
	return clipboard.WriteAll(text)
}
