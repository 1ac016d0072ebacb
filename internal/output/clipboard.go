package output

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")

// SystemClipboard copies text to the operating system clipboard.
type SystemClipboard struct{}

// Copy implements Clipboard.
func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}
	return nil
}
