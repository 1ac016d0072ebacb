// Package output writes generated secrets to the terminal or the system clipboard.
package output

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrEmptyOutput = errors.New("nothing to output")
	ErrClipboard   = errors.New("clipboard error")
)

// CopiedMessage is printed after a secret was placed on the clipboard.
const CopiedMessage = "Copied to clipboard!"

// Clipboard places text on a clipboard.
type Clipboard interface {
	Copy(text string) error
}

// EmitOptions controls how Emit delivers generated items.
type EmitOptions struct {
	// Copy sends only the last item to Clipboard instead of printing every item.
	Copy      bool
	Clipboard Clipboard
	// Colorize formats an item for display; nil prints items unchanged.
	Colorize func(string) string
}

// Emit writes n items one per line, calling next for each item just before
// it is written, so memory use does not grow with n. With opts.Copy nothing is
// printed except CopiedMessage and only the final item is produced and copied;
// items are independent draws, so the earlier ones are never generated.
func Emit(w io.Writer, n int, next func() (string, error), opts EmitOptions) error {
	if n < 1 {
		return ErrEmptyOutput
	}

	if opts.Copy {
		if opts.Clipboard == nil {
			return fmt.Errorf("%w: no clipboard configured", ErrClipboard)
		}
		last, err := next()
		if err != nil {
			return err
		}
		if err := opts.Clipboard.Copy(last); err != nil {
			return fmt.Errorf("%w: %w", ErrClipboard, err)
		}
		_, err = fmt.Fprintln(w, CopiedMessage)
		return err
	}

	colorize := opts.Colorize
	if colorize == nil {
		colorize = func(s string) string { return s }
	}
	for i := 0; i < n; i++ {
		item, err := next()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, colorize(item)); err != nil {
			return err
		}
	}
	return nil
}

