package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vaultpass/passgen/internal/crypto"
)

// parseArgs parses args into options. Both -name and --name spellings are
// accepted, and short aliases share the destination of their long flag.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet(Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	fs.IntVar(&o.length, "length", crypto.DefaultLength, "length of the password")
	fs.IntVar(&o.length, "l", crypto.DefaultLength, "length of the password (short)")
	fs.BoolVar(&o.noUppercase, "no-uppercase", false, "exclude uppercase letters")
	fs.BoolVar(&o.noLowercase, "no-lowercase", false, "exclude lowercase letters")
	fs.BoolVar(&o.noDigits, "no-digits", false, "exclude digits")
	fs.BoolVar(&o.noSymbols, "no-symbols", false, "exclude symbols")
	fs.BoolVar(&o.copy, "copy", false, "copy the last result to the clipboard instead of printing")
	fs.BoolVar(&o.copy, "c", false, "copy to clipboard (short)")
	fs.IntVar(&o.number, "number", 1, "number of results to generate")
	fs.IntVar(&o.number, "n", 1, "number of results (short)")
	fs.BoolVar(&o.passphrase, "passphrase", false, "generate a passphrase instead of a password")
	fs.IntVar(&o.words, "words", crypto.DefaultWordCount, "number of words in a passphrase")
	fs.IntVar(&o.words, "w", crypto.DefaultWordCount, "number of words (short)")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&o.hash, "hash", false, "print an Argon2id hash next to each result")
	fs.BoolVar(&o.version, "version", false, "print version information")
	fs.BoolVar(&o.version, "V", false, "print version information (short)")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected argument: %s\n", fs.Arg(0))
		return o, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		o.set[f.Name] = true
	})

	return o, nil
}

func usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "A secure command-line password generator\n\n")
	fmt.Fprintf(&b, "Usage: %s [OPTIONS]\n\n", Name)
	b.WriteString("Options:\n")
	rows := [][2]string{
		{"-l, --length <N>", fmt.Sprintf("Length of the password [default: %d, max: %d]", crypto.DefaultLength, crypto.MaxLength)},
		{"    --no-uppercase", "Exclude uppercase letters"},
		{"    --no-lowercase", "Exclude lowercase letters"},
		{"    --no-digits", "Exclude digits"},
		{"    --no-symbols", "Exclude symbols"},
		{"-c, --copy", "Copy the last result to the clipboard instead of printing"},
		{"-n, --number <N>", "Number of results to generate [default: 1]"},
		{"    --passphrase", "Generate a passphrase instead of a password"},
		{"-w, --words <N>", fmt.Sprintf("Words per passphrase [default: %d, max: %d]", crypto.DefaultWordCount, crypto.MaxWordCount)},
		{"    --no-color", "Disable colored output"},
		{"    --hash", "Print an Argon2id hash next to each result"},
		{"-h, --help", "Print help"},
		{"-V, --version", "Print version"},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-22s %s\n", r[0], r[1])
	}
	return b.String()
}
