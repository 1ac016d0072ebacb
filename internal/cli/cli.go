// Package cli implements the passgen command line interface.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/output"
)

// Name is the program name shown in usage and version output.
const Name = "passgen"

// Version is overridden at build time with -ldflags "-X".
var Version = "0.2.0"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var (
	errPassphraseExclusive = errors.New("--passphrase cannot be combined with --length or --no-<category> flags")
	errWordsWithoutPhrase  = errors.New("--words requires --passphrase")
	errHashWithCopy        = errors.New("--hash cannot be combined with --copy")
)

// Env holds the process facilities Run talks to.
type Env struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Clipboard  output.Clipboard
	IsTerminal func() bool
}

type options struct {
	length      int
	noUppercase bool
	noLowercase bool
	noDigits    bool
	noSymbols   bool
	copy        bool
	number      int
	passphrase  bool
	words       int
	noColor     bool
	hash        bool
	version     bool

	set map[string]bool
}

func (o options) passwordConfig() crypto.PasswordConfig {
	return crypto.PasswordConfig{
		Length:    o.length,
		Uppercase: !o.noUppercase,
		Lowercase: !o.noLowercase,
		Digits:    !o.noDigits,
		Symbols:   !o.noSymbols,
	}
}

func (o options) passphraseConfig() crypto.PassphraseConfig {
	return crypto.PassphraseConfig{WordCount: o.words}
}

func (o options) anySet(names ...string) bool {
	for _, n := range names {
		if o.set[n] {
			return true
		}
	}
	return false
}

// Run executes passgen with args (without the program name) and returns the
// process exit code.
func Run(args []string, env Env) int {
	opts, err := parseArgs(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprint(env.Stdout, usage())
		return exitOK
	}
	if err != nil {
		fmt.Fprint(env.Stderr, usage())
		return exitUsage
	}

	if opts.version {
		fmt.Fprintf(env.Stdout, "%s %s\n", Name, Version)
		return exitOK
	}

	if err := run(opts, env); err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

func run(opts options, env Env) error {
	if err := crypto.ValidateGenerationCount(opts.number); err != nil {
		return err
	}
	if err := checkCombinations(opts); err != nil {
		return err
	}

	colorizer := output.NewColorizer(output.ShouldEnableColor(opts.noColor, env.IsTerminal))

	var (
		generate func() string
		colorize func(string) string
	)
	if opts.passphrase {
		gen, err := crypto.NewPassphraseGenerator(opts.passphraseConfig())
		if err != nil {
			return err
		}
		generate, colorize = gen.Generate, colorizer.Passphrase
	} else {
		gen, err := crypto.NewPasswordGenerator(opts.passwordConfig())
		if err != nil {
			return err
		}
		generate, colorize = gen.Generate, colorizer.Password
	}

	if opts.hash {
		return output.Emit(env.Stdout, opts.number, withHash(generate, colorize), output.EmitOptions{})
	}

	next := func() (string, error) { return generate(), nil }
	return output.Emit(env.Stdout, opts.number, next, output.EmitOptions{
		Copy:      opts.copy,
		Clipboard: env.Clipboard,
		Colorize:  colorize,
	})
}

func checkCombinations(opts options) error {
	if opts.passphrase && opts.anySet("length", "l", "no-uppercase", "no-lowercase", "no-digits", "no-symbols") {
		return errPassphraseExclusive
	}
	if !opts.passphrase && opts.anySet("words", "w") {
		return errWordsWithoutPhrase
	}
	if opts.hash && opts.copy {
		return errHashWithCopy
	}
	return nil
}

// withHash pairs every generated secret with its Argon2id hash, separated by
// a tab.
func withHash(generate func() string, colorize func(string) string) func() (string, error) {
	return func() (string, error) {
		secret := generate()
		h, err := crypto.HashSecret(secret)
		if err != nil {
			return "", fmt.Errorf("hashing secret: %w", err)
		}
		return colorize(secret) + "\t" + h, nil
	}
}
