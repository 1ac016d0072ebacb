package main

import (
	"os"

	"github.com/vaultpass/passgen/internal/cli"
	"github.com/vaultpass/passgen/internal/output"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], cli.Env{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Clipboard:  output.SystemClipboard{},
		IsTerminal: output.StdoutIsTerminal,
	}))
}
