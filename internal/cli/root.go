// Package cli implements the dexnorm command line interface. Each
// subcommand reads a raw source document from a file argument or stdin
// and prints the normalized result as indented JSON on stdout.
package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dexnorm/internal/config"
	"github.com/example/dexnorm/internal/core"
	"github.com/example/dexnorm/internal/mangadex"
)

var rootCmd = &cobra.Command{
	Use:     "dexnorm",
	Short:   "Normalize raw manga source payloads into canonical records",
	Version: core.Version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// openPayload returns the document source: the named file when an
// argument is given, stdin otherwise.
func openPayload(args []string) io.Reader {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatal(err)
	}
	return bytes.NewReader(data)
}

// newParser builds a parser for the given language codes, falling back
// to the configured set when none are supplied.
func newParser(languages []string) (*mangadex.Parser, error) {
	if len(languages) > 0 {
		return mangadex.New(languages), nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return mangadex.New(cfg.Languages), nil
}

func printJSON(v interface{}) {
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	if err := e.Encode(v); err != nil {
		log.Fatal(err)
	}
}
