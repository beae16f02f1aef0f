package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/pl0c/internal/parser"
	"github.com/cwbudde/pl0c/internal/symboldump"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var symbolsAsYAML bool

var symbolsCmd = &cobra.Command{
	Use:   "symbols [file]",
	Short: "Parse a PL/0 file and dump its symbol table",
	Long: `Parse a PL/0 program and dump the resulting name list — every
procedure's constants, variables, and nested procedures — as JSON
(or, with --yaml, YAML).`,
	Args: cobra.ExactArgs(1),
	RunE: runSymbols,
}

func init() {
	rootCmd.AddCommand(symbolsCmd)

	symbolsCmd.Flags().BoolVar(&symbolsAsYAML, "yaml", false, "dump as YAML instead of JSON")
}

func runSymbols(_ *cobra.Command, args []string) error {
	filename := args[0]
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}
	input := string(data)

	out := &seekBuffer{}
	p, err := parser.New(input, filename, out)
	if err != nil {
		return fmt.Errorf("failed to set up parser: %w", err)
	}
	p.SetMaxArrayLength(cfg.MaxArrayLength)

	if err := p.Parse(); err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	doc, err := symboldump.JSON(p.Symbols())
	if err != nil {
		return fmt.Errorf("failed to build symbol dump: %w", err)
	}

	if !symbolsAsYAML {
		fmt.Println(doc)
		return nil
	}

	var generic interface{}
	if err := yaml.Unmarshal([]byte(doc), &generic); err != nil {
		return fmt.Errorf("failed to convert symbol dump to YAML: %w", err)
	}
	asYAML, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to marshal symbol dump to YAML: %w", err)
	}
	fmt.Print(string(asYAML))
	return nil
}
