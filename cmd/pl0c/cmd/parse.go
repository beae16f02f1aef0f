package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/pl0c/internal/astdump"
	"github.com/cwbudde/pl0c/internal/parser"
	"github.com/spf13/cobra"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a PL/0 file and report success, or dump its parse tree",
	Long: `Parse a PL/0 program without writing bytecode to disk, reporting
either success with a symbol-table summary or the first error found.

Use --ast to dump the parse tree walked while compiling, as XML.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseDumpAST, "ast", false, "dump the parse tree as XML")
}

func runParse(_ *cobra.Command, args []string) error {
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

	var rec *astdump.Recorder
	if parseDumpAST {
		rec = astdump.NewRecorder()
		p.SetTracer(rec)
	}

	if err := p.Parse(); err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("parsing failed with %d error(s)", len(p.Errors()))
	}

	if parseDumpAST {
		return rec.WriteXML(os.Stdout)
	}

	fmt.Printf("%s: OK (%d procedure(s))\n", filename, len(p.Symbols().Procedures()))
	return nil
}
