package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/pl0c/internal/bytecode"
	"github.com/cwbudde/pl0c/internal/parser"
	"github.com/spf13/cobra"
)

var (
	outputFile  string
	disassemble bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a PL/0 source file to bytecode",
	Long: `Compile a PL/0 program into a .cl0 bytecode file for Prof. Beck's
stack machine.

Compilation is a single pass over the source: scanning, parsing, and
bytecode emission happen together and the program aborts at the first
error found.

Examples:
  # Compile a program to bytecode
  pl0c compile program.pl0

  # Compile with a custom output file
  pl0c compile program.pl0 -o out.cl0

  # Compile and show the disassembled bytecode
  pl0c compile program.pl0 --disassemble`,
	Args: cobra.ExactArgs(1),
	RunE: compileScript,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input>.cl0)")
	compileCmd.Flags().BoolVar(&disassemble, "disassemble", false, "show disassembled bytecode after compilation")
}

func compileScript(cmd *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	input := string(content)

	compileVerbose, _ := cmd.Flags().GetBool("verbose")
	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", filename)
	}

	out := &seekBuffer{}
	p, err := parser.New(input, filename, out)
	if err != nil {
		return fmt.Errorf("failed to set up compiler: %w", err)
	}
	p.SetMaxArrayLength(cfg.MaxArrayLength)

	if err := p.Parse(); err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("compilation failed with %d error(s)", len(p.Errors()))
	}

	data := out.buf

	if disassemble || cfg.Disassemble {
		fmt.Fprintf(os.Stderr, "\n== Disassembled Bytecode (%s) ==\n", filename)
		if err := bytecode.Disassemble(data, os.Stderr); err != nil {
			return fmt.Errorf("failed to disassemble bytecode: %w", err)
		}
		fmt.Fprintln(os.Stderr)
	}

	outFile := outputFile
	if outFile == "" {
		ext := filepath.Ext(filename)
		base := filename
		if ext != "" {
			base = strings.TrimSuffix(filename, ext)
		}
		outFile = base + ".cl0"
		if cfg.OutputDir != "" {
			outFile = filepath.Join(cfg.OutputDir, filepath.Base(outFile))
		}
	}

	if err := os.WriteFile(outFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Bytecode written to %s (%d bytes)\n", outFile, len(data))
	} else {
		fmt.Printf("Compiled %s -> %s\n", filename, outFile)
	}

	return nil
}

// seekBuffer adapts a growable byte slice to io.WriteSeeker, since the
// emitter needs to seek back to offset 0 to backpatch the procedure
// count once compilation finishes.
type seekBuffer struct {
	buf []byte
	pos int
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	if s.pos+len(p) > len(s.buf) {
		grown := make([]byte, s.pos+len(p))
		copy(grown, s.buf)
		s.buf = grown
	}
	n := copy(s.buf[s.pos:], p)
	s.pos += n
	return n, nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int
	switch whence {
	case 0: // io.SeekStart
		base = 0
	case 1: // io.SeekCurrent
		base = s.pos
	case 2: // io.SeekEnd
		base = len(s.buf)
	}
	pos := base + int(offset)
	if pos < 0 {
		return 0, fmt.Errorf("seekBuffer: negative position")
	}
	s.pos = pos
	return int64(pos), nil
}
