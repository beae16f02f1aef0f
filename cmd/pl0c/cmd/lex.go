package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/pl0c/internal/lexer"
	"github.com/cwbudde/pl0c/internal/token"
	"github.com/spf13/cobra"
)

var (
	showPos    bool
	showKind   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a PL/0 file and print the resulting tokens",
	Long: `Tokenize (lex) a PL/0 program and print the resulting tokens.

Useful for debugging the scanner and seeing exactly how source text is
split into morphemes.

Examples:
  # Tokenize a program
  pl0c lex program.pl0

  # Show token kinds and positions
  pl0c lex --show-kind --show-pos program.pl0

  # Show only illegal bytes
  pl0c lex --only-errors program.pl0`,
	Args: cobra.ExactArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showKind, "show-kind", false, "show token kind names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal bytes")
}

func lexScript(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	input := string(content)

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.New(input, lexer.WithFilename(filename))

	tokenCount := 0
	if !onlyErrors {
		for {
			tok := l.Next()
			tokenCount++
			printToken(tok)
			if tok.Kind == token.KindEmpty {
				break
			}
		}
	} else {
		for {
			tok := l.Next()
			if tok.Kind == token.KindEmpty {
				break
			}
		}
	}

	errs := l.Errors()
	if onlyErrors || verbose {
		for _, e := range errs {
			fmt.Println(e.Error())
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", tokenCount)
		if len(errs) > 0 {
			fmt.Printf("Errors: %d\n", len(errs))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("found %d illegal byte(s)", len(errs))
	}

	return nil
}

func printToken(tok token.Token) {
	var output string

	if showKind {
		output = fmt.Sprintf("[%-10s]", tok.Kind)
	}

	if tok.Kind == token.KindEmpty {
		output += " <eof>"
	} else {
		output += fmt.Sprintf(" %s", tok)
	}

	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}

	fmt.Println(output)
}
