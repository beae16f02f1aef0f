package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/pl0c/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        config.Config
)

// Version information (set by build flags)
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pl0c",
	Short: "PL/0 compiler targeting Prof. Beck's stack machine",
	Long: `pl0c compiles PL/0 source — constants, variables, nested procedures,
conditionals, WHILE and FOR loops, and fixed-size arrays — into a .cl0
bytecode file for Prof. Beck's stack machine.

It compiles in a single pass: scanning, parsing, and bytecode emission
happen together, and compilation aborts at the first error.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = ".pl0rc.yaml"
		}
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "compiler config file (default: .pl0rc.yaml if present)")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
