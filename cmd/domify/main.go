package main

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/domify-dev/domify/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┌─┐┌┬┐┬┌─┐┬ ┬
   │││ │││││├┤ └┬┘
  ─┴┘└─┘┴ ┴┴└   ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "domify",
		Short: "Convert markup trees into abstract element descriptors",
		Long: `Domify converts markup into abstract element descriptor trees.

Elements whose tags appear in the project registry resolve to
components, slotted children are redistributed into props, and
attributes are mapped through the configured props strategy.

Output formats:
  • json     descriptor tree as JSON (default)
  • msgpack  descriptor tree as msgpack
  • html     descriptors rendered back to HTML for preview`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		convertCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var de *errors.DomifyError
		if stderrors.As(err, &de) {
			fmt.Fprintln(os.Stderr, de.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the domify ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
