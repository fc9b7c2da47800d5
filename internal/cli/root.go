package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/togglebit/togglebit/internal/logger"
	"github.com/togglebit/togglebit/internal/ui"
)

// Global flags
var (
	cfgFile string
	verbose bool
	noColor bool
)

var runFlags RunFlags

// rootCmd runs the bit widget
var rootCmd = &cobra.Command{
	Use:   "togglebit",
	Short: "A single bit you can flip in your terminal",
	Long: `Show a single bit in the terminal and flip it with the space bar or a left click.

Every flip has a chance to corrupt the art of the new state by flipping one
bit of one glyph. The chance grows with every click. With --carnage the
corruption may also tear lines apart.

Keyboard shortcuts:
  space / click  Toggle the bit
  q / Ctrl+C     Quit
  ?              Show more help

Examples:
  togglebit
  togglebit --carnage
  togglebit --display label --cooldown 0
  togglebit --bypass mouse --seed 42`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
		if noColor {
			ui.DisableColors()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, &runFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .togglebit.yaml, then ~/.config/togglebit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write debug output to "+LogFileName)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	AddRunFlags(rootCmd, &runFlags)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError returns err's message ending in exactly one newline. Structured
// errors already end in one; cobra's own do not.
func formatError(err error) string {
	msg := err.Error()
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	return msg
}
