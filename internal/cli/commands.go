package cli

import (
	"github.com/spf13/cobra"
	"github.com/togglebit/togglebit/internal/errors"
)

// Command-specific flags
var (
	initForce          bool
	initNonInteractive bool
)

// initCmd creates a new .togglebit.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .togglebit.yaml configuration",
	Long: `Write a .togglebit.yaml file in the current directory.

Asks a few questions about how the bit should behave. Flags given to
init (--carnage, --initial, --display, --cooldown, --bypass, --tick) become the
answers' defaults, or the values written with --non-interactive.

Examples:
  togglebit init
  togglebit init --non-interactive --carnage
  togglebit init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(cmd)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for togglebit.

Examples:
  # Bash
  togglebit completion bash > /etc/bash_completion.d/togglebit

  # Zsh
  togglebit completion zsh > "${fpath[1]}/_togglebit"

  # Fish
  togglebit completion fish > ~/.config/fish/completions/togglebit.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

var initFlags RunFlags

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts and write defaults plus flags")
	AddConfigFlags(initCmd, &initFlags)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
