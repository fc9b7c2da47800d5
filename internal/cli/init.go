package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/togglebit/togglebit/internal/config"
	"github.com/togglebit/togglebit/internal/errors"
	"github.com/togglebit/togglebit/internal/ui"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string         // Directory to write into (default: current)
	Overwrite      bool           // Overwrite existing config without asking
	NonInteractive bool           // Skip prompts, write Base as is
	Base           *config.Config // Starting values (defaults plus flags)
	Out            io.Writer
}

const configHeader = `# togglebit configuration
# Run 'togglebit' in this directory to use it.
# Every key can also be set from the environment, e.g. TOGGLEBIT_CARNAGE=true

`

// Init creates a new .togglebit.yaml configuration file.
func Init(opts InitOptions) error {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	cfg := opts.Base
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	configPath := filepath.Join(dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := writeConfig(configPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n\n", ui.Success("Created "+configPath))
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  togglebit           - Flip the bit")
	fmt.Fprintln(out, "  togglebit --carnage - Flip it harder")

	return nil
}

// promptConfig asks for the interesting keys, starting from cfg's values.
func promptConfig(cfg *config.Config) error {
	cooldown := strconv.Itoa(cfg.Cooldown.Ticks)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Display").
				Description("Glyph art or plain on/off labels").
				Options(huh.NewOptions("art", "label")...).
				Value(&cfg.Display),
			huh.NewSelect[string]().
				Title("Initial state").
				Options(huh.NewOptions("on", "off", "random")...).
				Value(&cfg.Initial),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Cooldown ticks").
				Description("Ticks to ignore presses after a flip (0 turns it off)").
				Value(&cooldown).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 0 {
						return fmt.Errorf("enter a whole number, 0 or more")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Inputs that skip the cooldown").
				Options(huh.NewOptions("none", "keyboard", "mouse", "both")...).
				Value(&cfg.Cooldown.Bypass),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Carnage?").
				Description("Let corruption break and create newlines").
				Value(&cfg.Carnage),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive")
	}

	cfg.Cooldown.Ticks, _ = strconv.Atoi(strings.TrimSpace(cooldown))
	return nil
}

func writeConfig(path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	if err := os.WriteFile(path, []byte(configHeader+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", path),
			"Check directory permissions")
	}
	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(cmd *cobra.Command) error {
	cfg := config.DefaultConfig()
	if err := ApplyRunFlags(cmd, &initFlags, cfg); err != nil {
		return err
	}

	return Init(InitOptions{
		Overwrite:      initForce,
		NonInteractive: initNonInteractive,
		Base:           cfg,
		Out:            cmd.OutOrStdout(),
	})
}
