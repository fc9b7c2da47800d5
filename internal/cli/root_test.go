package cli

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togglebit/togglebit/internal/errors"
)

func TestRootCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"init", "version", "completion"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCommand_Flags(t *testing.T) {
	persistent := []string{"config", "verbose", "no-color"}
	for _, name := range persistent {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing --%s", name)
	}

	local := []string{"carnage", "initial", "display", "cooldown", "bypass", "tick", "seed"}
	for _, name := range local {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "missing --%s", name)
	}

	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"extra"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetArgs([]string{"completion", shell})
			t.Cleanup(func() {
				rootCmd.SetOut(nil)
				rootCmd.SetArgs(nil)
			})

			require.NoError(t, rootCmd.Execute())
			assert.Contains(t, out.String(), "togglebit")
		})
	}
}

func TestCompletion_UnknownShell(t *testing.T) {
	rootCmd.SetArgs([]string{"completion", "tcsh"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	assert.Error(t, rootCmd.Execute())
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"cobra error gets a newline", stderrors.New("unknown flag: --foo"), "unknown flag: --foo\n"},
		{"structured error kept as is", errors.New(errors.ErrConfig, "Bad config", ""), "✗ Bad config\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatError(tt.err))
		})
	}
}

func TestRootCommand_UnknownFlagMessage(t *testing.T) {
	rootCmd.SetArgs([]string{"--foo"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, "unknown flag: --foo\n", formatError(err))
}
