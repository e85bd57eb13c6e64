// Package cli implements the command-line interface for ps1.
package cli

import (
	"fmt"
	"os"

	"github.com/kilupskalvis/ps1/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ps1",
	Short: "Render a two-line shell prompt",
	Long: `ps1 prints a shell prompt showing the current user, the working directory
and, inside a git working tree, the checked out branch and whether the tree
has uncommitted changes.

Use it from bash with:  PS1='$(ps1)'`,
	Args: cobra.NoArgs,
	Run:  runPrompt,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.Flags()
	flags.String("config", "", "config file (default $XDG_CONFIG_HOME/ps1/config.toml)")
	flags.Bool("strict", false, "exit with an error instead of substituting fallbacks")
	flags.Bool("discover", true, "search parent directories for the repository")
	flags.Bool("no-color", false, "disable escape sequences")
	flags.Bool("debug", false, "log diagnostics to stderr")

	rootCmd.AddCommand(versionCmd)
}

// flagKeys maps command-line flags to config keys
var flagKeys = map[string]string{
	"strict":   "strict",
	"discover": "discover",
	"no-color": "no_color",
	"debug":    "debug",
}

// loadConfig layers defaults, the config file, environment and flags
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	path, _ := cmd.Flags().GetString("config")
	required := path != ""
	if !required {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			path = ""
		}
	}

	return config.Load(v, path, required)
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
