package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kilupskalvis/ps1/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the built-in configuration to the config file so it can be edited.
The file is written to --path, or to $XDG_CONFIG_HOME/ps1/config.toml.`,
	Args: cobra.NoArgs,
	Run:  runInit,
}

var (
	initPath  string
	initForce bool
)

func init() {
	initCmd.Flags().StringVar(&initPath, "path", "", "config file to write")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) {
	path, err := writeDefaultConfig(initPath, initForce)
	if err != nil {
		exitError("%v", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
}

// writeDefaultConfig saves the built-in configuration to path, or to the
// default location when path is empty
func writeDefaultConfig(path string, force bool) (string, error) {
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return "", fmt.Errorf("failed to locate config directory: %w", err)
		}
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	if err := config.Default().Save(path); err != nil {
		return "", err
	}
	return path, nil
}
