// Init command: bootstraps the configuration directory.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config directory and a default config.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		if err := ensureConfigDir(configDir); err != nil {
			return fmt.Errorf("creating %s: %w", configDir, err)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
		fmt.Println("initialized", filepath.Join(configDir, configFileExt))
		return nil
	},
}
