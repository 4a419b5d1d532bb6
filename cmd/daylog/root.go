// Root command for the daylog CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/daylog/internal/paths"
	"github.com/mesh-intelligence/daylog/pkg/daylog"
	"github.com/mesh-intelligence/daylog/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagFolder    string
	flagStart     string
	flagEnd       string
	flagJSON      bool
	flagVerbose   bool
)

// cfg holds the merged pipeline configuration (config.yaml overridden by
// flags). Set by PersistentPreRunE so all subcommands can use it.
var cfg types.Config

// logger is the process-wide structured logger, built on startup.
var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:     "daylog",
	Short:   "Daylog extracts chartable metrics from daily note files",
	Long: `Daylog ingests a folder of daily note files, extracts typed fields
from each file's metadata block, and reconstructs cross-midnight sleep
cycles. The resulting record table and cycle list feed external chart
renderers; daylog itself renders nothing.`,
	Version:      daylog.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initLogger(); err != nil {
			return err
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}
		cfg = mergeConfig(v)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagFolder, "folder", "", "folder of daily note files")
	rootCmd.PersistentFlags().StringVar(&flagStart, "start", "", "inclusive range start (yyyy-mm-dd)")
	rootCmd.PersistentFlags().StringVar(&flagEnd, "end", "", "inclusive range end (yyyy-mm-dd)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(sleepCmd)
	rootCmd.AddCommand(exportCmd)
}

// initLogger builds the process logger. Warn by default so data output
// stays clean; --verbose lowers the level to Debug.
func initLogger() error {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if flagVerbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	return nil
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > DAYLOG_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// mergeConfig applies flag overrides on top of the config.yaml values.
func mergeConfig(v *viper.Viper) types.Config {
	c := types.Config{
		Folder:    v.GetString(cfgKeyFolder),
		StartDate: v.GetString(cfgKeyStart),
		EndDate:   v.GetString(cfgKeyEnd),
	}
	if flagFolder != "" {
		c.Folder = flagFolder
	}
	if flagStart != "" {
		c.StartDate = flagStart
	}
	if flagEnd != "" {
		c.EndDate = flagEnd
	}
	return c
}
