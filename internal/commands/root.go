// internal/commands/root.go
package estbench

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mwiater/estbench/internal/appconfig"
	"github.com/mwiater/estbench/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "estbench",
	Short: "estbench is a benchmark harness for the set estimation engine CLI",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		if !cmd.Flags().Changed("debug") {
			val := viper.GetBool("debug")
			_ = cmd.Flags().Set("debug", strconv.FormatBool(val))
		}
		for _, name := range []string{"estimatorPath", "suitePath", "outputDir", "logFile"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, viper.GetString(name))
			}
		}
		for _, name := range []string{"runsPerCase", "timeout", "pauseSeconds"} {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.Itoa(viper.GetInt(name)))
			}
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = cfgFile
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config/config.json", "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("estimatorPath", "", "path to the estimator binary under test")
	rootCmd.PersistentFlags().String("suitePath", "", "path to the test suite definition JSON")
	rootCmd.PersistentFlags().Int("runsPerCase", 0, "runs per test case (0 = default)")
	rootCmd.PersistentFlags().Int("timeout", 0, "seconds to wait for one estimator invocation (0 = default)")
	rootCmd.PersistentFlags().Int("pauseSeconds", 0, "seconds to pause between runs of a test case (0 = default)")
	rootCmd.PersistentFlags().String("outputDir", "", "directory for report, CSV, and raw result files")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("estimatorPath", rootCmd.PersistentFlags().Lookup("estimatorPath"))
	_ = viper.BindPFlag("suitePath", rootCmd.PersistentFlags().Lookup("suitePath"))
	_ = viper.BindPFlag("runsPerCase", rootCmd.PersistentFlags().Lookup("runsPerCase"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("pauseSeconds", rootCmd.PersistentFlags().Lookup("pauseSeconds"))
	_ = viper.BindPFlag("outputDir", rootCmd.PersistentFlags().Lookup("outputDir"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool { return viper.GetBool("debug") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
