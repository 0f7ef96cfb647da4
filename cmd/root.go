package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rsv-series/scoring/log"
	pointsCmd "github.com/rsv-series/scoring/pkg/cmd/points"
	seedCmd "github.com/rsv-series/scoring/pkg/cmd/seed"
	standingsCmd "github.com/rsv-series/scoring/pkg/cmd/standings"
	"github.com/rsv-series/scoring/pkg/config"
	"github.com/rsv-series/scoring/version"
)

const envPrefix = "RSV"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "rsv",
	Short:   "Scoring and standings engine for the RSV cycling series",
	Long:    ``,
	Version: version.FullVersion,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		cmd.SetContext(log.AddToContext(cmd.Context(), log.Default()))
		return nil
	},
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func setupLogging() error {
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	if config.LogFilter != "" {
		var err error
		if logger, err = log.NewWithFilters(logger, config.LogFilter); err != nil {
			return err
		}
	}
	log.ResetDefault(logger)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.rsv.yml)")

	rootCmd.PersistentFlags().StringVar(&config.SnapshotFile, "snapshot",
		"season.json",
		"path to the season snapshot file")
	rootCmd.PersistentFlags().StringVar(&config.SettingsFile, "settings",
		"",
		"optional YAML file overriding the snapshot settings")
	rootCmd.PersistentFlags().IntVar(&config.Season, "season",
		0,
		"season to operate on (default: derived from the snapshot)")
	rootCmd.PersistentFlags().StringVar(&config.OutputFormat, "output",
		"text",
		"output format (text, json)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, "log-format",
		"text",
		"controls the log output format (text, json)")
	rootCmd.PersistentFlags().StringVar(&config.LogFilter, "log-filter",
		"",
		"zapfilter rules applied to namespaced loggers")

	// add commands here
	rootCmd.AddCommand(pointsCmd.NewPointsCmd())
	rootCmd.AddCommand(standingsCmd.NewStandingsCmd())
	rootCmd.AddCommand(seedCmd.NewSeedCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".rsv" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rsv")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --log-level to RSV_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
