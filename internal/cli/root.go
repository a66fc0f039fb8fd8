package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ppiankov/contextboard/internal/model"
)

// version is overridden at build time with -ldflags "-X ...cli.version=..."
var version = "v0.1.0"

var (
	cfgFile string
	verbose bool

	// set by PersistentPreRunE for every subcommand
	appConfig *model.Config
	logger    = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "contextboard",
	Short: "Contextboard - turn real-world phrases into AAC symbol boards",
	Long: `Contextboard interprets short real-world phrases (store promotions,
instructions) and builds a small context board of symbol cards for an
augmentative and alternative communication (AAC) user.

Phrases are interpreted by a promotion catalog first, then an optional
language model, then an offline keyword fallback. Cards from your own
vocabulary are reused wherever they fit.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		appConfig = cfg

		l, err := newLogger(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l

		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number of Contextboard.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "contextboard %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.contextboard/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	configureViper(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(filepath.Join(home, ".contextboard"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// A missing default config file is fine; a broken one is reported
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Warning: could not read config: %v\n", err)
		}
	}
}

// defaultConfigDir returns ~/.contextboard
func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error finding home directory: %w", err)
	}
	return filepath.Join(home, ".contextboard"), nil
}
