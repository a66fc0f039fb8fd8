package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/contextboard/internal/model"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Contextboard configuration",
	Long: `Manage Contextboard configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (CONTEXTBOARD_*, e.g. CONTEXTBOARD_LLM_PROVIDER)
3. Config file (~/.contextboard/config.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the resolved configuration (defaults, config file, env vars, flags). API keys are masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile := viper.ConfigFileUsed()
		if configFile != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", configFile)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "═══════════════════════════════════════════════════════════")
		fmt.Fprintln(out, "  Current Configuration")
		fmt.Fprintln(out, "═══════════════════════════════════════════════════════════")
		fmt.Fprintln(out)

		yamlData, err := renderConfig(appConfig, true)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(yamlData))

		fmt.Fprintln(out, "═══════════════════════════════════════════════════════════")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Configuration hierarchy (highest to lowest priority):")
		fmt.Fprintln(out, "  1. CLI flags")
		fmt.Fprintln(out, "  2. Environment variables (CONTEXTBOARD_*, OPENAI_API_KEY, ANTHROPIC_API_KEY, OLLAMA_BASE_URL)")
		fmt.Fprintln(out, "  3. Config file (~/.contextboard/config.yaml)")
		fmt.Fprintln(out, "  4. Defaults")
		fmt.Fprintln(out)

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long:  `Create a default configuration file at ~/.contextboard/config.yaml with all available options.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := defaultConfigDir()
		if err != nil {
			return err
		}
		configPath := filepath.Join(configDir, "config.yaml")

		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}

		fmt.Printf("✓ Created default configuration: %s\n", configPath)
		fmt.Printf("\nTo view the configuration:\n")
		fmt.Printf("  contextboard config show\n")
		fmt.Printf("\nTo customize, edit the file with your preferred editor:\n")
		fmt.Printf("  $EDITOR %s\n", configPath)
		fmt.Printf("\n")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

// renderConfig marshals cfg to YAML, optionally masking secrets
func renderConfig(cfg *model.Config, mask bool) ([]byte, error) {
	c := *cfg
	if mask && c.LLM.APIKey != "" {
		c.LLM.APIKey = "********"
	}
	data, err := yaml.Marshal(&c)
	if err != nil {
		return nil, fmt.Errorf("error marshaling config: %w", err)
	}
	return data, nil
}

// writeDefaultConfig creates a commented default config file at path.
// An existing file is never overwritten.
func writeDefaultConfig(path string) (err error) {
	if _, statErr := os.Stat(path); statErr == nil {
		return fmt.Errorf("config file already exists: %s\nUse 'contextboard config show' to view it, or delete it first to recreate", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	yamlData, err := renderConfig(model.DefaultConfig(), false)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close config file: %w", closeErr)
		}
	}()

	// Helper for writing with error checking
	printf := func(format string, a ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(f, format, a...)
	}

	printf("# Contextboard Configuration File\n")
	printf("#\n")
	printf("# Configuration hierarchy (highest to lowest priority):\n")
	printf("#   1. CLI flags\n")
	printf("#   2. Environment variables (CONTEXTBOARD_*)\n")
	printf("#   3. This config file\n")
	printf("#   4. Built-in defaults\n")
	printf("#\n")
	printf("# llm.provider: \"\" disables the external interpreter; openai, anthropic or ollama enable it.\n\n")
	printf("%s", yamlData)

	// Add helpful comments at the end
	printf("\n# API Keys (recommended to use environment variables instead):\n")
	printf("#   export OPENAI_API_KEY=sk-...\n")
	printf("#   export ANTHROPIC_API_KEY=sk-ant-...\n")
	printf("#   export OLLAMA_BASE_URL=http://localhost:11434\n")

	return err
}
