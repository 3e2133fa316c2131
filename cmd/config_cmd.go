// Package cmd implements the calring CLI commands.
package cmd

import (
	"fmt"

	"calring/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    User:         %s\n", cfg.General.User)
	fmt.Printf("    Default days: %d\n", cfg.General.DefaultDays)
	fmt.Printf("    Database:     %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [OpenAI]")
	apiKey := config.GetAPIKey(cfg)
	if apiKey != "" {
		fmt.Printf("    API key:  %s\n", maskAPIKey(apiKey))
	} else {
		fmt.Println("    API key:  not configured (logging needs --cals)")
	}
	if cfg.OpenAI.Model != "" {
		fmt.Printf("    Model:    %s\n", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.BaseURL != "" {
		fmt.Printf("    Base URL: %s\n", cfg.OpenAI.BaseURL)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `calring setup` to reconfigure.")
	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
