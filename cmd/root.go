package cmd

import (
	"fmt"
	"os"
	"time"

	"calring/internal/app"
	"calring/internal/config"
	"calring/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDays   int
	flagUser   string
	flagDBPath string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "calring",
	Short: "Calorie and exercise tracker",
	Long:  "Track meals and workouts against your daily energy budget: BMR, TDEE, deficit goals, and a progress ring.",
	RunE:  runToday,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Time window in days (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "User to track (default from config)")
	rootCmd.PersistentFlags().StringVarP(&flagDBPath, "db", "d", "", "Database path override")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress decorative output")
}

// loadConfig applies CLI flag overrides on top of the config file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagUser != "" {
		cfg.General.User = flagUser
	}
	if flagDBPath != "" {
		cfg.General.DBPath = flagDBPath
	}
	if flagDays > 0 {
		cfg.General.DefaultDays = flagDays
	}
	return cfg, nil
}

// openData is the shared loading path used by all commands: config, store,
// and the user's full state.
func openData() (config.Config, *store.Store, *app.State, error) {
	cfg, err := loadConfig()
	if err != nil {
		return cfg, nil, nil, err
	}

	db, err := app.Open(cfg)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("opening store: %w", err)
	}

	state, err := app.Load(db, cfg.General.User, time.Now())
	if err != nil {
		_ = db.Close()
		return cfg, nil, nil, err
	}

	return cfg, db, state, nil
}
