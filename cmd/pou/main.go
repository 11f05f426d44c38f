// pou is a Pou-themed arcade: three minigames behind a main menu, played
// in the terminal or in a desktop window.
//
// Usage:
//
//	pou                       - Start the arcade menu
//	pou menu                  - Same as above
//	pou play <game>           - Play one minigame directly
//	pou list                  - List available minigames
//	pou settings              - Show or change saved settings
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set settings database path (default: ~/.pou/pou.db)
//	--config <path>      - Load tuning from a YAML file
//	--window             - Open a desktop window instead of using the terminal
//	--log-file <path>    - Write logs to this file (default: ~/.pou/pou.log)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/pou-arcade/internal/games/catcher"
	_ "github.com/vovakirdan/pou-arcade/internal/games/dodger"
	_ "github.com/vovakirdan/pou-arcade/internal/games/hopper"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagWindow   bool
	flagLogFile  string
	flagLogLevel string
)

// envFlags maps environment variables to the flags they override.
// An explicit flag wins over the environment.
var envFlags = map[string]string{
	"POU_DB":        "db",
	"POU_LOG_LEVEL": "log-level",
	"POU_FPS":       "fps",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pou",
	Short: "Pou arcade - Food Drop, Jet Pou and Sky Hop",
	Long: `Pou arcade bundles three minigames behind a main menu.

  Food Drop  - catch falling food, dodge the trash
  Jet Pou    - fly a jetpack between the trees
  Sky Hop    - hop up the cloud tower before time runs out

Available commands:
  menu      - Start the arcade (default)
  play      - Play a specific minigame directly
  list      - Show all minigames
  settings  - Show or change saved settings

Examples:
  pou
  pou play hopper
  pou --window
  pou settings --skin panda --audio off`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
	RunE:              runMenu,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.pou/pou.db", "Path to settings database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.BoolVar(&flagWindow, "window", false, "Open a desktop window instead of the terminal")
	pf.StringVar(&flagLogFile, "log-file", "~/.pou/pou.log", "Log file path")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(settingsCmd)
}

// loadEnv reads .env if present and applies environment overrides to
// flags that were not given on the command line.
func loadEnv(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()
	return applyEnv(cmd)
}

func applyEnv(cmd *cobra.Command) error {
	flags := cmd.Flags()
	for env, name := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}
