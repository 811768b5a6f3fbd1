// sst is a turn-based Super Star Trek for the terminal.
//
// Usage:
//
//	sst                      - Start the game (same as "sst play")
//	sst play                 - Start the game
//	sst records              - Show the service record of finished sessions
//	sst config               - Print the effective configuration as YAML
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible sessions
//	--config <path>       - Load tunables from a YAML file
//	--difficulty <preset> - easy, normal or hard
//	--console             - Use the plain text console instead of the TUI
//	--db <path>           - Record finished sessions in a SQLite database
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file instead of stderr
//
// Every flag defaults to the matching SST_* environment variable, which may
// also be set in a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/picotrek/internal/config"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagConsole    bool
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sst",
	Short: "Super Star Trek - command the Enterprise from your terminal",
	Long: `Super Star Trek is a turn-based space strategy game. Hunt down every
Klingon in an 8x8 grid of sectors before your energy runs out, refuel at
star bases and mine dilithium from planets along the way.

Available commands:
  play     - Start the game (default)
  records  - View the service record
  config   - Print the effective configuration

Examples:
  sst
  sst --difficulty hard
  sst --seed 42 --console
  sst --db ~/.sst/records.db
  sst records --db ~/.sst/records.db`,
	PersistentPreRunE: applyEnv,
	Run:               runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagConsole, "console", false, "Use the text console instead of the TUI")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to service record database (disabled when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills every flag the user did not set from the SST_* environment.
func applyEnv(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("seed") && env.Seed != 0 {
		flagSeed = env.Seed
	}
	if !flags.Changed("config") && env.ConfigPath != "" {
		flagConfig = env.ConfigPath
	}
	if !flags.Changed("difficulty") && env.Difficulty != "" {
		flagDifficulty = env.Difficulty
	}
	if !flags.Changed("db") && env.DBPath != "" {
		flagDBPath = env.DBPath
	}
	if !flags.Changed("log-level") {
		flagLogLevel = env.LogLevel
	}
	if !flags.Changed("log-file") && env.LogFile != "" {
		flagLogFile = env.LogFile
	}
	return nil
}
