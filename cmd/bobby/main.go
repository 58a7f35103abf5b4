// bobby is a side-scrolling glider arcade game for the terminal.
//
// Usage:
//
//	bobby play            - Play a run
//	bobby scores          - Show run history
//	bobby serve           - Start SSH server for remote play
//	bobby levels          - Show the level table
//	bobby config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.bobby/config.yaml)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.bobby/scores.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Log destination
//	--sound             - Enable audio cues
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bobby-glide/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagSound    bool

	// cfg is loaded before any subcommand runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bobby",
	Short: "Bobby Glide - dodge the zappers, grab the coins",
	Long: `Bobby Glide is a side-scrolling arcade game for your terminal.

Bobby falls under gravity and rises while you flap. Collect coins and
survive three levels of spinning zapper blades to win.

Available commands:
  play     - Play a run
  scores   - View run history
  serve    - Start SSH server for remote play
  levels   - Show the level table
  config   - Print the effective configuration

Examples:
  bobby play
  bobby play --seed 42 --sound
  bobby scores
  bobby serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to config YAML")
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.bobby/scores.db", "Path to scores database")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "~/.bobby/bobby.log", "Log file path")
	flags.BoolVar(&flagSound, "sound", false, "Enable audio cues")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		loaded.Game.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		loaded.Game.Seed = flagSeed
	}
	if flags.Changed("db") {
		loaded.Storage.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		loaded.Log.File = flagLogFile
	}
	if flags.Changed("sound") {
		loaded.Audio.Enabled = flagSound
	}

	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	return nil
}
