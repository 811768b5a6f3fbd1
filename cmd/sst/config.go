package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/picotrek/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a new game would use, after the config file
search and the difficulty preset, as YAML. The output is a valid --config file.

Config search order:
  --config path -> ~/.sst/configs/sst.yaml -> ./configs/sst.yaml -> built-in

Examples:
  sst config
  sst config --difficulty hard > hard.yaml
  sst config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if err := writeConfig(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig writes the defaults file or the effective configuration to w.
func writeConfig(w io.Writer) error {
	out := config.DefaultYAML()
	if !flagDefaults {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if out, err = yaml.Marshal(cfg); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
