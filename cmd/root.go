// Copyright © 2026 The diagview authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "diagview",
	Short: "diagview — compiler diagnostic renderer",
	Long: `diagview renders compiler diagnostics as annotated source snippets:
a severity-tagged message, the offending line with a caret/underline row,
fix-it suggestions, and a backtrace through macro expansions and file
inclusions.

Input is a JSON batch produced by a compiler front end (or by hand): a
table of source buffers with optional include and macro-expansion
records, and the diagnostics to render against them.

Getting started:
  diagview render diags.json          Pretty-print all diagnostics
  diagview render --wrap-column 80    Wrap messages at 80 columns
  diagview fixits diags.json          Emit machine-readable fix-it lines
  diagview explore diags.json         Browse diagnostics interactively

Configuration is read from flags, DIAGVIEW_* environment variables, and
a .diagview.yaml file in the home directory.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.diagview.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".diagview"
		// (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".diagview")
	}

	viper.SetEnvPrefix("diagview")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
