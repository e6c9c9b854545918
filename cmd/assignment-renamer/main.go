// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the assignment-renamer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the assignment-renamer CLI.
var rootCmd = &cobra.Command{
	Use:   "assignment-renamer",
	Short: "Rename submitted assignment PDFs to a standard pattern",
	Long: `assignment-renamer reads the first page of each submitted PDF in a folder,
finds the assignment ("Homework #N") and the student name (the line after
"Student"), and renames the file to

    <course>-<term>-Homework<N>-<Last, First Middle>.pdf

Repeated names within one run get a numeric suffix (…2.pdf, …3.pdf).`,
	SilenceUsage: true,
}

// configName is the config file base name searched for in the working
// directory and in the user config directory.
const configName = "assignment-renamer"

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./"+configName+".yaml, then <user config dir>/"+configName+"/"+configName+".yaml)")
}

// initConfig points viper at the --config file, or searches for
// configName.yaml, and layers ASSIGNMENT_RENAMER_* environment variables on
// top. A missing config file is not an error.
func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, configName))
		}
	}

	viper.SetEnvPrefix("ASSIGNMENT_RENAMER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
