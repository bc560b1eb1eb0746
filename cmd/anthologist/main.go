package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jharibo/anthologist/internal/batch"
)

var version = "dev"

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "anthologist",
		Short: "Manage dependencies across multiple projects",
		Long: `A tool to batch-apply dependency operations across multiple
poetry-managed projects.

Each operation invokes the package manager once per project, in the order
the projects were given. Configuration can be provided via YAML file,
environment variables, or command-line flags.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.anthologist/config.yaml)")
	rootCmd.PersistentFlags().String("tool", batch.DefaultTool, "package-manager executable to invoke")

	viper.BindPFlag("tool", rootCmd.PersistentFlags().Lookup("tool"))

	rootCmd.AddCommand(addCmd, updateCmd, removeCmd, lockCmd)
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search for config in home directory
		viper.AddConfigPath(filepath.Join(home, ".anthologist"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Bind environment variables
	viper.SetEnvPrefix("ANTHOLOGIST")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
