// Package cmd implements the relister CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/calegrey/relister/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "relister",
		Short: "Listing assistant for book and magazine resellers",
		Long: "relister turns scanned barcodes into ready-to-post marketplace listings.\n" +
			"It classifies ISBN, UPC, and magazine barcodes, resolves product metadata,\n" +
			"prices against live eBay comps, and assembles titles and descriptions.\n" +
			"The serve command runs the API server; the other commands talk to it.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default config.yaml for serve/migrate, $HOME/.relister.yaml otherwise)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(lookupCmd())
	rootCmd.AddCommand(priceCmd())
	rootCmd.AddCommand(titleCmd())
	rootCmd.AddCommand(listingsCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(quotaCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".relister")
	}

	viper.SetEnvPrefix("RELISTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// serverConfigPath returns the config file for the server-side commands.
func serverConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "config.yaml"
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
