package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "planarcheck",
	Short: "Decide whether a graph is planar",
	Long:  "planarcheck reads an edge list and runs the left-right planarity test against it.",
	RunE:  runCheck,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .planarcheck.yaml)")
	rootCmd.Flags().StringP("input", "i", "", "edge list file (default: stdin)")
	rootCmd.Flags().String("format", "text", "input format: text (\"u v\" per line) or json")
	rootCmd.Flags().Duration("timeout", 0, "abort and exit nonzero if the check runs longer than this (0 = no limit)")
	rootCmd.Flags().Bool("json", false, "print the result as JSON, tagged with a run id")
	rootCmd.Flags().String("gen", "", "check a built-in fixture instead of reading input, e.g. k5, k3,3, cycle:6, wheel:8, platonic:cube")

	_ = viper.BindPFlag("input", rootCmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("timeout", rootCmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("json", rootCmd.Flags().Lookup("json"))
	_ = viper.BindPFlag("gen", rootCmd.Flags().Lookup("gen"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".planarcheck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PLANARCHECK")
	viper.AutomaticEnv()

	// Absence of a config file is not an error; flags and env vars suffice.
	_ = viper.ReadInConfig()
}
