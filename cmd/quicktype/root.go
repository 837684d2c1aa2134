package main

import (
	"fmt"
	"os"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute builds the command tree and runs it, exiting the process on
// error the same way the teacher's own gnmidiff CLI does.
func Execute() {
	rootCmd := &cobra.Command{
		Use:   "quicktype",
		Short: "quicktype infers a type graph from JSON, JSON Schema, or GraphQL and emits source code",
	}

	cfgFile := rootCmd.PersistentFlags().String("config_file", "", "Path to a config file of flag defaults.")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *cfgFile != "" {
			viper.SetConfigFile(*cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("error reading config: %w", err)
			}
		}
		viper.BindPFlags(cmd.Flags())
		viper.AutomaticEnv()
		return nil
	}

	rootCmd.AddCommand(newGenerateCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Errorf("quicktype: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
