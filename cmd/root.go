package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bellman",
	Short: "bellman - derive the Bellman equation step by step and solve its closed form",
	Run: func(cmd *cobra.Command, args []string) {
		// display help when only 'bellman' is entered
		_ = cmd.Help()
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".bellman.yaml", "Path to the configuration file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(deriveCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(solveCmd)
}
