package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mdpkit/bellman/derive"
	"github.com/mdpkit/bellman/formatter"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rewrite rule catalog in lecture order",
	Run: func(cmd *cobra.Command, args []string) {
		session, err := derive.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize derivation session", zap.Error(err))
		}
		fmt.Print(formatter.GenerateFormattedRules(session.Rules()))
	},
}
