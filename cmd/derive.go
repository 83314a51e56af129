package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mdpkit/bellman/derive"
	"github.com/mdpkit/bellman/formatter"
)

var (
	ignoreRules    string
	listApplicable bool
	editExpression string
)

var deriveCmd = &cobra.Command{
	Use:   "derive [rule-ids...]",
	Short: "Replay a sequence of rewrite rules from the start expression",
	Long: `Applies the named rules in order, starting from "v(s)", and prints the
resulting derivation. A rule whose exact pattern is absent records a visible
failed step instead of aborting the replay.
Example) bellman derive def-value def-return unroll-return`,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := derive.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize derivation session", zap.Error(err))
		}

		if ignoreRules != "" {
			for _, rule := range strings.Split(ignoreRules, ",") {
				session.IgnoreRule(strings.TrimSpace(rule))
			}
		}

		if editExpression != "" {
			session.Edit(editExpression)
		}

		steps, err := derive.Replay(logger, session, args)
		if err != nil {
			logger.Error("Replay aborted", zap.Error(err))
			os.Exit(1)
		}

		fmt.Print(formatter.GenerateFormattedSteps(steps, session.Cursor()))

		if listApplicable {
			fmt.Println("Applicable rules:")
			fmt.Print(formatter.GenerateFormattedRules(session.Applicable()))
		}
	},
}

func init() {
	deriveCmd.Flags().StringVar(&ignoreRules, "ignore", "", "Comma-separated list of rule ids to ignore")
	deriveCmd.Flags().BoolVar(&listApplicable, "list", false, "List the rules applicable to the final expression")
	deriveCmd.Flags().StringVar(&editExpression, "edit", "", "Replace the start expression by a manual edit before replaying")
}
