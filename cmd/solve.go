package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mdpkit/bellman/derive"
	"github.com/mdpkit/bellman/formatter"
	"github.com/mdpkit/bellman/internal/linalg"
	"github.com/mdpkit/bellman/solver"
)

var (
	matrixText  string
	rewardsText string
	gammaText   string
	sweepCount  int
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the closed-form value equation V = (I - γP)⁻¹R",
	Long: `Reads the transition matrix, discount factor, and reward vector and
solves the linear system directly. Matrix rows are separated by ';' or
newlines, entries by commas.
Example) bellman solve --matrix "0.5,0.5;0.2,0.8" --gamma 0.9 --rewards "1,0"`,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := derive.ParseConfigurationFile(cfgFile)
		if err != nil {
			logger.Fatal("Failed to read configuration", zap.Error(err))
		}
		tol := config.Solver.PivotTolerance
		if tol <= 0 {
			tol = linalg.DefaultPivotTol
		}

		p, err := solver.ParseMatrix(strings.ReplaceAll(matrixText, ";", "\n"))
		if err != nil {
			logger.Error("Invalid transition matrix", zap.Error(err))
			os.Exit(1)
		}
		gamma, err := solver.ParseScalar(gammaText)
		if err != nil {
			logger.Error("Invalid discount factor", zap.Error(err))
			os.Exit(1)
		}
		r, err := solver.ParseVector(rewardsText)
		if err != nil {
			logger.Error("Invalid reward vector", zap.Error(err))
			os.Exit(1)
		}

		if sweepCount > 1 {
			runSweep(p, gamma, r, tol, sweepCount)
			return
		}

		v, err := solver.ValueTol(p, gamma, r, tol)
		if err != nil {
			logger.Error("Solve failed", zap.Error(err))
			os.Exit(1)
		}
		fmt.Print(formatter.GenerateFormattedVector(v))
	},
}

// runSweep solves the system for count evenly spaced discount factors in
// [0, gamma] and prints the value table. Singular intermediate systems are
// reported and skipped.
func runSweep(p linalg.Mat, gamma float64, r linalg.Vec, tol float64, count int) {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription("sweep"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)

	gammas := make([]float64, 0, count)
	values := make([]linalg.Vec, 0, count)
	for i := 0; i < count; i++ {
		g := gamma * float64(i) / float64(count-1)
		v, err := solver.ValueTol(p, g, r, tol)
		if err != nil {
			logger.Warn("Sweep point failed", zap.Float64("gamma", g), zap.Error(err))
			bar.Add(1)
			continue
		}
		gammas = append(gammas, g)
		values = append(values, v)
		bar.Add(1)
	}
	fmt.Println()
	fmt.Print(formatter.GenerateFormattedSweep(gammas, values))
}

func init() {
	solveCmd.Flags().StringVarP(&matrixText, "matrix", "m", "", "Transition matrix P, rows separated by ';', entries by commas")
	solveCmd.Flags().StringVarP(&rewardsText, "rewards", "r", "", "Reward vector R, comma-separated")
	solveCmd.Flags().StringVarP(&gammaText, "gamma", "g", "0.9", "Discount factor γ")
	solveCmd.Flags().IntVar(&sweepCount, "sweep", 0, "Solve for N evenly spaced discount factors in [0, γ]")
	_ = solveCmd.MarkFlagRequired("matrix")
	_ = solveCmd.MarkFlagRequired("rewards")
}
