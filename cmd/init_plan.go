package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loan-amortizer/domain"
	"loan-amortizer/planfile"
)

var flagForce bool

var initPlanCmd = &cobra.Command{
	Use:   "init-plan FILE",
	Short: "Write a sample plan file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInitPlan,
}

func init() {
	initPlanCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initPlanCmd)
}

func runInitPlan(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !flagForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := planfile.Save(path, samplePlan()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func samplePlan() planfile.File {
	return planfile.FromParams("Sample 30-year mortgage", domain.LoanParameters{
		Principal:     100000,
		AnnualRatePct: 6,
		TermMonths:    360,
		Start:         domain.YearMonth{Year: 2024, Month: 1},
		Extras:        map[int]float64{1: 1000},
		RecastMonths:  []int{24},
	})
}
