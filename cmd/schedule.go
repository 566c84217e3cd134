package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"loan-amortizer/cli"
	"loan-amortizer/domain"
	"loan-amortizer/export"
	"loan-amortizer/planfile"
	"loan-amortizer/repository"
	"loan-amortizer/service"
)

var (
	flagPlan    string
	flagCSV     bool
	flagCompare bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print the amortization schedule of a plan file",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&flagPlan, "plan", "", "Path to a TOML plan file")
	scheduleCmd.Flags().BoolVar(&flagCSV, "csv", false, "Write the schedule as CSV")
	scheduleCmd.Flags().BoolVar(&flagCompare, "compare", false, "Compare against the loan without prepayments")
	_ = scheduleCmd.MarkFlagRequired("plan")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	file, err := planfile.Load(flagPlan)
	if err != nil {
		return err
	}
	return printSchedule(cmd.Context(), cmd.OutOrStdout(), file, flagCSV, flagCompare)
}

func printSchedule(ctx context.Context, w io.Writer, file planfile.File, asCSV, compare bool) error {
	params, err := file.Params()
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	schedules := service.NewScheduleService(repository.NewMemoryCache(), time.Hour, log)
	result, err := schedules.Calculate(ctx, params)
	if err != nil {
		return err
	}

	if asCSV {
		return export.WriteCSV(w, result)
	}

	title := "AMORTIZATION SCHEDULE"
	if file.Name != "" {
		title += "  " + file.Name
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(title))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.ScheduleTable(result)))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderSummary(scheduleSummary(params, result)))

	if !compare {
		return nil
	}

	comparison, err := service.NewComparisonService(schedules).Compare(ctx, params)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("SAVINGS VS. NO PREPAYMENTS"))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderSummary(comparisonSummary(comparison)))
	return nil
}

func scheduleSummary(params domain.LoanParameters, result domain.ScheduleResult) [][2]string {
	return [][2]string{
		{"Principal", cli.FormatMoney(params.Principal)},
		{"Rate", cli.FormatPercent(params.AnnualRatePct)},
		{"Monthly payment", cli.FormatMoney(result.InitialPayment())},
		{"Total interest", cli.FormatMoney(result.TotalInterest)},
		{"Total paid", cli.FormatMoney(result.TotalPaid)},
		{"Payoff month", cli.FormatMonths(result.PayoffMonth)},
	}
}

func comparisonSummary(c domain.ScheduleComparison) [][2]string {
	return [][2]string{
		{"Baseline interest", cli.FormatMoney(c.Baseline.TotalInterest)},
		{"Plan interest", cli.FormatMoney(c.Plan.TotalInterest)},
		{"Interest saved", cli.FormatMoney(c.Savings.InterestSaved)},
		{"Months saved", cli.FormatMonths(c.Savings.MonthsSaved)},
		{"Payment reduction", cli.FormatMoney(c.Savings.PaymentReduction)},
	}
}
