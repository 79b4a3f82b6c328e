package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dafibh/tripfund/tripfund-backend/internal/domain"
	"github.com/dafibh/tripfund/tripfund-backend/internal/service"
)

type calcOptions struct {
	input             domain.TripFundInput
	timeline          bool
	asJSON            bool
	maxTimelineMonths int
}

func newCalcCommand() *cobra.Command {
	var opts calcOptions

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate how many months of deposits a trip needs",
		Long: "Calculate how many months of deposits are needed to afford a trip.\n" +
			"The total trip cost is the base cost plus a 50% safety margin.\n" +
			"Invalid amounts print the advisory message and are not treated as an error.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd.OutOrStdout(), opts, time.Now())
		},
	}

	cmd.Flags().StringVar(&opts.input.BaseCost, "base-cost", "", "base trip cost")
	cmd.Flags().StringVar(&opts.input.CurrentSavings, "current-savings", "", "amount already saved")
	cmd.Flags().StringVar(&opts.input.MonthlyDeposit, "monthly-deposit", "", "amount deposited each month")
	cmd.Flags().BoolVar(&opts.timeline, "timeline", false, "print the month-by-month savings table")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	cmd.Flags().IntVar(&opts.maxTimelineMonths, "max-timeline-months", service.DefaultMaxTimelineMonths, "longest timeline that will be built")
	cmd.MarkFlagsMutuallyExclusive("timeline", "json")

	return cmd
}

func runCalc(w io.Writer, opts calcOptions, now time.Time) error {
	svc := service.NewTripFundService(opts.maxTimelineMonths)
	result := svc.Evaluate(opts.input)

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Summary(now)); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintln(w, result.Message); err != nil {
		return err
	}
	if !opts.timeline || !result.Valid() {
		return nil
	}
	if result.ChartErr != nil {
		_, err := fmt.Fprintf(w, "Timeline unavailable: %v\n", result.ChartErr)
		return err
	}

	return writeTimeline(w, result.Timeline)
}

func writeTimeline(w io.Writer, timeline *domain.TripFundTimeline) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "MONTH\tSAVINGS\tTARGET\t")
	for i := 0; i < timeline.Len(); i++ {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", timeline.Labels[i], timeline.Budget[i].StringFixed(2), timeline.Target[i].StringFixed(2))
	}
	return tw.Flush()
}
