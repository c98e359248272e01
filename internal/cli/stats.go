package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"marine-guardian/internal/models"

	"github.com/spf13/cobra"
)

// StatsResult is the JSON payload of the stats command.
type StatsResult struct {
	Counts []models.StatusCount `json:"counts"`
	Total  int                  `json:"total"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count sightings per conservation status",
		Long: `Count sightings per conservation status.

The four statuses are always listed, in fixed order, even when zero. Records
whose stored status is not one of them are counted under "Other", which is
shown only when non-zero.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, rootOpts)
		},
	}
}

func runStats(cmd *cobra.Command, opts *RootOptions) error {
	service, err := opts.openService(cmd)
	if err != nil {
		return err
	}

	counts, err := service.Statistics(cmd.Context())
	if err != nil {
		return serviceError("compute statistics", err)
	}

	result := StatsResult{Counts: counts, Total: models.Total(counts)}
	return opts.formatter(cmd).Success(result, func(w io.Writer) error {
		return writeStats(w, result)
	})
}

func writeStats(w io.Writer, result StatsResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tCOUNT")
	for _, c := range result.Counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Status, c.Count)
	}
	fmt.Fprintf(tw, "Total\t%d\n", result.Total)
	return tw.Flush()
}
