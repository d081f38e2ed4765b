package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gpalbums/internal/library"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection completeness statistics",
		Long: "Buckets albums by completeness. With --json the ID lists can be fed back " +
			"into `gpalbums search --ids` to inspect a bucket.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *library.Service) error {
				summary := svc.Stats()
				if ctx.jsonOutput() {
					return writeJSON(cmd, summary)
				}
				if len(summary.All) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No albums in the collection")
					return nil
				}
				rows := [][]string{
					{"Total", strconv.Itoa(len(summary.All))},
					{"Complete", strconv.Itoa(len(summary.Complete))},
					{"Incomplete", strconv.Itoa(len(summary.Incomplete))},
					{"Missing item count", strconv.Itoa(len(summary.MissingCount))},
					{"Missing date", strconv.Itoa(len(summary.MissingDate))},
					{"Missing both", strconv.Itoa(len(summary.MissingBoth))},
					{"With tags", strconv.Itoa(len(summary.Tagged))},
					{"Without tags", strconv.Itoa(len(summary.Untagged))},
				}
				out := renderTable([]string{"Bucket", "Albums"}, rows, []columnAlignment{alignLeft, alignRight})
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}
