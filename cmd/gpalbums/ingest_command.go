package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"gpalbums/internal/ingest"
	"gpalbums/internal/library"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [payload]",
		Short: "Merge scraped album data into the collection",
		Long: "Reads a scraper payload (JSON, as an argument or on stdin) and reconciles " +
			"it with the stored collection. Existing titles are never overwritten; item " +
			"counts and dates follow the fill-in merge policy.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readPayload(cmd, args)
			if err != nil {
				return err
			}
			payload, err := ingest.ParsePayload(data)
			if err != nil {
				return err
			}
			return ctx.withService(func(svc *library.Service) error {
				report, err := svc.Ingest(payload)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, report)
				}
				rows := [][]string{
					{"Added", strconv.Itoa(len(report.CreatedIDs))},
					{"Updated", strconv.Itoa(len(report.UpdatedIDs))},
					{"Unchanged", strconv.Itoa(len(report.UnchangedIDs))},
				}
				out := renderTable([]string{"Outcome", "Albums"}, rows, []columnAlignment{alignLeft, alignRight})
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}

func readPayload(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return []byte(args[0]), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read payload from stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no payload provided; pass JSON as an argument or on stdin")
	}
	return data, nil
}
