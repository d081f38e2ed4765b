package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gpalbums/internal/library"
)

func newEditCommand(ctx *commandContext) *cobra.Command {
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit album fields directly",
		Long:  "Direct edits always win: unlike ingest, they overwrite unconditionally.",
	}

	editCmd.AddCommand(newEditTitleCommand(ctx))
	editCmd.AddCommand(newEditCountCommand(ctx))
	editCmd.AddCommand(newEditDateCommand(ctx))

	return editCmd
}

func newEditTitleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "title <url> <new title...>",
		Short: "Replace an album title",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			newTitle := strings.Join(args[1:], " ")
			return ctx.withService(func(svc *library.Service) error {
				change, err := svc.EditTitle(url, newTitle)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, change)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Title updated: %s -> %s\n", change.OldTitle, change.NewTitle)
				return nil
			})
		},
	}
}

func newEditCountCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "count <url> <n>",
		Short: "Replace an album item count",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			count, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil {
				return fmt.Errorf("item count must be a number, got %q", args[1])
			}
			return ctx.withService(func(svc *library.Service) error {
				change, err := svc.EditItemCount(url, count)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, change)
				}
				old := "not set"
				if change.OldCount != nil {
					old = strconv.Itoa(*change.OldCount)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %d\n", change.Title, old, change.NewCount)
				return nil
			})
		},
	}
}

func newEditDateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "date <url> <date>",
		Short: "Replace an album date or date range",
		Long:  "Dates are entered canonically: yyyy-mm-dd, or yyyy-mm-dd--yyyy-mm-dd for a range.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, input := args[0], args[1]
			return ctx.withService(func(svc *library.Service) error {
				change, err := svc.EditDate(url, input)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, change)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: date set to %s\n", change.Title, change.Display)
				return nil
			})
		},
	}
}
