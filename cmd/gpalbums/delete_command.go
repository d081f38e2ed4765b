package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gpalbums/internal/library"
)

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <url>",
		Short: "Delete an album from the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withService(func(svc *library.Service) error {
				removed, err := svc.DeleteAlbum(args[0])
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, removed)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", removed.Title)
				return nil
			})
		},
	}
}
