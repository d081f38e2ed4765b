package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gpalbums/internal/library"
	"gpalbums/internal/tags"
)

func newTagsCommand(ctx *commandContext) *cobra.Command {
	tagsCmd := &cobra.Command{
		Use:   "tags",
		Short: "Browse and manage album tags",
	}

	tagsCmd.AddCommand(newTagsListCommand(ctx))
	tagsCmd.AddCommand(newTagsMenuCommand(ctx))
	tagsCmd.AddCommand(newTagsToggleCommand(ctx, tags.ActionAdd))
	tagsCmd.AddCommand(newTagsToggleCommand(ctx, tags.ActionRemove))

	return tagsCmd
}

func newTagsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list [filter]",
		Short: "List all tags with album counts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			return ctx.withService(func(svc *library.Service) error {
				counts := svc.ListTags(filter)
				if ctx.jsonOutput() {
					return writeJSON(cmd, counts)
				}
				if len(counts) == 0 {
					if filter != "" {
						fmt.Fprintf(cmd.OutOrStdout(), "No tags match: %s\n", filter)
					} else {
						fmt.Fprintln(cmd.OutOrStdout(), "No tags found")
					}
					return nil
				}
				rows := make([][]string, 0, len(counts))
				for _, c := range counts {
					rows = append(rows, []string{c.Tag, strconv.Itoa(c.Albums)})
				}
				out := renderTable([]string{"Tag", "Albums"}, rows, []columnAlignment{alignLeft, alignRight})
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}

func newTagsMenuCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "menu <url> [filter]",
		Short: "Show tags with their add/remove state for one album",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			filter := ""
			if len(args) == 2 {
				filter = args[1]
			}
			return ctx.withService(func(svc *library.Service) error {
				entries, canCreate, err := svc.TagMenu(url, filter)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, struct {
						Entries   []tags.MenuEntry `json:"entries"`
						CanCreate bool             `json:"canCreate"`
					}{Entries: entries, CanCreate: canCreate})
				}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					state := "add"
					if e.Present {
						state = "remove"
					}
					rows = append(rows, []string{e.Tag, strconv.Itoa(e.Albums), state})
				}
				out := renderTable([]string{"Tag", "Albums", "Next action"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft})
				fmt.Fprintln(cmd.OutOrStdout(), out)
				if canCreate {
					fmt.Fprintf(cmd.OutOrStdout(), "No existing tag matches %q; `gpalbums tags add %s %s` creates it\n", filter, url, filter)
				}
				return nil
			})
		},
	}
}

func newTagsToggleCommand(ctx *commandContext, action tags.Action) *cobra.Command {
	short := "Add a tag to an album"
	if action == tags.ActionRemove {
		short = "Remove a tag from an album"
	}
	return &cobra.Command{
		Use:   action.String() + " <url> <tag>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, tag := args[0], args[1]
			return ctx.withService(func(svc *library.Service) error {
				outcome, err := svc.ToggleTag(url, tag, action)
				if err != nil {
					return err
				}
				if ctx.jsonOutput() {
					return writeJSON(cmd, struct {
						Outcome string `json:"outcome"`
					}{Outcome: outcome.String()})
				}
				switch {
				case outcome == tags.ToggleApplied && action == tags.ActionAdd:
					fmt.Fprintf(cmd.OutOrStdout(), "Added %q\n", tag)
				case outcome == tags.ToggleApplied:
					fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", tag)
				case action == tags.ActionAdd:
					fmt.Fprintf(cmd.OutOrStdout(), "Tag %q already present\n", tag)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "Tag %q not present\n", tag)
				}
				return nil
			})
		},
	}
}
