package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gpalbums/internal/library"
	"gpalbums/internal/search"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var tagFilter string
	var idFilter []string

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search the album collection",
		Long: "Matches every query term against normalized album titles. Tokens of the " +
			"form y:2024 or y:2023-2024 filter by year overlap instead of matching text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return ctx.withService(func(svc *library.Service) error {
				matches := svc.Search(query, search.Filters{
					Tag: strings.TrimSpace(tagFilter),
					IDs: idFilter,
				})
				if ctx.jsonOutput() {
					return writeJSON(cmd, searchResults(matches))
				}
				if len(matches) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), noMatchMessage(query, tagFilter, idFilter))
					return nil
				}
				rows := make([][]string, 0, len(matches))
				for _, m := range matches {
					rows = append(rows, []string{
						fmt.Sprintf("%d/%d", m.Position, m.Total),
						m.Title,
						m.DateDisplay,
						strings.Join(m.Tags, ", "),
						m.URL,
					})
				}
				out := renderTable(
					[]string{"#", "Title", "Date", "Tags", "URL"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&tagFilter, "tag", "", "Only albums carrying this tag")
	cmd.Flags().StringSliceVar(&idFilter, "ids", nil, "Only albums with these record IDs")

	return cmd
}

// searchResult is the JSON projection of a match, shaped for downstream
// edit actions.
type searchResult struct {
	Position  int      `json:"position"`
	Total     int      `json:"total"`
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	Tags      []string `json:"tags"`
	ItemCount *int     `json:"itemCount,omitempty"`
	DateRange string   `json:"dateRange,omitempty"`
	EditRange string   `json:"editRange,omitempty"`
}

func searchResults(matches []search.Match) []searchResult {
	results := make([]searchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, searchResult{
			Position:  m.Position,
			Total:     m.Total,
			ID:        m.Record.ID,
			Title:     m.CleanTitle,
			URL:       m.URL,
			Tags:      m.Tags,
			ItemCount: m.ItemCount,
			DateRange: m.DateDisplay,
			EditRange: m.EditRange,
		})
	}
	return results
}

func noMatchMessage(query, tag string, ids []string) string {
	switch {
	case len(ids) > 0 && query != "":
		return fmt.Sprintf("No albums in the filtered set matching: %s", query)
	case len(ids) > 0:
		return "No albums found in the filtered set"
	case tag != "" && query != "":
		return fmt.Sprintf("No albums with tag %q matching: %s", tag, query)
	case tag != "":
		return fmt.Sprintf("No albums found with tag: %s", tag)
	case query != "":
		return fmt.Sprintf("No results for: %s", query)
	default:
		return "No albums found"
	}
}
