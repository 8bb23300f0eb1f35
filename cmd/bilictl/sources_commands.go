package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bilictl/internal/api"
	"bilictl/internal/filter"
)

func newSourcesCommand(ctx *commandContext) *cobra.Command {
	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "Inspect configured video sources",
	}

	sourcesCmd.AddCommand(newSourcesListCommand(ctx))
	return sourcesCmd
}

func newSourcesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured video sources by type",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *api.Client) error {
				catalog, err := client.Sources(cmd.Context())
				if err != nil {
					return err
				}

				sections := []struct {
					kind    filter.SourceType
					entries []api.SourceEntry
				}{
					{filter.SourceFavorite, catalog.Favorites},
					{filter.SourceCollection, catalog.Collections},
					{filter.SourceSubmission, catalog.Submissions},
					{filter.SourceWatchLater, catalog.WatchLater},
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				empty := true
				for _, section := range sections {
					if len(section.entries) == 0 {
						continue
					}
					empty = false
					sortByName(section.entries, cfg.Output.Locale, func(e api.SourceEntry) string { return e.Name })

					for _, line := range renderSectionHeader(string(section.kind), colorize) {
						fmt.Fprintln(out, line)
					}
					rows := make([][]string, 0, len(section.entries))
					for _, entry := range section.entries {
						rows = append(rows, []string{
							strconv.FormatInt(entry.ID, 10),
							strconv.FormatInt(entry.RemoteID, 10),
							entry.Name,
							entry.Path,
							yesNo(entry.Enabled),
						})
					}
					table := renderTable(
						[]string{"ID", "Remote ID", "Name", "Path", "Enabled"},
						rows,
						[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft},
					)
					fmt.Fprintln(out, table)
				}
				if empty {
					fmt.Fprintln(out, "No video sources configured")
				}
				return nil
			})
		},
	}
}
