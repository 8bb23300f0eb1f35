package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bilictl/internal/api"
	"bilictl/internal/filter"
	"bilictl/internal/resolver"
)

func newFollowsCommand(ctx *commandContext) *cobra.Command {
	followsCmd := &cobra.Command{
		Use:   "follows",
		Short: "Browse followed favorites, collections, and uploaders",
	}

	followsCmd.AddCommand(newFollowsFavoritesCommand(ctx))
	followsCmd.AddCommand(newFollowsCollectionsCommand(ctx))
	followsCmd.AddCommand(newFollowsUppersCommand(ctx))

	return followsCmd
}

// resolvedLabel names the configured source a followed entity maps to, or
// flags it as not yet subscribed.
func resolvedLabel(entry *api.SourceEntry) string {
	if entry == nil {
		return "not configured"
	}
	return fmt.Sprintf("source %d (%s)", entry.ID, entry.Name)
}

func newFollowsFavoritesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List followed favorite lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *api.Client) error {
				resp, err := client.FollowedFavorites(cmd.Context())
				if err != nil {
					return err
				}
				catalog, err := client.Sources(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(resp.Favorites) == 0 {
					fmt.Fprintln(out, "No followed favorites")
					return nil
				}
				sortByName(resp.Favorites, cfg.Output.Locale, func(f api.FollowedFavorite) string { return f.Title })

				rows := make([][]string, 0, len(resp.Favorites))
				for _, favorite := range resp.Favorites {
					entry := resolver.Resolve(resolver.Entity{
						Kind:     filter.SourceFavorite,
						RemoteID: favorite.FID,
						Name:     favorite.Title,
					}, catalog)
					rows = append(rows, []string{
						strconv.FormatInt(favorite.FID, 10),
						favorite.Title,
						strconv.FormatInt(favorite.MediaCount, 10),
						resolvedLabel(entry),
					})
				}
				table := renderTable(
					[]string{"FID", "Title", "Videos", "Subscription"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
				)
				fmt.Fprintln(out, table)
				return nil
			})
		},
	}
}

func newFollowsCollectionsCommand(ctx *commandContext) *cobra.Command {
	var pageNum int
	var pageSize int

	cmd := &cobra.Command{
		Use:   "collections",
		Short: "List followed collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *api.Client) error {
				resp, err := client.FollowedCollections(cmd.Context(), pageNum, pageSize)
				if err != nil {
					return err
				}
				catalog, err := client.Sources(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(resp.Collections) == 0 {
					fmt.Fprintln(out, "No followed collections")
					return nil
				}
				sortByName(resp.Collections, cfg.Output.Locale, func(c api.FollowedCollection) string { return c.Name })

				rows := make([][]string, 0, len(resp.Collections))
				for _, collection := range resp.Collections {
					entry := resolver.Resolve(resolver.Entity{
						Kind:     filter.SourceCollection,
						RemoteID: collection.SID,
						Name:     collection.Name,
					}, catalog)
					rows = append(rows, []string{
						strconv.FormatInt(collection.SID, 10),
						strconv.FormatInt(collection.MID, 10),
						collection.Name,
						strconv.FormatInt(collection.Total, 10),
						resolvedLabel(entry),
					})
				}
				table := renderTable(
					[]string{"SID", "MID", "Name", "Videos", "Subscription"},
					rows,
					[]columnAlignment{alignRight, alignRight, alignLeft, alignRight, alignLeft},
				)
				fmt.Fprintln(out, table)
				fmt.Fprintf(out, "Showing %d of %d collections\n", len(resp.Collections), resp.Total)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&pageNum, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Rows per page")
	return cmd
}

func newFollowsUppersCommand(ctx *commandContext) *cobra.Command {
	var name string
	var pageNum int
	var pageSize int

	cmd := &cobra.Command{
		Use:   "uppers",
		Short: "List followed uploaders",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *api.Client) error {
				resp, err := client.FollowedUppers(cmd.Context(), name, pageNum, pageSize)
				if err != nil {
					return err
				}
				catalog, err := client.Sources(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(resp.Uppers) == 0 {
					fmt.Fprintln(out, "No followed uploaders matched")
					return nil
				}
				sortByName(resp.Uppers, cfg.Output.Locale, func(u api.FollowedUpper) string { return u.Name })

				rows := make([][]string, 0, len(resp.Uppers))
				for _, upper := range resp.Uppers {
					entry := resolver.Resolve(resolver.Entity{
						Kind:     filter.SourceSubmission,
						RemoteID: upper.MID,
						Name:     upper.Name,
					}, catalog)
					rows = append(rows, []string{
						strconv.FormatInt(upper.MID, 10),
						upper.Name,
						upper.Sign,
						resolvedLabel(entry),
					})
				}
				table := renderTable(
					[]string{"MID", "Name", "Bio", "Subscription"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(out, table)
				fmt.Fprintf(out, "Showing %d of %d uploaders\n", len(resp.Uppers), resp.Total)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter uploaders by name")
	cmd.Flags().IntVar(&pageNum, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "Rows per page")
	return cmd
}
