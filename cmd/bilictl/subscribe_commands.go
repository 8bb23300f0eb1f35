package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bilictl/internal/api"
	"bilictl/internal/filter"
	"bilictl/internal/resolver"
)

func newSubscribeCommand(ctx *commandContext) *cobra.Command {
	subscribeCmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe a followed entity as a video source",
	}

	subscribeCmd.AddCommand(newSubscribeFavoriteCommand(ctx))
	subscribeCmd.AddCommand(newSubscribeCollectionCommand(ctx))
	subscribeCmd.AddCommand(newSubscribeUpperCommand(ctx))

	return subscribeCmd
}

// refuseIfSubscribed rejects a subscribe when the entity already resolves to
// a configured source.
func refuseIfSubscribed(client *api.Client, cmd *cobra.Command, entity resolver.Entity) error {
	catalog, err := client.Sources(cmd.Context())
	if err != nil {
		return err
	}
	if entry := resolver.Resolve(entity, catalog); entry != nil {
		return fmt.Errorf("already subscribed as source %d (%s)", entry.ID, entry.Name)
	}
	return nil
}

func newSubscribeFavoriteCommand(ctx *commandContext) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "favorite <fid>",
		Short: "Subscribe a followed favorite list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fid, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *api.Client) error {
				followed, err := client.FollowedFavorites(cmd.Context())
				if err != nil {
					return err
				}
				var title string
				found := false
				for _, favorite := range followed.Favorites {
					if favorite.FID == fid {
						title = favorite.Title
						found = true
						break
					}
				}
				if !found {
					return fmt.Errorf("favorite %d is not in the followed list", fid)
				}
				if err := refuseIfSubscribed(client, cmd, resolver.Entity{
					Kind:     filter.SourceFavorite,
					RemoteID: fid,
					Name:     title,
				}); err != nil {
					return err
				}

				if err := client.SubscribeFavorite(cmd.Context(), api.InsertFavoriteRequest{FID: fid, Path: path}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Subscribed favorite %d (%s)\n", fid, title)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Download directory for the source")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func newSubscribeCollectionCommand(ctx *commandContext) *cobra.Command {
	var path string
	var collectionType string

	cmd := &cobra.Command{
		Use:   "collection <sid> <mid>",
		Short: "Subscribe a followed collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid, err := parseID(args[0])
			if err != nil {
				return err
			}
			mid, err := parseID(args[1])
			if err != nil {
				return err
			}
			if collectionType != "season" && collectionType != "series" {
				return fmt.Errorf("invalid collection type %q (season or series)", collectionType)
			}
			return ctx.withClient(func(client *api.Client) error {
				if err := refuseIfSubscribed(client, cmd, resolver.Entity{
					Kind:     filter.SourceCollection,
					RemoteID: sid,
				}); err != nil {
					return err
				}

				err := client.SubscribeCollection(cmd.Context(), api.InsertCollectionRequest{
					SID:            sid,
					MID:            mid,
					CollectionType: collectionType,
					Path:           path,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Subscribed collection %d\n", sid)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Download directory for the source")
	cmd.Flags().StringVar(&collectionType, "type", "season", "Collection type (season or series)")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func newSubscribeUpperCommand(ctx *commandContext) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "upper <mid>",
		Short: "Subscribe a followed uploader's submissions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mid, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *api.Client) error {
				if err := refuseIfSubscribed(client, cmd, resolver.Entity{
					Kind:     filter.SourceSubmission,
					RemoteID: mid,
				}); err != nil {
					return err
				}

				if err := client.SubscribeSubmission(cmd.Context(), api.InsertSubmissionRequest{UpperID: mid, Path: path}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Subscribed uploader %d\n", mid)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Download directory for the source")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}
