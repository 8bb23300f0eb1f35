package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"bilictl/internal/api"
	"bilictl/internal/filter"
	"bilictl/internal/snapshot"
)

func newVideosCommand(ctx *commandContext) *cobra.Command {
	videosCmd := &cobra.Command{
		Use:   "videos",
		Short: "Inspect and manage archived videos",
	}

	videosCmd.AddCommand(newVideosListCommand(ctx))
	videosCmd.AddCommand(newVideosShowCommand(ctx))
	videosCmd.AddCommand(newVideosSetStatusCommand(ctx))
	videosCmd.AddCommand(newVideosBatchStatusCommand(ctx))
	videosCmd.AddCommand(newVideosResetCommand(ctx))
	videosCmd.AddCommand(newVideosResetFilteredCommand(ctx))
	videosCmd.AddCommand(newVideosClearResetCommand(ctx))
	videosCmd.AddCommand(newVideosRetryCommand(ctx))

	return videosCmd
}

func newVideosListCommand(ctx *commandContext) *cobra.Command {
	var flags filterFlags
	var cached bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived videos",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := flags.state()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if state.PageSize == 0 {
				state.PageSize = cfg.Output.PageSize
			}
			filter.Global.Set(state)
			key := state.Encode()
			out := cmd.OutOrStdout()

			if cached {
				return ctx.withSnapshot(func(store *snapshot.Store) error {
					if store == nil {
						return errors.New("snapshot cache is unavailable")
					}
					resp, fetchedAt, err := store.Listing(cmd.Context(), key)
					if err != nil {
						if errors.Is(err, snapshot.ErrNoSnapshot) {
							return fmt.Errorf("no cached listing for this filter; run without --cached first")
						}
						return err
					}
					fmt.Fprintf(out, "Cached listing from %s\n", fetchedAt.Format("2006-01-02 15:04:05"))
					printVideoTable(out, resp)
					return nil
				})
			}

			var resp *api.VideosResponse
			if err := ctx.withClient(func(client *api.Client) error {
				listed, err := client.ListVideos(cmd.Context(), state)
				if err != nil {
					return err
				}
				resp = listed
				return nil
			}); err != nil {
				return err
			}

			if err := ctx.withSnapshot(func(store *snapshot.Store) error {
				if store == nil {
					return nil
				}
				return store.SaveListing(cmd.Context(), key, resp)
			}); err != nil {
				ctx.ensureLogger().Warn("snapshot save failed", "error", err)
			}

			printVideoTable(out, resp)
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&cached, "cached", false, "Serve the listing from the local snapshot cache")
	return cmd
}

func printVideoTable(out io.Writer, resp *api.VideosResponse) {
	if len(resp.Videos) == 0 {
		fmt.Fprintln(out, "No videos matched")
		return
	}
	rows := make([][]string, 0, len(resp.Videos))
	for _, video := range resp.Videos {
		rows = append(rows, []string{
			strconv.FormatInt(video.ID, 10),
			video.BVID,
			video.Name,
			video.UpperName,
			yesNo(video.ShouldDownload),
			yesNo(video.IsPaidVideo),
			vectorSummary(video.DownloadStatus),
		})
	}
	table := renderTable(
		[]string{"ID", "BVID", "Title", "Upper", "Download", "Paid", "Tasks"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
	)
	fmt.Fprintln(out, table)
	fmt.Fprintf(out, "Showing %d of %d videos\n", len(resp.Videos), resp.TotalCount)
}

func newVideosShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a video with per-page task status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *api.Client) error {
				resp, err := client.GetVideo(cmd.Context(), id)
				if err != nil {
					return err
				}
				printVideoDetail(cmd.OutOrStdout(), resp)
				return nil
			})
		},
	}
}

func printVideoDetail(out io.Writer, resp *api.VideoResponse) {
	colorize := shouldColorize(out)
	video := resp.Video

	for _, line := range renderSectionHeader(video.Name, colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, renderStatusLine("id", statusInfo, strconv.FormatInt(video.ID, 10), colorize))
	fmt.Fprintln(out, renderStatusLine("bvid", statusInfo, video.BVID, colorize))
	fmt.Fprintln(out, renderStatusLine("upper", statusInfo, video.UpperName, colorize))
	fmt.Fprintln(out, renderStatusLine("download", boolStatusKind(video.ShouldDownload), yesNo(video.ShouldDownload), colorize))
	if video.IsPaidVideo {
		fmt.Fprintln(out, renderStatusLine("paid", statusWarn, "downloads disabled for paid videos", colorize))
	}
	renderVectorLines(out, video.DownloadStatus, taskLabel, colorize)

	if len(resp.Pages) == 0 {
		return
	}
	for _, line := range renderSectionHeader("Pages", colorize) {
		fmt.Fprintln(out, line)
	}
	rows := make([][]string, 0, len(resp.Pages))
	for _, page := range resp.Pages {
		rows = append(rows, []string{
			strconv.FormatInt(page.ID, 10),
			strconv.Itoa(page.PID),
			page.Name,
			vectorSummary(page.DownloadStatus),
		})
	}
	table := renderTable(
		[]string{"ID", "P", "Title", "Tasks"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft},
	)
	fmt.Fprintln(out, table)
}

func boolStatusKind(value bool) statusKind {
	if value {
		return statusOK
	}
	return statusWarn
}
