package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bilictl/internal/api"
	"bilictl/internal/statusdiff"
)

func newVideosSetStatusCommand(ctx *commandContext) *cobra.Command {
	var taskFlags []string
	var pageTaskFlags []string
	var downloadFlag string
	var paidFlag string

	cmd := &cobra.Command{
		Use:   "set-status <id>",
		Short: "Edit a video's task status vectors",
		Long: "Fetches the video, applies the requested edits to a working copy, and " +
			"submits only the slots that differ from the current state.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			download, err := parseTriState(downloadFlag)
			if err != nil {
				return err
			}
			paid, err := parseTriState(paidFlag)
			if err != nil {
				return err
			}

			return ctx.withClient(func(client *api.Client) error {
				current, err := client.GetVideo(cmd.Context(), id)
				if err != nil {
					return err
				}

				workingVideo := current.Video.DownloadStatus
				for _, raw := range taskFlags {
					index, value, err := parseSlotAssignment(raw)
					if err != nil {
						return err
					}
					workingVideo[index] = value
				}

				originalPages := make(map[int64]statusdiff.Vector, len(current.Pages))
				workingPages := make(map[int64]statusdiff.Vector, len(current.Pages))
				for _, page := range current.Pages {
					originalPages[page.ID] = page.DownloadStatus
					workingPages[page.ID] = page.DownloadStatus
				}
				for _, raw := range pageTaskFlags {
					pageID, index, value, err := parsePageAssignment(raw)
					if err != nil {
						return err
					}
					vector, ok := workingPages[pageID]
					if !ok {
						return fmt.Errorf("page %d does not belong to video %d", pageID, id)
					}
					vector[index] = value
					workingPages[pageID] = vector
				}

				workingDownload := current.Video.ShouldDownload
				if download != nil {
					workingDownload = *download
				}
				workingPaid := current.Video.IsPaidVideo
				if paid != nil {
					workingPaid = *paid
				}

				submission := statusdiff.Submission{
					VideoUpdates:   statusdiff.Diff(current.Video.DownloadStatus, workingVideo),
					PageUpdates:    statusdiff.DiffPages(originalPages, workingPages),
					ShouldDownload: statusdiff.DiffBool(current.Video.ShouldDownload, workingDownload),
					Paid:           statusdiff.DiffBool(current.Video.IsPaidVideo, workingPaid),
				}
				out := cmd.OutOrStdout()
				if err := submission.Validate(); err != nil {
					if errors.Is(err, statusdiff.ErrNoChanges) {
						fmt.Fprintf(out, "Video %d already matches the requested state\n", id)
						return nil
					}
					return err
				}

				resp, err := client.UpdateVideoStatus(cmd.Context(), id, api.UpdateVideoStatusRequest{
					VideoUpdates:   submission.VideoUpdates,
					PageUpdates:    submission.PageUpdates,
					ShouldDownload: submission.ShouldDownload,
					IsPaidVideo:    submission.Paid,
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "Updated video %d (%s)\n", resp.Video.ID, resp.Video.Name)
				if download != nil && *download && !resp.Video.ShouldDownload {
					fmt.Fprintln(out, "Download stays off: paid videos are never downloaded")
				}
				renderVectorLines(out, resp.Video.DownloadStatus, taskLabel, shouldColorize(out))
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&taskFlags, "task", "t", nil, "Video task assignment idx=value (repeatable)")
	cmd.Flags().StringSliceVarP(&pageTaskFlags, "page-task", "p", nil, "Page task assignment pageID:idx=value (repeatable)")
	cmd.Flags().StringVar(&downloadFlag, "download", "", "Set the download flag (true or false)")
	cmd.Flags().StringVar(&paidFlag, "paid", "", "Set the paid flag (true or false)")
	return cmd
}

func newVideosBatchStatusCommand(ctx *commandContext) *cobra.Command {
	var flags filterFlags
	var ids []int64
	var taskFlags []string
	var pageTaskFlags []string
	var downloadFlag string
	var paidFlag string

	cmd := &cobra.Command{
		Use:   "batch-status",
		Short: "Apply a sparse status edit across the current filter",
		Long: "Assigns the explicitly-set task slots on every video matched by the " +
			"filter flags, or on the videos named by --ids. Unset slots are untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := flags.state()
			if err != nil {
				return err
			}
			download, err := parseTriState(downloadFlag)
			if err != nil {
				return err
			}
			paid, err := parseTriState(paidFlag)
			if err != nil {
				return err
			}

			var sparse statusdiff.Sparse
			sparse.ShouldDownload = download
			sparse.Paid = paid
			for _, raw := range taskFlags {
				index, value, err := parseSlotAssignment(raw)
				if err != nil {
					return err
				}
				sparse.SetVideo(index, value)
			}
			for _, raw := range pageTaskFlags {
				index, value, err := parseSlotAssignment(raw)
				if err != nil {
					return err
				}
				sparse.SetPage(index, value)
			}

			out := cmd.OutOrStdout()
			if err := sparse.Validate(); err != nil {
				if errors.Is(err, statusdiff.ErrNoChanges) {
					fmt.Fprintln(out, "No slots assigned; nothing to submit")
					return nil
				}
				return err
			}

			return ctx.withClient(func(client *api.Client) error {
				resp, err := client.UpdateFilteredVideoStatus(cmd.Context(), api.UpdateFilteredVideoStatusRequest{
					Params:         state.ToParams(),
					VideoIDs:       ids,
					VideoUpdates:   sparse.VideoUpdates(),
					PageUpdates:    sparse.PageUpdates(),
					ShouldDownload: sparse.ShouldDownload,
					IsPaidVideo:    sparse.Paid,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Updated %d videos and %d pages\n", resp.UpdatedVideosCount, resp.UpdatedPagesCount)
				return nil
			})
		},
	}

	flags.register(cmd, false)
	cmd.Flags().Int64SliceVar(&ids, "ids", nil, "Restrict the edit to these video ids")
	cmd.Flags().StringSliceVarP(&taskFlags, "task", "t", nil, "Video task assignment idx=value (repeatable)")
	cmd.Flags().StringSliceVarP(&pageTaskFlags, "page-task", "p", nil, "Page task assignment idx=value (repeatable)")
	cmd.Flags().StringVar(&downloadFlag, "download", "", "Set the download flag (true or false)")
	cmd.Flags().StringVar(&paidFlag, "paid", "", "Set the paid flag (true or false)")
	return cmd
}
