package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bilictl/internal/api"
)

func newVideosResetCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset <id>",
		Short: "Reset a video's failed tasks to not started",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *api.Client) error {
				resp, err := client.ResetVideoStatus(cmd.Context(), id, force)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !resp.Resetted {
					fmt.Fprintf(out, "Video %d had nothing to reset\n", id)
					return nil
				}
				fmt.Fprintf(out, "Reset video %d (%s), %d pages touched\n", resp.Video.ID, resp.Video.Name, len(resp.Pages))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Also reset completed tasks")
	return cmd
}

func newVideosResetFilteredCommand(ctx *commandContext) *cobra.Command {
	var flags filterFlags
	var force bool

	cmd := &cobra.Command{
		Use:   "reset-filtered",
		Short: "Reset every video matched by the filter flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := flags.state()
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *api.Client) error {
				resp, err := client.ResetFilteredVideoStatus(cmd.Context(), api.ResetFilteredVideoStatusRequest{
					Params: state.ToParams(),
					Force:  force,
				})
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !resp.Resetted {
					fmt.Fprintln(out, "No videos had anything to reset")
					return nil
				}
				fmt.Fprintf(out, "Reset %d videos and %d pages\n", resp.ResettedVideosCount, resp.ResettedPagesCount)
				return nil
			})
		},
	}

	flags.register(cmd, false)
	cmd.Flags().BoolVar(&force, "force", false, "Also reset completed tasks")
	return cmd
}

func newVideosClearResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-reset <id>",
		Short: "Delete a video's downloaded files and reset all of its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *api.Client) error {
				resp, err := client.ClearAndResetVideoStatus(cmd.Context(), id)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Cleared and reset video %d (%s)\n", resp.Video.ID, resp.Video.Name)
				if resp.Warning != nil && *resp.Warning != "" {
					fmt.Fprintln(out, renderStatusLine("warning", statusWarn, *resp.Warning, shouldColorize(out)))
				}
				return nil
			})
		},
	}
}

func newVideosRetryCommand(ctx *commandContext) *cobra.Command {
	var taskIndex int

	cmd := &cobra.Command{
		Use:   "retry <id>",
		Short: "Retry a single video task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := validateTaskIndex(taskIndex); err != nil {
				return err
			}
			return ctx.withClient(func(client *api.Client) error {
				resp, err := client.RetryVideoTask(cmd.Context(), id, taskIndex)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Queued %s retry for video %d (%s)\n",
					taskLabel(taskIndex), resp.Video.ID, resp.Video.Name)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&taskIndex, "task", "t", 0, "Task index to retry (0-4)")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}

func newPagesCommand(ctx *commandContext) *cobra.Command {
	pagesCmd := &cobra.Command{
		Use:   "pages",
		Short: "Manage individual video pages",
	}

	pagesCmd.AddCommand(newPagesRetryCommand(ctx))
	return pagesCmd
}

func newPagesRetryCommand(ctx *commandContext) *cobra.Command {
	var taskIndex int

	cmd := &cobra.Command{
		Use:   "retry <id>",
		Short: "Retry a single page task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := validateTaskIndex(taskIndex); err != nil {
				return err
			}
			return ctx.withClient(func(client *api.Client) error {
				resp, err := client.RetryPageTask(cmd.Context(), id, taskIndex)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Queued %s retry for page %d of video %d\n",
					pageTaskLabel(taskIndex), id, resp.Video.ID)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&taskIndex, "task", "t", 0, "Task index to retry (0-4)")
	_ = cmd.MarkFlagRequired("task")
	return cmd
}
