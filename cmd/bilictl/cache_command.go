package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bilictl/internal/snapshot"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local listing snapshot cache",
	}

	cacheCmd.AddCommand(newCacheClearCommand(ctx))
	return cacheCmd
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop all cached listings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSnapshot(func(store *snapshot.Store) error {
				if store == nil {
					return errors.New("snapshot cache is unavailable")
				}
				if err := store.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Snapshot cache cleared")
				return nil
			})
		},
	}
}
