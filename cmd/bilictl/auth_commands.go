package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bilictl/internal/api"
	"bilictl/internal/auth"
)

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login <token>",
		Short: "Store the backend auth token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := strings.TrimSpace(args[0])
			if token == "" {
				return errors.New("token must not be empty")
			}
			tokens, err := ctx.tokenStore()
			if err != nil {
				return err
			}
			if err := tokens.Save(auth.State{Token: token, SavedAt: time.Now()}); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if skipVerify {
				fmt.Fprintln(out, "Token stored")
				return nil
			}
			err = ctx.withClient(func(client *api.Client) error {
				_, err := client.Sources(cmd.Context())
				return err
			})
			if err != nil {
				if errors.Is(err, api.ErrUnauthorized) {
					return errors.New("backend rejected the token")
				}
				return err
			}
			fmt.Fprintln(out, "Token stored and verified")
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "no-verify", false, "Store the token without checking it against the backend")
	return cmd
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored auth token",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := ctx.tokenStore()
			if err != nil {
				return err
			}
			if err := tokens.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token discarded")
			return nil
		},
	}
}
