package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bilictl/internal/api"
	"bilictl/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Local and backend configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigEditCommand(ctx))
	configCmd.AddCommand(newConfigTestNotifyCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample local configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to point server.url at your bili-sync backend.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the local configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load("")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the backend configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *api.Client) error {
				remote, err := client.GetConfig(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if key != "" {
					value, ok := remote.Lookup(key)
					if !ok {
						return fmt.Errorf("unknown config key %q", key)
					}
					encoded, err := json.MarshalIndent(value, "", "  ")
					if err != nil {
						return err
					}
					fmt.Fprintln(out, string(encoded))
					return nil
				}
				encoded, err := json.MarshalIndent(remote, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(encoded))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "Show only this dotted config key")
	return cmd
}

func newConfigEditCommand(ctx *commandContext) *cobra.Command {
	var assignments []string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit backend configuration values",
		Long: "Fetches the backend configuration, applies the --set assignments to it, " +
			"and writes the whole object back. Unknown fields on the backend survive " +
			"the round trip untouched.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(assignments) == 0 {
				return fmt.Errorf("nothing to edit (use --set key=value)")
			}
			return ctx.withClient(func(client *api.Client) error {
				remote, err := client.GetConfig(cmd.Context())
				if err != nil {
					return err
				}
				for _, assignment := range assignments {
					key, value, ok := strings.Cut(assignment, "=")
					if !ok {
						return fmt.Errorf("invalid assignment %q (expected key=value)", assignment)
					}
					if err := remote.Set(strings.TrimSpace(key), value); err != nil {
						return err
					}
				}
				if _, err := client.UpdateConfig(cmd.Context(), remote); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %d configuration values\n", len(assignments))
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVarP(&assignments, "set", "s", nil, "Assignment key=value (repeatable)")
	return cmd
}

func newConfigTestNotifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-notify",
		Short: "Send a test notification through the backend's notifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *api.Client) error {
				remote, err := client.GetConfig(cmd.Context())
				if err != nil {
					return err
				}
				notifier, ok := remote.Lookup("notifier")
				if !ok || notifier == nil {
					return fmt.Errorf("no notifier configured on the backend")
				}
				payload, err := json.Marshal(notifier)
				if err != nil {
					return err
				}
				resp, err := client.PingNotifier(cmd.Context(), payload)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				if resp.Success {
					fmt.Fprintln(out, renderStatusLine("notifier", statusOK, resp.Message, colorize))
					return nil
				}
				message := resp.Message
				if resp.Details != nil && *resp.Details != "" {
					message = fmt.Sprintf("%s (%s)", message, *resp.Details)
				}
				fmt.Fprintln(out, renderStatusLine("notifier", statusError, message, colorize))
				return nil
			})
		},
	}
}
