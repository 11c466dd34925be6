package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankpro-dev/bankpro/internal/admin"
	"github.com/bankpro-dev/bankpro/internal/config"
)

func newAdminCommand(configPath *string) *cobra.Command {
	var username, password string

	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations (credentials required)",
	}
	adminCmd.PersistentFlags().StringVar(&username, "username", "", "admin username (required)")
	adminCmd.PersistentFlags().StringVar(&password, "password", "", "admin password (required)")
	_ = adminCmd.MarkPersistentFlagRequired("username")
	_ = adminCmd.MarkPersistentFlagRequired("password")

	adminCmd.AddCommand(newAdminListCommand(configPath, &username, &password))
	adminCmd.AddCommand(newAdminTotalsCommand(configPath, &username, &password))
	adminCmd.AddCommand(newAdminDeleteCommand(configPath, &username, &password))
	adminCmd.AddCommand(newAdminRotateCommand(configPath, &username, &password))
	adminCmd.AddCommand(newAdminExportCommand(configPath, &username, &password))

	return adminCmd
}

// openAdmin loads the services and authenticates before any admin
// operation runs.
func openAdmin(cmd *cobra.Command, configPath, username, password string) (*admin.Service, *config.Config, error) {
	led, cfg, err := openLedger(cmd, configPath)
	if err != nil {
		return nil, nil, err
	}
	svc := admin.NewService(led, cfg.Ledger.AuditLog)
	if err := svc.Authenticate(username, password); err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

func newAdminListCommand(configPath, username, password *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openAdmin(cmd, *configPath, *username, *password)
			if err != nil {
				return err
			}

			summaries := svc.ListAccounts()
			fmt.Fprintf(cmd.OutOrStdout(), "Total accounts: %d\n", len(summaries))
			printSummaries(cmd.OutOrStdout(), summaries)
			return nil
		},
	}
}

func newAdminTotalsCommand(configPath, username, password *string) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show aggregate balances across the bank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openAdmin(cmd, *configPath, *username, *password)
			if err != nil {
				return err
			}

			count, total := svc.Totals()
			fmt.Fprintf(cmd.OutOrStdout(), "Total accounts: %d\n", count)
			fmt.Fprintf(cmd.OutOrStdout(), "Total balance:  %s\n", total.StringFixed(2))
			return nil
		},
	}
}

func newAdminDeleteCommand(configPath, username, password *string) *cobra.Command {
	var confirm string

	cmd := &cobra.Command{
		Use:   "delete <account-no>",
		Short: "Delete an account permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openAdmin(cmd, *configPath, *username, *password)
			if err != nil {
				return err
			}

			if err := svc.DeleteAccount(*username, args[0], confirm); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account %s deleted.\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&confirm, "confirm", "", `type DELETE to confirm (required)`)
	_ = cmd.MarkFlagRequired("confirm")

	return cmd
}

func newAdminRotateCommand(configPath, username, password *string) *cobra.Command {
	var newUsername, newPassword string

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Change the admin credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openAdmin(cmd, *configPath, *username, *password)
			if err != nil {
				return err
			}

			if err := svc.RotateCredentials(*username, newUsername, newPassword); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Admin credentials updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&newUsername, "new-username", "", "new admin username (required)")
	_ = cmd.MarkFlagRequired("new-username")
	cmd.Flags().StringVar(&newPassword, "new-password", "", "new admin password (required)")
	_ = cmd.MarkFlagRequired("new-password")

	return cmd
}

func newAdminExportCommand(configPath, username, password *string) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a timestamped copy of the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := openAdmin(cmd, *configPath, *username, *password)
			if err != nil {
				return err
			}

			exportDir := cfg.Export.Dir
			if dir != "" {
				exportDir = dir
			}
			path, err := svc.Export(*username, exportDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ledger exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "export directory (defaults to the configured one)")

	return cmd
}
