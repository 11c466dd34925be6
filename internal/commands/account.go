package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bankpro-dev/bankpro/internal/ledger"
)

const historyTail = 10

func newAccountCommand(configPath *string) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}
	accountCmd.AddCommand(newAccountCreateCommand(configPath))
	accountCmd.AddCommand(newAccountShowCommand(configPath))
	accountCmd.AddCommand(newAccountSearchCommand(configPath))
	accountCmd.AddCommand(newAccountListCommand(configPath))
	accountCmd.AddCommand(newAccountStatementCommand(configPath))
	return accountCmd
}

func newAccountCreateCommand(configPath *string) *cobra.Command {
	var params ledger.CreateParams

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openLedger(cmd, *configPath)
			if err != nil {
				return err
			}

			acct, err := svc.CreateAccount(params)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account created. Account No: %s\n", acct.AccountNo)
			fmt.Fprintln(cmd.OutOrStdout(), "Remember your account number and PIN; the PIN is stored hashed.")
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "full name (required)")
	cmd.Flags().IntVar(&params.Age, "age", 0, "age, must be 18+ (required)")
	cmd.Flags().StringVar(&params.Mobile, "mobile", "", "mobile, 10 digits (required)")
	cmd.Flags().StringVar(&params.Email, "email", "", "email address")
	cmd.Flags().StringVar(&params.Aadhaar, "aadhaar", "", "aadhaar, 12 digits (required)")
	cmd.Flags().StringVar(&params.PAN, "pan", "", "PAN, 10 characters (required)")
	cmd.Flags().StringVar(&params.Address, "address", "", "postal address")
	cmd.Flags().StringVar(&params.Pin, "pin", "", "4-digit PIN (required)")
	for _, f := range []string{"name", "age", "mobile", "aadhaar", "pan", "pin"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}

func newAccountShowCommand(configPath *string) *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "show <account-no>",
		Short: "Show account details and recent transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openLedger(cmd, *configPath)
			if err != nil {
				return err
			}

			acct, err := svc.Details(args[0], pin)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:       %s\n", acct.Name)
			fmt.Fprintf(out, "Account No: %s\n", acct.AccountNo)
			fmt.Fprintf(out, "Balance:    %s\n", acct.Balance.StringFixed(2))
			fmt.Fprintf(out, "Created:    %s\n", acct.CreatedAt.Format("2006-01-02 15:04:05"))

			txs := acct.Transactions
			if len(txs) > historyTail {
				txs = txs[len(txs)-historyTail:]
			}
			if len(txs) > 0 {
				fmt.Fprintln(out, "\nRecent transactions:")
			}
			for i := len(txs) - 1; i >= 0; i-- {
				tx := txs[i]
				fmt.Fprintf(out, "  [%s] %s %s -> balance %s (%s)\n",
					tx.Timestamp.Format("2006-01-02 15:04:05"),
					tx.Type, tx.Amount.StringFixed(2), tx.BalanceAfter.StringFixed(2), tx.Note)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "4-digit PIN (required)")
	_ = cmd.MarkFlagRequired("pin")

	return cmd
}

func newAccountSearchCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search accounts by name or account-number substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openLedger(cmd, *configPath)
			if err != nil {
				return err
			}

			matches := svc.Search(args[0])
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matches.")
				return nil
			}
			printSummaries(cmd.OutOrStdout(), matches)
			return nil
		},
	}

	return cmd
}

func newAccountListCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openLedger(cmd, *configPath)
			if err != nil {
				return err
			}

			summaries := svc.Summaries()
			if len(summaries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No accounts yet.")
				return nil
			}
			printSummaries(cmd.OutOrStdout(), summaries)
			return nil
		},
	}

	return cmd
}

func newAccountStatementCommand(configPath *string) *cobra.Command {
	var pin string
	var outPath string

	cmd := &cobra.Command{
		Use:   "statement <account-no>",
		Short: "Export an account's transaction history as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openLedger(cmd, *configPath)
			if err != nil {
				return err
			}

			acct, err := svc.Details(args[0], pin)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating statement file: %w", err)
				}
				defer f.Close()
				w = f
			}
			return ledger.WriteStatement(w, acct)
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "4-digit PIN (required)")
	_ = cmd.MarkFlagRequired("pin")
	cmd.Flags().StringVar(&outPath, "out", "", "write to file instead of stdout")

	return cmd
}

func printSummaries(out io.Writer, summaries []ledger.Summary) {
	for _, s := range summaries {
		fmt.Fprintf(out, "%s | %s | %s | %s\n",
			s.AccountNo, s.Name, s.Balance.StringFixed(2), s.CreatedAt.Format("2006-01-02"))
	}
}
