package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/bankpro-dev/bankpro/internal/ledger"
)

func newDepositCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit <account-no> <amount>",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			svc, _, err := openLedger(cmd, *configPath)
			if err != nil {
				return err
			}

			acct, err := svc.Deposit(args[0], amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deposit successful. New balance: %s\n", acct.Balance.StringFixed(2))
			return nil
		},
	}

	return cmd
}

func newWithdrawCommand(configPath *string) *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "withdraw <account-no> <amount>",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			svc, _, err := openLedger(cmd, *configPath)
			if err != nil {
				return err
			}

			acct, err := svc.Withdraw(args[0], pin, amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Withdrawal successful. New balance: %s\n", acct.Balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "4-digit PIN (required)")
	_ = cmd.MarkFlagRequired("pin")

	return cmd
}

func newTransferCommand(configPath *string) *cobra.Command {
	var pin string

	cmd := &cobra.Command{
		Use:   "transfer <from-account> <to-account> <amount>",
		Short: "Transfer between two accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}

			svc, _, err := openLedger(cmd, *configPath)
			if err != nil {
				return err
			}

			from, err := svc.Transfer(args[0], pin, args[1], amount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Transfer completed. Source balance: %s\n", from.Balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&pin, "pin", "", "4-digit PIN of the source account (required)")
	_ = cmd.MarkFlagRequired("pin")

	return cmd
}

func newInterestCommand(configPath *string) *cobra.Command {
	var rateStr, yearsStr string
	var apply bool

	cmd := &cobra.Command{
		Use:   "interest <account-no>",
		Short: "Preview simple interest, optionally apply it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := decimal.NewFromString(rateStr)
			if err != nil {
				return fmt.Errorf("invalid rate %q: %w", rateStr, err)
			}
			years, err := decimal.NewFromString(yearsStr)
			if err != nil {
				return fmt.Errorf("invalid years %q: %w", yearsStr, err)
			}

			svc, _, err := openLedger(cmd, *configPath)
			if err != nil {
				return err
			}

			quote, err := svc.InterestPreview(args[0], rate, years)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Principal: %s\n", quote.Principal.StringFixed(2))
			fmt.Fprintf(out, "Interest for %s yrs at %s%%: %s\n", years, rate, quote.Interest.StringFixed(2))

			if !apply {
				fmt.Fprintln(out, "Re-run with --apply to credit the interest.")
				return nil
			}

			acct, err := svc.ApplyInterest(args[0], rate, years)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Interest applied. New balance: %s\n", acct.Balance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&rateStr, "rate", "", "annual interest rate in percent (required)")
	_ = cmd.MarkFlagRequired("rate")
	cmd.Flags().StringVar(&yearsStr, "years", "", "duration in years (required)")
	_ = cmd.MarkFlagRequired("years")
	cmd.Flags().BoolVar(&apply, "apply", false, "credit the computed interest to the account")

	return cmd
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, ledger.ErrInvalidAmount)
	}
	return amount, nil
}
