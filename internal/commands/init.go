package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bankpro-dev/bankpro/internal/config"
	"github.com/bankpro-dev/bankpro/internal/store"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger and config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir)
		},
	}

	return cmd
}

func runInit(out io.Writer, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, "bankpro.yaml")
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default()
	cfg.Ledger.Path = filepath.Join(dir, cfg.Ledger.Path)
	cfg.Ledger.AuditLog = filepath.Join(dir, cfg.Ledger.AuditLog)
	cfg.Export.Dir = filepath.Join(dir, cfg.Export.Dir)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	doc, password, err := store.New(cfg.Ledger.Path).Initialize()
	if err != nil {
		return fmt.Errorf("initializing ledger: %w", err)
	}

	fmt.Fprintf(out, "Initialized ledger at %s\n", cfg.Ledger.Path)
	fmt.Fprintf(out, "Admin username: %s\n", doc.Meta.Admin.Username)
	fmt.Fprintf(out, "Admin password: %s\n", password)
	fmt.Fprintln(out, "Store the admin password now; it is not recoverable.")
	return nil
}
