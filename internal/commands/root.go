package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/bankpro-dev/bankpro/internal/buildinfo"
	"github.com/bankpro-dev/bankpro/internal/config"
	"github.com/bankpro-dev/bankpro/internal/ledger"
	"github.com/bankpro-dev/bankpro/internal/logger"
	"github.com/bankpro-dev/bankpro/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "bankpro",
		Short:   "Account management over a JSON-backed ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Initialize(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "bankpro.yaml", "path to bankpro.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountCommand(&configPath))
	rootCmd.AddCommand(newDepositCommand(&configPath))
	rootCmd.AddCommand(newWithdrawCommand(&configPath))
	rootCmd.AddCommand(newTransferCommand(&configPath))
	rootCmd.AddCommand(newInterestCommand(&configPath))
	rootCmd.AddCommand(newAdminCommand(&configPath))

	return rootCmd
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist so the tool works out of the box in the current directory.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLedger loads the config and the ledger service it points at. When
// loading had to create a fresh ledger, the generated admin credentials
// are printed to the command's error stream; this is the only time the
// password is recoverable.
func openLedger(cmd *cobra.Command, configPath string) (*ledger.Service, *config.Config, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	svc, err := ledger.NewService(store.New(cfg.Ledger.Path))
	if err != nil {
		return nil, nil, err
	}
	if password := svc.GeneratedPassword(); password != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Initialized fresh ledger at %s\n", cfg.Ledger.Path)
		fmt.Fprintf(cmd.ErrOrStderr(), "Admin username: %s\n", store.DefaultAdminUsername)
		fmt.Fprintf(cmd.ErrOrStderr(), "Admin password: %s\n", password)
	}
	return svc, cfg, nil
}
