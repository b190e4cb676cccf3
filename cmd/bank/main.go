package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/iho/minibank/internal/adapter/repository/memory"
	"github.com/iho/minibank/internal/infrastructure/config"
	"github.com/iho/minibank/internal/infrastructure/logger"
	"github.com/iho/minibank/internal/infrastructure/metrics"
	"github.com/iho/minibank/internal/usecase"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bank",
		Short: "Interactive in-memory bank teller",
		Long:  `An interactive text-menu simulation of a bank: register customers, open checking accounts, move money and print statements. All state lives in memory for the lifetime of the process.`,
		RunE:  run,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The operator dialog owns stdout; logs go to stderr.
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, os.Stderr)
	m := metrics.New(prometheus.DefaultRegisterer)

	customerRepo := memory.NewCustomerRepository()
	accountRepo := memory.NewAccountRepository()
	idGen := memory.NewULIDGenerator()

	policy := usecase.AccountPolicy{
		Branch:         cfg.BranchCode,
		WithdrawalCap:  cfg.WithdrawalCapDecimal(),
		MaxWithdrawals: cfg.MaxWithdrawals,
	}

	customerUC := usecase.NewCustomerUseCase(customerRepo, idGen, m, log)
	accountUC := usecase.NewAccountUseCase(customerRepo, accountRepo, policy, m, log)
	tellerUC := usecase.NewTellerUseCase(customerRepo, m, log)

	log.Info().Str("branch", cfg.BranchCode).Msg("bank started")

	menu := newMenu(os.Stdin, os.Stdout, customerUC, accountUC, tellerUC)
	return menu.run(cmd.Context())
}
