package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/custodialabs/payout-backend/internal/journal"
	"github.com/custodialabs/payout-backend/internal/ledger"
	"github.com/custodialabs/payout-backend/internal/metrics"
	"github.com/custodialabs/payout-backend/internal/service"
	"github.com/custodialabs/payout-backend/internal/transport"
)

var config struct {
	Addr           string `long:"addr" env:"PAYOUT_ADDR" description:"listen addr" default:":8080"`
	LedgerURL      string `long:"ledger-url" env:"PAYOUT_LEDGER_URL" description:"ledger api base url" default:"https://ledger.example.com"`
	AppID          string `long:"app-id" env:"PAYOUT_APP_ID" description:"ledger app id"`
	SessionKey     string `long:"session-key" env:"PAYOUT_SESSION_KEY" description:"ledger session key"`
	SpendKey       string `long:"spend-key" env:"PAYOUT_SPEND_KEY" description:"withdrawal spend key"`
	FeeDestination string `long:"fee-destination" env:"PAYOUT_FEE_DESTINATION" description:"platform fee collection destination"`
	JournalPath    string `long:"journal-path" env:"PAYOUT_JOURNAL_PATH" description:"withdrawal journal db path" default:"payout-journal.db"`
	LedgerRPS      int    `long:"ledger-rps" env:"PAYOUT_LEDGER_RPS" description:"ledger api rate limit" default:"10"`
	BalanceWorkers int    `long:"balance-workers" env:"PAYOUT_BALANCE_WORKERS" description:"concurrent price lookups" default:"8"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}
	if config.SpendKey == "" {
		logger.Fatal("Spend key is required")
	}

	client, err := ledger.New(ledger.Config{
		BaseURL:    config.LedgerURL,
		AppID:      config.AppID,
		SessionKey: config.SessionKey,
	}, logger)
	if err != nil {
		logger.Fatal("Configure ledger client", zap.Error(err))
	}
	api := ledger.NewObserved(client, metrics.NewLedgerClient(), config.LedgerRPS)

	store, err := journal.Open(config.JournalPath, logger)
	if err != nil {
		logger.Fatal("Open withdrawal journal", zap.Error(err))
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("Close withdrawal journal", zap.Error(closeErr))
		}
	}()

	resolver := service.NewFeeResolver(api, logger)
	builder := service.NewRecipientBuilder(api, config.SpendKey, logger)
	assembler := service.NewTransactionAssembler(api, config.SpendKey, logger)
	withdrawals, err := service.NewWithdrawalService(
		api, resolver, builder, assembler, store,
		metrics.NewWithdrawal(), config.FeeDestination, logger,
	)
	if err != nil {
		logger.Fatal("Construct withdrawal service", zap.Error(err))
	}
	balances := service.NewBalanceService(api, metrics.NewBalance(), config.BalanceWorkers, logger)

	mux := http.NewServeMux()
	transport.NewHandler(withdrawals, balances, store, logger).Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
