package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rafaelqm/donation-tracker/internal/bot"
	"github.com/rafaelqm/donation-tracker/internal/finance"
	"github.com/rafaelqm/donation-tracker/internal/fx"
	"github.com/rafaelqm/donation-tracker/internal/infra/sheets"
	"github.com/rafaelqm/donation-tracker/internal/logger"
)

const defaultTab = "Registros"

func main() {
	log := logger.New()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal().Msg("BOT_TOKEN is required")
	}

	sheetID := os.Getenv("GOOGLE_SHEET_ID")
	if sheetID == "" {
		log.Fatal().Msg("GOOGLE_SHEET_ID is required")
	}

	tab := os.Getenv("SHEET_TAB_NAME")
	if tab == "" {
		tab = defaultTab
	}

	credentials := os.Getenv("GOOGLE_SERVICE_JSON")
	if credentials == "" {
		log.Fatal().Msg("GOOGLE_SERVICE_JSON is required (service account JSON document)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	store, err := sheets.NewStore(ctx, sheetID, tab, []byte(credentials))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheet store")
	}

	handler := bot.NewHandler(store, fx.NewClient(), finance.NewEngine(finance.DefaultRateModel), log)

	b, err := bot.New(token, handler, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	// Stop polling on SIGINT/SIGTERM; in-flight invocations finish first.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("Shutting down")
		cancel()
	}()

	log.Info().Str("tab", tab).Msg("Starting donation tracker bot")
	if err := b.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Bot stopped with error")
	}
	log.Info().Msg("Bot exited")
}
