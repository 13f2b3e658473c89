package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/rafaelqm/donation-tracker/internal/finance"
	"github.com/rafaelqm/donation-tracker/internal/format"
	"github.com/rafaelqm/donation-tracker/internal/infra/sheets"
	"github.com/rafaelqm/donation-tracker/internal/ledger"
	"github.com/rafaelqm/donation-tracker/internal/logger"
	"github.com/rafaelqm/donation-tracker/internal/parse"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "p1":
		runGrowth(log)
	case "p2":
		runContribution(log)
	case "p3":
		runWithdraw(log)
	case "parse":
		runParse(log)
	case "summary":
		runSummary(log)
	case "last":
		runLast(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Donation Tracker CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  p1       Growth-only projection")
	fmt.Println("  p2       Projection with monthly contribution")
	fmt.Println("  p3       Projection withdrawing half the monthly profit")
	fmt.Println("  parse    Preview how a report text parses and computes")
	fmt.Println("  summary  Aggregate sheet rows for one period")
	fmt.Println("  last     Show the most recent sheet row")
	fmt.Println("  help     Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

// rateModelFlags registers the overridable compounding assumptions.
func rateModelFlags(fs *flag.FlagSet) (*float64, *int) {
	dailyRate := fs.Float64("daily-rate", finance.DefaultRateModel.DailyRate, "daily growth rate")
	daysPerMonth := fs.Int("days-per-month", finance.DefaultRateModel.DaysPerMonth, "trading days per month")
	return dailyRate, daysPerMonth
}

func runGrowth(log zerolog.Logger) {
	fs := flag.NewFlagSet("p1", flag.ExitOnError)
	initial := fs.Float64("initial", 0, "starting balance (USDT)")
	months := fs.Int("months", 0, "months to simulate")
	dailyRate, daysPerMonth := rateModelFlags(fs)
	fs.Parse(os.Args[2:])

	if *initial <= 0 || *months <= 0 {
		log.Fatal().Msg("Usage: cli p1 -initial 1000 -months 10")
	}

	engine := finance.NewEngine(finance.RateModel{DailyRate: *dailyRate, DaysPerMonth: *daysPerMonth})
	final, series := engine.Growth(*initial, *months)

	fmt.Printf("Final balance after %d months: %s USDT\n\n", *months, format.Money(final))
	fmt.Println(format.GrowthSeries(series, *months))
}

func runContribution(log zerolog.Logger) {
	fs := flag.NewFlagSet("p2", flag.ExitOnError)
	initial := fs.Float64("initial", 0, "starting balance (USDT)")
	months := fs.Int("months", 0, "months to simulate")
	contribution := fs.Float64("contribution", 0, "monthly contribution (USDT)")
	contribMonths := fs.Int("contribution-months", 0, "months the contribution lasts")
	dailyRate, daysPerMonth := rateModelFlags(fs)
	fs.Parse(os.Args[2:])

	if *initial <= 0 || *months <= 0 {
		log.Fatal().Msg("Usage: cli p2 -initial 1000 -months 10 -contribution 100 -contribution-months 6")
	}

	engine := finance.NewEngine(finance.RateModel{DailyRate: *dailyRate, DaysPerMonth: *daysPerMonth})
	final, series := engine.GrowthWithContribution(*initial, *months, *contribution, *contribMonths)

	fmt.Printf("Final balance after %d months: %s USDT\n\n", *months, format.Money(final))
	fmt.Println(format.GrowthSeries(series, *months))
}

func runWithdraw(log zerolog.Logger) {
	fs := flag.NewFlagSet("p3", flag.ExitOnError)
	initial := fs.Float64("initial", 0, "starting balance (USDT)")
	months := fs.Int("months", 0, "months to simulate")
	dailyRate, daysPerMonth := rateModelFlags(fs)
	fs.Parse(os.Args[2:])

	if *initial <= 0 || *months <= 0 {
		log.Fatal().Msg("Usage: cli p3 -initial 1000 -months 10")
	}

	engine := finance.NewEngine(finance.RateModel{DailyRate: *dailyRate, DaysPerMonth: *daysPerMonth})
	final, totalWithdrawn, series := engine.WithdrawHalfProfit(*initial, *months)

	fmt.Printf("Final balance after %d months: %s USDT\n", *months, format.Money(final))
	fmt.Printf("Total withdrawn: %s USDT\n\n", format.Money(totalWithdrawn))
	fmt.Println(format.WithdrawSeries(series, *months))
}

func runParse(log zerolog.Logger) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	text := fs.String("text", "", "report text (reads stdin when empty)")
	rate := fs.Float64("rate", 5.0, "USD/BRL rate to apply")
	fs.Parse(os.Args[2:])

	input := *text
	if input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read stdin")
		}
		input = string(data)
	}

	rec := parse.ParseRecord(input)
	profit, donation := finance.CalcProfit(rec.Initial, rec.Deposit, rec.Withdraw, rec.Final)

	fmt.Printf("Record: %+v\n", rec)
	fmt.Printf("Profit: %s USDT\n", format.Money(profit))
	fmt.Printf("Donation (5%%): %s USDT = R$ %s at %.4f\n",
		format.Money(donation), format.Money(finance.ConvertDonation(donation, *rate)), *rate)

	if rec.Period == "" {
		fmt.Println("\nWarning: the record has no period and would be rejected by the bot.")
	}
}

func runSummary(log zerolog.Logger) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	period := fs.String("period", "", "period label, e.g. 02/2026")
	submitter := fs.String("submitter", "", "optional Telegram ID to scope the summary")
	fs.Parse(os.Args[2:])

	if *period == "" {
		log.Fatal().Msg("Usage: cli summary -period 02/2026 [-submitter 12345]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	store := storeFromEnv(ctx, log)
	header, rows, err := store.Fetch(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch sheet")
	}

	schema, err := ledger.BindSchema(header)
	if err != nil {
		log.Fatal().Err(err).Msg("Sheet header does not match the expected schema")
	}

	agg := ledger.Summarize(schema, rows, ledger.Filter{Period: *period, SubmitterID: *submitter})
	fmt.Printf("Rows: %d\n", agg.Count)
	fmt.Printf("Profit total: %s USDT\n", format.Money(agg.Profit))
	fmt.Printf("Donation total: %s USDT / R$ %s\n", format.Money(agg.DonationUSDT), format.Money(agg.DonationBRL))
}

func runLast(log zerolog.Logger) {
	fs := flag.NewFlagSet("last", flag.ExitOnError)
	fs.Parse(os.Args[2:])

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	store := storeFromEnv(ctx, log)
	header, rows, err := store.Fetch(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch sheet")
	}
	if len(rows) == 0 {
		fmt.Println("The sheet has no rows yet.")
		return
	}

	schema, err := ledger.BindSchema(header)
	if err != nil {
		log.Fatal().Err(err).Msg("Sheet header does not match the expected schema")
	}

	last := rows[len(rows)-1]
	fmt.Printf("%s | %s | %s | profit %s USDT\n",
		ledger.Cell(last, schema.Timestamp),
		ledger.Cell(last, schema.City),
		ledger.Cell(last, schema.Period),
		ledger.Cell(last, schema.Profit),
	)
}

func storeFromEnv(ctx context.Context, log zerolog.Logger) *sheets.Store {
	sheetID := os.Getenv("GOOGLE_SHEET_ID")
	credentials := os.Getenv("GOOGLE_SERVICE_JSON")
	if sheetID == "" || credentials == "" {
		log.Fatal().Msg("GOOGLE_SHEET_ID and GOOGLE_SERVICE_JSON are required")
	}

	tab := os.Getenv("SHEET_TAB_NAME")
	if tab == "" {
		tab = "Registros"
	}

	store, err := sheets.NewStore(ctx, sheetID, tab, []byte(credentials))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheet store")
	}
	return store
}
