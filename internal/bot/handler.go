package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rafaelqm/donation-tracker/internal/finance"
	"github.com/rafaelqm/donation-tracker/internal/format"
	"github.com/rafaelqm/donation-tracker/internal/fx"
	"github.com/rafaelqm/donation-tracker/internal/ledger"
	"github.com/rafaelqm/donation-tracker/internal/parse"
)

// timestampLayout is the Data/Hora format stored on the sheet.
const timestampLayout = "02/01/2006 15:04"

// Handler implements the command surface independent of the chat transport.
// Every method is a stateless computation: fetch what it needs, compute,
// reply. Errors are typed (see errors.go) so the transport can render them.
type Handler struct {
	store  ledger.RowStore
	rates  fx.RateSource
	engine *finance.Engine
	now    func() time.Time
	log    zerolog.Logger
}

func NewHandler(store ledger.RowStore, rates fx.RateSource, engine *finance.Engine, log zerolog.Logger) *Handler {
	return &Handler{
		store:  store,
		rates:  rates,
		engine: engine,
		now:    time.Now,
		log:    log,
	}
}

// Start returns the onboarding text with both input syntaxes and every
// command.
func (h *Handler) Start() string {
	return startText
}

// Register parses a free-text report, computes profit and donation at the
// current exchange rate, and appends one row to the ledger.
func (h *Handler) Register(ctx context.Context, submitterID, submitterHandle, text string) (string, error) {
	rec := parse.ParseRecord(text)

	if rec.Period == "" {
		return "", &ValidationError{Field: ledger.ColPeriod, Hint: "ex: 02/2026"}
	}

	rate, err := h.rates.USDBRL(ctx)
	if err != nil {
		return "", &ServiceError{Op: "cotação USD/BRL", Err: err}
	}

	profit, donation := finance.CalcProfit(rec.Initial, rec.Deposit, rec.Withdraw, rec.Final)
	donationBRL := finance.ConvertDonation(donation, rate)

	row := ledger.Row{
		Timestamp:    h.now().Format(timestampLayout),
		SubmitterID:  submitterID,
		Submitter:    submitterHandle,
		City:         rec.City,
		Name:         rec.Name,
		AccountID:    rec.AccountID,
		Period:       rec.Period,
		Initial:      rec.Initial,
		Deposit:      rec.Deposit,
		Withdraw:     rec.Withdraw,
		Final:        rec.Final,
		Profit:       profit,
		DonationUSDT: donation,
		Rate:         rate,
		DonationBRL:  donationBRL,
		Note:         rec.Note,
	}

	if err := h.store.Append(ctx, row); err != nil {
		return "", &ServiceError{Op: "gravação na planilha", Err: err}
	}

	h.log.Info().
		Str("submitter_id", submitterID).
		Str("period", rec.Period).
		Float64("profit", profit).
		Msg("Row registered")

	city := rec.City
	if city == "" {
		city = "-"
	}
	return "✅ Registrado na planilha!\n" +
		fmt.Sprintf("Cidade: %s\n", city) +
		fmt.Sprintf("Ganhos (USDT): %s\n", format.Money(profit)) +
		fmt.Sprintf("Doação 5%% (USDT): %s\n", format.Money(donation)) +
		fmt.Sprintf("USD/BRL: %.4f\n", rate) +
		fmt.Sprintf("Doação 5%% (BRL): R$ %s", format.Money(donationBRL)), nil
}

// LastRecord renders the most recently appended row.
func (h *Handler) LastRecord(ctx context.Context) (string, error) {
	header, rows, err := h.store.Fetch(ctx)
	if err != nil {
		return "", &ServiceError{Op: "leitura da planilha", Err: err}
	}
	if len(rows) == 0 {
		return "Ainda não tem registros na planilha.", nil
	}

	schema, err := ledger.BindSchema(header)
	if err != nil {
		return "", err
	}

	return "📌 Último registro:\n" + rowSummary(schema, rows[len(rows)-1]), nil
}

// Summary aggregates every submitter's rows for one period.
func (h *Handler) Summary(ctx context.Context, args string) (string, error) {
	period := firstField(args)
	if period == "" {
		return "", &UsageError{Help: summaryHelp}
	}

	header, rows, err := h.store.Fetch(ctx)
	if err != nil {
		return "", &ServiceError{Op: "leitura da planilha", Err: err}
	}
	if len(rows) == 0 {
		return "Ainda não tem registros.", nil
	}

	schema, err := ledger.BindSchema(header)
	if err != nil {
		return "", err
	}

	agg := ledger.Summarize(schema, rows, ledger.Filter{Period: period})
	if agg.Count == 0 {
		return fmt.Sprintf("Não encontrei registros para %s.", period), nil
	}
	return aggregateReply("Resumo geral", period, agg), nil
}

// MyRecords renders the submitter's five most recent rows.
func (h *Handler) MyRecords(ctx context.Context, submitterID string) (string, error) {
	header, rows, err := h.store.Fetch(ctx)
	if err != nil {
		return "", &ServiceError{Op: "leitura da planilha", Err: err}
	}
	if len(rows) == 0 {
		return "Ainda não tem registros.", nil
	}

	schema, err := ledger.BindSchema(header)
	if err != nil {
		return "", err
	}

	mine := ledger.Select(schema, rows, ledger.Filter{SubmitterID: submitterID})
	if len(mine) == 0 {
		return "Você ainda não tem registros.", nil
	}

	if len(mine) > 5 {
		mine = mine[len(mine)-5:]
	}
	summaries := make([]string, len(mine))
	for i, row := range mine {
		summaries[i] = rowSummary(schema, row)
	}
	return "📌 Seus últimos registros:\n\n" + strings.Join(summaries, "\n\n"), nil
}

// MySummary aggregates one submitter's rows for one period.
func (h *Handler) MySummary(ctx context.Context, submitterID, args string) (string, error) {
	period := firstField(args)
	if period == "" {
		return "", &UsageError{Help: mySummaryHelp}
	}

	header, rows, err := h.store.Fetch(ctx)
	if err != nil {
		return "", &ServiceError{Op: "leitura da planilha", Err: err}
	}
	if len(rows) == 0 {
		return "Ainda não tem registros.", nil
	}

	schema, err := ledger.BindSchema(header)
	if err != nil {
		return "", err
	}

	agg := ledger.Summarize(schema, rows, ledger.Filter{Period: period, SubmitterID: submitterID})
	if agg.Count == 0 {
		return fmt.Sprintf("Você não tem registros em %s.", period), nil
	}
	return aggregateReply("Seu resumo", period, agg), nil
}

// ProjectionGrowth runs the growth-only simulation (/p1).
func (h *Handler) ProjectionGrowth(args string) (string, error) {
	nums := numbers(args)
	if len(nums) < 2 {
		return "", &UsageError{Help: growthHelp}
	}

	initial, months := nums[0], int(nums[1])
	if err := checkProjection(growthHelp, months, initial); err != nil {
		return "", err
	}

	final, series := h.engine.Growth(initial, months)

	return "📈 Projeção 1 — só crescimento\n" +
		fmt.Sprintf("Você começou com: %s USDT\n", format.Money(initial)) +
		fmt.Sprintf("Tempo: %d meses\n", months) +
		h.ruleLine() + "\n\n" +
		fmt.Sprintf("🏁 Resultado final estimado: %s USDT\n\n", format.Money(final)) +
		"📌 Evolução mês a mês:\n" + format.GrowthSeries(series, months), nil
}

// ProjectionWithContribution runs the monthly-contribution simulation (/p2).
func (h *Handler) ProjectionWithContribution(args string) (string, error) {
	nums := numbers(args)
	if len(nums) < 4 {
		return "", &UsageError{Help: contributionHelp}
	}

	initial, monthsTotal := nums[0], int(nums[1])
	contribution, monthsContributing := nums[2], int(nums[3])
	if err := checkProjection(contributionHelp, monthsTotal, initial, contribution); err != nil {
		return "", err
	}

	final, series := h.engine.GrowthWithContribution(initial, monthsTotal, contribution, monthsContributing)

	return "📈 Projeção 2 — com aporte\n" +
		fmt.Sprintf("Você começou com: %s USDT\n", format.Money(initial)) +
		fmt.Sprintf("Tempo: %d meses\n", monthsTotal) +
		fmt.Sprintf("Aporte: %s USDT por mês (por %d meses)\n", format.Money(contribution), monthsContributing) +
		h.ruleLine() + "\n\n" +
		fmt.Sprintf("🏁 Resultado final estimado: %s USDT\n\n", format.Money(final)) +
		"📌 Evolução mês a mês:\n" + format.GrowthSeries(series, monthsTotal), nil
}

// ProjectionWithdrawHalf runs the half-profit withdrawal simulation (/p3).
func (h *Handler) ProjectionWithdrawHalf(args string) (string, error) {
	nums := numbers(args)
	if len(nums) < 2 {
		return "", &UsageError{Help: withdrawHelp}
	}

	initial, months := nums[0], int(nums[1])
	if err := checkProjection(withdrawHelp, months, initial); err != nil {
		return "", err
	}

	final, totalWithdrawn, series := h.engine.WithdrawHalfProfit(initial, months)

	return "📈 Projeção 3 — saca 50% do lucro mensal\n" +
		fmt.Sprintf("Você começou com: %s USDT\n", format.Money(initial)) +
		fmt.Sprintf("Tempo: %d meses\n", months) +
		h.ruleLine() + "\n" +
		"Todo mês: saca 50% do lucro e reinveste 50%\n\n" +
		fmt.Sprintf("🏁 Saldo final estimado: %s USDT\n", format.Money(final)) +
		fmt.Sprintf("💸 Total sacado no período: %s USDT\n\n", format.Money(totalWithdrawn)) +
		"📌 Evolução mês a mês:\n" + format.WithdrawSeries(series, months), nil
}

func (h *Handler) ruleLine() string {
	m := h.engine.Model()
	return fmt.Sprintf("Regra: %d dias/mês, %.2f%% ao dia", m.DaysPerMonth, m.DailyRate*100)
}

func firstField(args string) string {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
