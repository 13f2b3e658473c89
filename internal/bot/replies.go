package bot

import (
	"errors"
	"fmt"

	"github.com/rafaelqm/donation-tracker/internal/format"
	"github.com/rafaelqm/donation-tracker/internal/ledger"
)

// User-facing texts. The bot speaks Brazilian Portuguese; every failure
// message carries an example of correct usage.

const startText = "✅ Bot online (multiusuário)!\n\n" +
	"📌 Para REGISTRAR na planilha, mande assim (em linhas):\n" +
	"Cidade: Uberaba\n" +
	"Nome: João\n" +
	"ID da Conta: 445\n" +
	"Mês transação: 02/2026\n" +
	"Transação Inicial: 500\n" +
	"Depósito: 60.35\n" +
	"Saque: 24\n" +
	"Saldo final: 522.65\n" +
	"Observação: opcional\n\n" +
	"📌 Ou em UMA LINHA:\n" +
	registerExample + "\n\n" +
	"📌 Comandos úteis:\n" +
	"/ultimo\n" +
	"/meus\n" +
	"/meus_resumo 02/2026\n" +
	"/resumo 02/2026\n\n" +
	"📈 Projeções (bem simples):\n" +
	"/p1 1000 10  → só crescer por 10 meses\n" +
	"/p2 1000 10 100 6  → aporta 100 por 6 meses e simula 10\n" +
	"/p3 1000 10  → saca 50% do lucro mensal"

const registerExample = "cidade=Uberaba; nome=João; id=445; mes=02/2026; inicial=500; deposito=60.35; saque=24; final=522.65; obs=opcional"

const (
	summaryHelp   = "Use: /resumo 02/2026"
	mySummaryHelp = "Use: /meus_resumo 02/2026"

	growthHelp = "📌 Projeção 1 (simples)\n" +
		"Use: /p1 1000 10\n" +
		"➡️ Começa com 1000 e simula por 10 meses."

	contributionHelp = "📌 Projeção 2 (com aporte)\n" +
		"Use: /p2 1000 10 100 6\n\n" +
		"➡️ Significa:\n" +
		"- começa com 1000\n" +
		"- simula 10 meses\n" +
		"- aporta 100 por mês\n" +
		"- só por 6 meses (depois para)"

	withdrawHelp = "📌 Projeção 3 (sacar 50% do lucro)\n" +
		"Use: /p3 1000 10\n\n" +
		"➡️ Regra:\n" +
		"- todo mês calcula o lucro\n" +
		"- saca 50% do lucro\n" +
		"- deixa 50% rendendo"
)

// rowSummary renders one stored row for /ultimo and /meus. Cells are shown
// as stored, without re-formatting.
func rowSummary(s ledger.Schema, row []string) string {
	return fmt.Sprintf(
		"🗓 %s | Cidade %s | Conta %s | Mês %s\n"+
			"Ganhos: %s USDT | 5%%: %s USDT | BRL: R$ %s",
		ledger.Cell(row, s.Timestamp),
		ledger.Cell(row, s.City),
		ledger.Cell(row, s.AccountID),
		ledger.Cell(row, s.Period),
		ledger.Cell(row, s.Profit),
		ledger.Cell(row, s.DonationUSDT),
		ledger.Cell(row, s.DonationBRL),
	)
}

func aggregateReply(title, period string, agg ledger.Aggregate) string {
	return fmt.Sprintf(
		"📊 %s %s\n"+
			"Registros: %d\n"+
			"Ganhos totais (USDT): %s\n"+
			"5%% total (USDT): %s\n"+
			"5%% total (BRL): R$ %s",
		title, period,
		agg.Count,
		format.Money(agg.Profit),
		format.Money(agg.DonationUSDT),
		format.Money(agg.DonationBRL),
	)
}

// RenderError maps a handler error to the reply text the user sees.
func RenderError(err error) string {
	var validation *ValidationError
	if errors.As(err, &validation) {
		return fmt.Sprintf("Faltou o campo '%s' (%s).", validation.Field, validation.Hint)
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		return usage.Help
	}

	var column *ledger.ErrColumnNotFound
	if errors.As(err, &column) {
		return fmt.Sprintf("Coluna '%s' não encontrada na planilha.", column.Column)
	}

	return "Não consegui processar.\n\n" +
		"✅ Exemplo (uma linha):\n" +
		registerExample + "\n\n" +
		fmt.Sprintf("Erro: %v", err)
}
